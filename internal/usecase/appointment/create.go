package appointment

import (
	"context"

	"github.com/agendabarber/booking-api/internal/audit"
	"github.com/agendabarber/booking-api/internal/cache"
	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	"github.com/agendabarber/booking-api/internal/httperr"
	"github.com/agendabarber/booking-api/internal/models"
	"github.com/agendabarber/booking-api/internal/timezone"
	"github.com/agendabarber/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID uint
	BarberID   uint
	ServiceID  uint

	Date     string // dd/mm/yyyy
	TimeSlot string // HH:mm
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	avCache *cache.AvailabilityCache
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	avCache *cache.AvailabilityCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		audit:   audit,
		avCache: avCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// 1. Data e horário no fuso da barbearia
	date, err := validators.ParseDate(in.Date, timezone.Shop())
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	slot, err := validators.ParseTimeSlot(in.TimeSlot)
	if err != nil {
		return nil, domain.ErrInvalidTimeSlot
	}

	// 2. Entidades referenciadas
	if _, err := uc.repo.GetBarberByID(ctx, in.BarberID); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetServiceByID(ctx, in.ServiceID); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetCustomerByID(ctx, in.CustomerID); err != nil {
		return nil, err
	}

	// 3. Guard + escrita na mesma transação
	var created models.Appointment

	err = uc.repo.Transaction(ctx, func(txRepo domain.Repository) error {
		guard := NewSlotGuard(txRepo)
		if err := guard.Check(ctx, in.BarberID, date, slot, nil); err != nil {
			return err
		}

		customerID := in.CustomerID
		ap := models.Appointment{
			CustomerID: &customerID,
			BarberID:   in.BarberID,
			ServiceID:  in.ServiceID,
			Date:       date,
			TimeSlot:   slot,
			Status:     string(domain.InitialStatus()),
			Notes:      in.Notes,
		}

		if err := txRepo.CreateAppointment(ctx, &ap); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		// perdedor da corrida: o índice único é o árbitro final
		if httperr.IsUniqueViolation(err) {
			return nil, domain.ErrSlotTaken
		}
		return nil, err
	}

	uc.avCache.Invalidate(ctx, in.BarberID, date)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
		Metadata: map[string]any{
			"barber_id": in.BarberID,
			"date":      in.Date,
			"time_slot": slot,
		},
	})

	return &created, nil
}
