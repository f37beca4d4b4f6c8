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

type RescheduleAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	avCache *cache.AvailabilityCache
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	avCache *cache.AvailabilityCache,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:    repo,
		audit:   audit,
		avCache: avCache,
	}
}

// Execute move o agendamento para (newDate, newSlot) respeitando o limite de
// uma remarcação e a janela de bloqueio de 30 minutos. Tudo ou nada: em
// qualquer falha o agendamento permanece intacto.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	newDate string,
	newSlot string,
) (*models.Appointment, error) {

	date, err := validators.ParseDate(newDate, timezone.Shop())
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	slot, err := validators.ParseTimeSlot(newSlot)
	if err != nil {
		return nil, domain.ErrInvalidTimeSlot
	}

	var updated *models.Appointment
	var oldDate = date

	err = uc.repo.Transaction(ctx, func(txRepo domain.Repository) error {
		ap, err := txRepo.GetAppointmentByID(ctx, appointmentID)
		if err != nil {
			return err
		}

		oldDate = ap.Date

		if err := domain.CanReschedule(ap, timezone.Now(), timezone.Shop()); err != nil {
			return err
		}

		// a própria linha é excluída do conflito: ela solta o slot antigo
		// e reivindica o novo na mesma operação
		guard := NewSlotGuard(txRepo)
		if err := guard.Check(ctx, ap.BarberID, date, slot, &ap.ID); err != nil {
			return err
		}

		domain.ApplyReschedule(ap, date, slot)

		if err := txRepo.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		updated = ap
		return nil
	})

	if err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, domain.ErrSlotTaken
		}
		return nil, err
	}

	uc.avCache.Invalidate(ctx, updated.BarberID, oldDate)
	uc.avCache.Invalidate(ctx, updated.BarberID, date)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &updated.ID,
		Metadata: map[string]any{
			"new_date": newDate,
			"new_slot": slot,
		},
	})

	return updated, nil
}
