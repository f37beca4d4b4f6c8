package appointment

import (
	"context"
	"fmt"

	"github.com/agendabarber/booking-api/internal/audit"
	"github.com/agendabarber/booking-api/internal/cache"
	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	"github.com/agendabarber/booking-api/internal/models"
	"github.com/agendabarber/booking-api/internal/notification"
	"github.com/agendabarber/booking-api/internal/timezone"
	"github.com/agendabarber/booking-api/internal/validators"
)

type UpdateAppointmentStatus struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *notification.Dispatcher
	avCache  *cache.AvailabilityCache
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notification.Dispatcher,
	avCache *cache.AvailabilityCache,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		avCache:  avCache,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	newStatus domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	if err := domain.Transition(ap, newStatus, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// cancelamento libera o slot imediatamente
	if newStatus == domain.StatusCancelled {
		uc.avCache.Invalidate(ctx, ap.BarberID, ap.Date)
	}

	if newStatus == domain.StatusConfirmed {
		uc.notifyConfirmation(ctx, ap)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_" + string(newStatus),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// confirmação é melhor esforço: falha de notificação nunca desfaz a reserva
func (uc *UpdateAppointmentStatus) notifyConfirmation(ctx context.Context, ap *models.Appointment) {
	if ap.CustomerID == nil {
		return
	}

	customer, err := uc.repo.GetCustomerByID(ctx, *ap.CustomerID)
	if err != nil {
		return
	}

	uc.notifier.Dispatch(notification.Message{
		To: customer.Phone,
		Body: fmt.Sprintf(
			"Seu horário foi confirmado: %s às %s.",
			ap.Date.Format(validators.DateLayout),
			ap.TimeSlot,
		),
	})
}
