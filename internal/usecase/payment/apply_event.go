package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/agendabarber/booking-api/internal/audit"
	"github.com/agendabarber/booking-api/internal/cache"
	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	"github.com/agendabarber/booking-api/internal/httperr"
	"github.com/agendabarber/booking-api/internal/models"
	"github.com/agendabarber/booking-api/internal/notification"
	"github.com/agendabarber/booking-api/internal/timezone"
	ucAppointment "github.com/agendabarber/booking-api/internal/usecase/appointment"
	"github.com/agendabarber/booking-api/internal/validators"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type SlotData struct {
	BarberID uint
	Date     string // dd/mm/yyyy
	TimeSlot string // HH:mm
	Notes    string
}

type Input struct {
	TransactionID string
	ServiceID     uint
	Type          string // full | advance
	Status        string
	Amount        float64
	Method        string

	CustomerID *uint
	Slot       *SlotData
}

type Result struct {
	Payment     *models.Payment
	Appointment *models.Appointment

	// Duplicate marca replay do mesmo transaction id: no-op bem sucedido,
	// para o processador parar de reentregar
	Duplicate bool
}

// ======================================================
// USE CASE
// ======================================================

// ApplyPaymentEvent consome um evento de pagamento concluído sob entrega
// at-least-once: registra o Payment e, havendo dados de slot, cria o
// Appointment já confirmado — tudo numa única transação.
type ApplyPaymentEvent struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *notification.Dispatcher
	avCache  *cache.AvailabilityCache
}

func NewApplyPaymentEvent(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notification.Dispatcher,
	avCache *cache.AvailabilityCache,
) *ApplyPaymentEvent {
	return &ApplyPaymentEvent{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		avCache:  avCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ApplyPaymentEvent) Execute(
	ctx context.Context,
	in Input,
) (*Result, error) {

	if in.TransactionID == "" || in.ServiceID == 0 {
		return nil, ErrInvalidEvent
	}

	// 1. Dedup pelo transaction id — replay é no-op, nunca erro.
	// Leitura é só o caminho rápido; a constraint única no insert cobre
	// dois replays simultâneos.
	if existing, err := uc.repo.GetPaymentByTransactionID(ctx, in.TransactionID); err == nil {
		return &Result{Payment: existing, Duplicate: true}, nil
	}

	// 2. Data validada antes de qualquer escrita: replay malformado
	// falha rápido, sem efeitos parciais
	var date time.Time
	var slot string

	if in.Slot != nil {
		var err error
		date, err = validators.ParseDate(in.Slot.Date, timezone.Shop())
		if err != nil {
			return nil, domain.ErrInvalidDate
		}

		slot, err = validators.ParseTimeSlot(in.Slot.TimeSlot)
		if err != nil {
			return nil, domain.ErrInvalidTimeSlot
		}
	}

	// 3. Unidade de trabalho: checagens de existência, guard, appointment
	// e payment — ou tudo comita, ou nada
	var result Result

	err := uc.repo.Transaction(ctx, func(txRepo domain.Repository) error {
		if _, err := txRepo.GetServiceByID(ctx, in.ServiceID); err != nil {
			return err
		}

		if in.CustomerID != nil {
			if _, err := txRepo.GetCustomerByID(ctx, *in.CustomerID); err != nil {
				return err
			}
		}

		p := models.Payment{
			Amount:        in.Amount,
			Method:        in.Method,
			Type:          in.Type,
			Status:        in.Status,
			TransactionID: in.TransactionID,
		}

		if in.Slot != nil {
			if _, err := txRepo.GetBarberByID(ctx, in.Slot.BarberID); err != nil {
				return err
			}

			guard := ucAppointment.NewSlotGuard(txRepo)
			if err := guard.Check(ctx, in.Slot.BarberID, date, slot, nil); err != nil {
				return err
			}

			ap := models.Appointment{
				CustomerID: in.CustomerID,
				BarberID:   in.Slot.BarberID,
				ServiceID:  in.ServiceID,
				Date:       date,
				TimeSlot:   slot,
				Status:     string(domain.PaidStatus()),
				Notes:      in.Slot.Notes,
			}

			if err := txRepo.CreateAppointment(ctx, &ap); err != nil {
				return err
			}

			p.AppointmentID = &ap.ID
			result.Appointment = &ap
		}

		if err := txRepo.CreatePayment(ctx, &p); err != nil {
			return err
		}

		result.Payment = &p
		return nil
	})

	if err != nil {
		result.Appointment = nil

		if httperr.IsUniqueViolation(err) {
			// duas origens possíveis: replay concorrente (transaction id)
			// ou corrida pelo slot — o payment já gravado é quem distingue
			if existing, readErr := uc.repo.GetPaymentByTransactionID(ctx, in.TransactionID); readErr == nil {
				return &Result{Payment: existing, Duplicate: true}, nil
			}
			return nil, domain.ErrSlotTaken
		}

		return nil, err
	}

	// 4. Pós-commit: os fatos monetários e de agenda já são definitivos;
	// notificação é melhor esforço
	if result.Appointment != nil {
		uc.avCache.Invalidate(ctx, result.Appointment.BarberID, result.Appointment.Date)
		uc.notifyConfirmation(ctx, result.Appointment)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "payment_applied",
		Entity:   "payment",
		Metadata: map[string]any{"transaction_id": in.TransactionID, "amount": in.Amount},
	})

	return &result, nil
}

func (uc *ApplyPaymentEvent) notifyConfirmation(ctx context.Context, ap *models.Appointment) {
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
			"Pagamento recebido! Seu horário está confirmado: %s às %s.",
			ap.Date.Format(validators.DateLayout),
			ap.TimeSlot,
		),
	})
}
