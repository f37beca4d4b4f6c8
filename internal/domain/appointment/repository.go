package appointment

import (
	"context"
	"time"

	"github.com/agendabarber/booking-api/internal/models"
)

type Repository interface {
	// -------- Referenced entities --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetCustomerByID(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	GetOrCreateCustomer(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Weekly schedule --------
	GetActiveSchedule(
		ctx context.Context,
		barberID uint,
		weekday string,
	) (*models.WeeklySchedule, error)

	UpsertSchedule(
		ctx context.Context,
		sched *models.WeeklySchedule,
	) error

	ListSchedules(
		ctx context.Context,
		barberID uint,
	) ([]models.WeeklySchedule, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	CountActiveInSlot(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
		timeSlot string,
		excludeID *uint,
	) (int64, error)

	// -------- Appointment (read / state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListBookedForDay(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListUnremindedForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	MarkReminderSent(
		ctx context.Context,
		appointmentID uint,
		at time.Time,
	) error

	// -------- Payment --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	GetPaymentByTransactionID(
		ctx context.Context,
		transactionID string,
	) (*models.Payment, error)

	// -------- Unit of work --------
	// Transaction executa fn dentro de uma transação; o Repository recebido
	// por fn enxerga apenas o estado transacional.
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
