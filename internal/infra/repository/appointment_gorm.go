package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	"github.com/agendabarber/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Referenced entities
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBarberNotFound
		}
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetCustomerByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *AppointmentGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}

	customer = models.Customer{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Weekly schedule
// --------------------------------------------------

func (r *AppointmentGormRepository) GetActiveSchedule(
	ctx context.Context,
	barberID uint,
	weekday string,
) (*models.WeeklySchedule, error) {

	var sched models.WeeklySchedule
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ? AND active = ?", barberID, weekday, true).
		First(&sched).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// barbeiro não atende nesse dia — ausência não é erro
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &sched, nil
}

func (r *AppointmentGormRepository) UpsertSchedule(
	ctx context.Context,
	sched *models.WeeklySchedule,
) error {

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "barber_id"},
				{Name: "weekday"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"slots", "active", "updated_at"}),
		}).
		Create(sched).Error
}

func (r *AppointmentGormRepository) ListSchedules(
	ctx context.Context,
	barberID uint,
) ([]models.WeeklySchedule, error) {

	var scheds []models.WeeklySchedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("id ASC").
		Find(&scheds).Error; err != nil {
		return nil, err
	}

	return scheds, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// CountActiveInSlot conta agendamentos não cancelados no slot. É apenas o
// pré-check do guard: a arbitragem real é o índice único parcial na escrita.
func (r *AppointmentGormRepository) CountActiveInSlot(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
	timeSlot string,
	excludeID *uint,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND status <> ? AND date >= ? AND date < ? AND time_slot = ?",
			barberID, string(domain.StatusCancelled), dayStart, dayEnd, timeSlot,
		)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// Appointment (read / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListBookedForDay(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND status <> ? AND date >= ? AND date < ?",
			barberID, string(domain.StatusCancelled), dayStart, dayEnd,
		).
		Order("time_slot ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where(
			"barber_id = ? AND date >= ? AND date < ?",
			barberID, start, end,
		).
		Order("date ASC, time_slot ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListUnremindedForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where(
			"status = ? AND reminder_sent_at IS NULL AND date >= ? AND date < ?",
			string(domain.StatusConfirmed), dayStart, dayEnd,
		).
		Order("time_slot ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) MarkReminderSent(
	ctx context.Context,
	appointmentID uint,
	at time.Time,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update("reminder_sent_at", at).Error
}

// --------------------------------------------------
// Unit of work
// --------------------------------------------------

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
