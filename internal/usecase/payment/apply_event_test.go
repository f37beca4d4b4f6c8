package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/agendabarber/booking-api/internal/audit"
	dbpkg "github.com/agendabarber/booking-api/internal/db"
	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	infraRepo "github.com/agendabarber/booking-api/internal/infra/repository"
	"github.com/agendabarber/booking-api/internal/models"
	"github.com/agendabarber/booking-api/internal/timezone"
	"github.com/agendabarber/booking-api/internal/validators"
)

type fixture struct {
	db   *gorm.DB
	repo domain.Repository
	uc   *ApplyPaymentEvent

	barber   models.Barber
	customer models.Customer
	service  models.Service

	date    time.Time
	dateStr string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb, err := dbpkg.Connect("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gdb))

	repo := infraRepo.NewAppointmentGormRepository(gdb)

	f := &fixture{
		db:   gdb,
		repo: repo,
		uc:   NewApplyPaymentEvent(repo, audit.NewDispatcher(audit.New(gdb)), nil, nil),
	}

	f.barber = models.Barber{Name: "Carlos", Email: "carlos@barber.test", PasswordHash: "x", Active: true}
	require.NoError(t, gdb.Create(&f.barber).Error)

	f.customer = models.Customer{Name: "João", Phone: "+5511999990000"}
	require.NoError(t, gdb.Create(&f.customer).Error)

	f.service = models.Service{Name: "Corte", Price: 50, Active: true}
	require.NoError(t, gdb.Create(&f.service).Error)

	now := timezone.Now().AddDate(0, 0, 7)
	f.date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.Shop())
	f.dateStr = f.date.Format(validators.DateLayout)

	sched := models.WeeklySchedule{BarberID: f.barber.ID, Weekday: domain.WeekdayName(f.date), Active: true}
	sched.SetSlots([]string{"09:00", "10:00", "11:00"})
	require.NoError(t, gdb.Create(&sched).Error)

	return f
}

func (f *fixture) input(txID string) Input {
	return Input{
		TransactionID: txID,
		ServiceID:     f.service.ID,
		Type:          models.PaymentTypeFull,
		Status:        "approved",
		Amount:        50,
		Method:        "pix",
		CustomerID:    &f.customer.ID,
		Slot: &SlotData{
			BarberID: f.barber.ID,
			Date:     f.dateStr,
			TimeSlot: "10:00",
		},
	}
}

func (f *fixture) countRows(t *testing.T) (appointments, payments int64) {
	t.Helper()
	require.NoError(t, f.db.Model(&models.Appointment{}).Count(&appointments).Error)
	require.NoError(t, f.db.Model(&models.Payment{}).Count(&payments).Error)
	return
}

// ======================================================
// TESTS
// ======================================================

func TestApplyEventCreatesConfirmedAppointment(t *testing.T) {
	f := newFixture(t)

	result, err := f.uc.Execute(context.Background(), f.input("tx-001"))

	require.NoError(t, err)
	assert.False(t, result.Duplicate)

	require.NotNil(t, result.Appointment)
	assert.Equal(t, string(domain.StatusConfirmed), result.Appointment.Status)
	assert.Equal(t, "10:00", result.Appointment.TimeSlot)

	require.NotNil(t, result.Payment)
	assert.Equal(t, "tx-001", result.Payment.TransactionID)
	require.NotNil(t, result.Payment.AppointmentID)
	assert.Equal(t, result.Appointment.ID, *result.Payment.AppointmentID)

	apCount, pCount := f.countRows(t)
	assert.EqualValues(t, 1, apCount)
	assert.EqualValues(t, 1, pCount)
}

func TestApplyEventReplayIsNoOp(t *testing.T) {
	f := newFixture(t)

	first, err := f.uc.Execute(context.Background(), f.input("tx-002"))
	require.NoError(t, err)
	require.False(t, first.Duplicate)

	second, err := f.uc.Execute(context.Background(), f.input("tx-002"))
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.Payment.ID, second.Payment.ID)

	// replay não cria nada novo
	apCount, pCount := f.countRows(t)
	assert.EqualValues(t, 1, apCount)
	assert.EqualValues(t, 1, pCount)
}

func TestApplyEventSlotTakenRollsBack(t *testing.T) {
	f := newFixture(t)

	occupied := models.Appointment{
		CustomerID: &f.customer.ID,
		BarberID:   f.barber.ID,
		ServiceID:  f.service.ID,
		Date:       f.date,
		TimeSlot:   "10:00",
		Status:     string(domain.StatusConfirmed),
	}
	require.NoError(t, f.db.Create(&occupied).Error)

	_, err := f.uc.Execute(context.Background(), f.input("tx-003"))
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	// transação desfeita por inteiro: nenhum payment órfão
	apCount, pCount := f.countRows(t)
	assert.EqualValues(t, 1, apCount)
	assert.EqualValues(t, 0, pCount)
}

func TestApplyEventPaymentWithoutSlot(t *testing.T) {
	f := newFixture(t)

	in := f.input("tx-004")
	in.Slot = nil

	result, err := f.uc.Execute(context.Background(), in)

	require.NoError(t, err)
	assert.Nil(t, result.Appointment)
	require.NotNil(t, result.Payment)
	assert.Nil(t, result.Payment.AppointmentID)

	apCount, pCount := f.countRows(t)
	assert.EqualValues(t, 0, apCount)
	assert.EqualValues(t, 1, pCount)
}

func TestApplyEventInvalidEvent(t *testing.T) {
	f := newFixture(t)

	in := f.input("")
	_, err := f.uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidEvent)

	in = f.input("tx-005")
	in.ServiceID = 0
	_, err = f.uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidEvent)
}

func TestApplyEventUnknownServiceRollsBack(t *testing.T) {
	f := newFixture(t)

	in := f.input("tx-006")
	in.ServiceID = 9999

	_, err := f.uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)

	apCount, pCount := f.countRows(t)
	assert.EqualValues(t, 0, apCount)
	assert.EqualValues(t, 0, pCount)
}

func TestApplyEventUnknownBarberRollsBack(t *testing.T) {
	f := newFixture(t)

	in := f.input("tx-008")
	in.Slot.BarberID = 9999

	_, err := f.uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrBarberNotFound)

	apCount, pCount := f.countRows(t)
	assert.EqualValues(t, 0, apCount)
	assert.EqualValues(t, 0, pCount)
}

func TestApplyEventMalformedSlotDate(t *testing.T) {
	f := newFixture(t)

	in := f.input("tx-007")
	in.Slot.Date = "2026-03-02"

	_, err := f.uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	// falha antes de qualquer escrita
	apCount, pCount := f.countRows(t)
	assert.EqualValues(t, 0, apCount)
	assert.EqualValues(t, 0, pCount)
}
