package reminder

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/agendabarber/booking-api/internal/db"
	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	infraRepo "github.com/agendabarber/booking-api/internal/infra/repository"
	"github.com/agendabarber/booking-api/internal/models"
	"github.com/agendabarber/booking-api/internal/notification"
	"github.com/agendabarber/booking-api/internal/timezone"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []notification.Message
}

func (s *recordingSender) Send(msg notification.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.msgs)
}

func (s *recordingSender) last() notification.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msgs[len(s.msgs)-1]
}

func setup(t *testing.T) (*gorm.DB, *recordingSender, *Service) {
	t.Helper()

	gdb, err := dbpkg.Connect("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gdb))

	barber := models.Barber{Name: "Carlos", Email: "carlos@barber.test", PasswordHash: "x", Active: true}
	require.NoError(t, gdb.Create(&barber).Error)

	service := models.Service{Name: "Corte", Price: 50, Active: true}
	require.NoError(t, gdb.Create(&service).Error)

	repo := infraRepo.NewAppointmentGormRepository(gdb)
	sender := &recordingSender{}
	svc := New(repo, notification.NewDispatcher(sender))

	return gdb, sender, svc
}

// insere um agendamento cujo início é start, no fuso da barbearia
func insertAt(t *testing.T, gdb *gorm.DB, customerID uint, status domain.Status, start time.Time) *models.Appointment {
	t.Helper()

	date := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, timezone.Shop())

	ap := models.Appointment{
		CustomerID: &customerID,
		BarberID:   1,
		ServiceID:  1,
		Date:       date,
		TimeSlot:   start.Format("15:04"),
		Status:     string(status),
	}
	require.NoError(t, gdb.Create(&ap).Error)
	return &ap
}

func TestRunRemindsOnlyUpcomingWindow(t *testing.T) {
	gdb, sender, svc := setup(t)

	customer := models.Customer{Name: "João", Phone: "+5511999990000"}
	require.NoError(t, gdb.Create(&customer).Error)

	now := timezone.Now()

	soon := insertAt(t, gdb, customer.ID, domain.StatusConfirmed, now.Add(10*time.Minute))
	later := insertAt(t, gdb, customer.ID, domain.StatusConfirmed, now.Add(2*time.Hour))
	pending := insertAt(t, gdb, customer.ID, domain.StatusPending, now.Add(10*time.Minute).Add(time.Minute))

	svc.Run(context.Background(), now)

	var reloadedSoon models.Appointment
	require.NoError(t, gdb.First(&reloadedSoon, soon.ID).Error)
	assert.NotNil(t, reloadedSoon.ReminderSentAt)

	var reloadedLater models.Appointment
	require.NoError(t, gdb.First(&reloadedLater, later.ID).Error)
	assert.Nil(t, reloadedLater.ReminderSentAt)

	var reloadedPending models.Appointment
	require.NoError(t, gdb.First(&reloadedPending, pending.ID).Error)
	assert.Nil(t, reloadedPending.ReminderSentAt)

	require.Eventually(t, func() bool { return sender.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, customer.Phone, sender.last().To)
}

func TestRunDoesNotRemindTwice(t *testing.T) {
	gdb, sender, svc := setup(t)

	customer := models.Customer{Name: "João", Phone: "+5511999990000"}
	require.NoError(t, gdb.Create(&customer).Error)

	now := timezone.Now()
	insertAt(t, gdb, customer.ID, domain.StatusConfirmed, now.Add(5*time.Minute))

	svc.Run(context.Background(), now)
	svc.Run(context.Background(), now)

	require.Eventually(t, func() bool { return sender.count() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, sender.count())
}

func TestRunSkipsAppointmentsAlreadyStarted(t *testing.T) {
	gdb, sender, svc := setup(t)

	customer := models.Customer{Name: "João", Phone: "+5511999990000"}
	require.NoError(t, gdb.Create(&customer).Error)

	now := timezone.Now()
	started := insertAt(t, gdb, customer.ID, domain.StatusConfirmed, now.Add(-10*time.Minute))

	svc.Run(context.Background(), now)

	var reloaded models.Appointment
	require.NoError(t, gdb.First(&reloaded, started.ID).Error)
	assert.Nil(t, reloaded.ReminderSentAt)
	assert.Equal(t, 0, sender.count())
}
