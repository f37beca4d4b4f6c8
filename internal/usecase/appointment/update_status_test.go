package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	"github.com/agendabarber/booking-api/internal/notification"
	"github.com/agendabarber/booking-api/internal/validators"
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

func TestUpdateStatusConfirmThenComplete(t *testing.T) {
	f := newFixture(t)
	uc := NewUpdateAppointmentStatus(f.repo, f.audit, nil, nil)

	ap := f.insertAppointment(t, domain.StatusPending, f.date, "09:00")

	confirmed, err := uc.Execute(context.Background(), ap.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), confirmed.Status)

	completed, err := uc.Execute(context.Background(), ap.ID, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), completed.Status)
	require.NotNil(t, completed.CompletedAt)
}

func TestUpdateStatusConfirmNotifiesCustomer(t *testing.T) {
	f := newFixture(t)
	sender := &recordingSender{}
	uc := NewUpdateAppointmentStatus(f.repo, f.audit, notification.NewDispatcher(sender), nil)

	ap := f.insertAppointment(t, domain.StatusPending, f.date, "09:00")

	_, err := uc.Execute(context.Background(), ap.ID, domain.StatusConfirmed)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return sender.count() == 1 }, 2*time.Second, 10*time.Millisecond)

	msg := sender.last()
	assert.Equal(t, f.customer.Phone, msg.To)
	// a mensagem usa o formato de data do contrato público
	assert.Contains(t, msg.Body, f.date.Format(validators.DateLayout))
	assert.Contains(t, msg.Body, "09:00")
}

func TestUpdateStatusCompleteResetsRescheduleCount(t *testing.T) {
	f := newFixture(t)
	uc := NewUpdateAppointmentStatus(f.repo, f.audit, nil, nil)

	ap := f.insertAppointment(t, domain.StatusConfirmed, f.date, "09:00")
	require.NoError(t, f.db.Model(ap).Update("reschedule_count", 1).Error)

	completed, err := uc.Execute(context.Background(), ap.ID, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 0, completed.RescheduleCount)
}

func TestUpdateStatusCancelSetsTimestamp(t *testing.T) {
	f := newFixture(t)
	uc := NewUpdateAppointmentStatus(f.repo, f.audit, nil, nil)

	ap := f.insertAppointment(t, domain.StatusConfirmed, f.date, "10:00")

	cancelled, err := uc.Execute(context.Background(), ap.ID, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	f := newFixture(t)
	uc := NewUpdateAppointmentStatus(f.repo, f.audit, nil, nil)

	pending := f.insertAppointment(t, domain.StatusPending, f.date, "09:00")
	_, err := uc.Execute(context.Background(), pending.ID, domain.StatusCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	done := f.insertAppointment(t, domain.StatusCompleted, f.date, "10:00")
	_, err = uc.Execute(context.Background(), done.ID, domain.StatusCancelled)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatusNotFound(t *testing.T) {
	f := newFixture(t)
	uc := NewUpdateAppointmentStatus(f.repo, f.audit, nil, nil)

	_, err := uc.Execute(context.Background(), 9999, domain.StatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
