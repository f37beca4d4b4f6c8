package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
)

func TestGetAvailabilitySubtractsBooked(t *testing.T) {
	f := newFixture(t)
	uc := NewGetAvailability(f.repo, nil)

	f.insertAppointment(t, domain.StatusConfirmed, f.date, "10:00")

	av, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: f.barber.ID,
		Date:     f.date,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00"}, av.AvailableSlots)
	assert.Equal(t, []string{"10:00"}, av.BookedSlots)
}

func TestGetAvailabilityDayWithoutSchedule(t *testing.T) {
	f := newFixture(t)
	uc := NewGetAvailability(f.repo, nil)

	av, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: f.barber.ID,
		Date:     f.date.AddDate(0, 0, 1),
	})

	require.NoError(t, err)
	assert.Empty(t, av.AvailableSlots)
	assert.Empty(t, av.BookedSlots)
	// arrays vazios, nunca nil, para o JSON sair como []
	assert.NotNil(t, av.AvailableSlots)
	assert.NotNil(t, av.BookedSlots)
}

func TestGetAvailabilityIgnoresCancelled(t *testing.T) {
	f := newFixture(t)
	uc := NewGetAvailability(f.repo, nil)

	f.insertAppointment(t, domain.StatusCancelled, f.date, "10:00")

	av, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: f.barber.ID,
		Date:     f.date,
	})

	require.NoError(t, err)
	assert.Equal(t, defaultSlots, av.AvailableSlots)
	assert.Empty(t, av.BookedSlots)
}

func TestGetAvailabilityFullyBooked(t *testing.T) {
	f := newFixture(t)
	uc := NewGetAvailability(f.repo, nil)

	for _, slot := range defaultSlots {
		f.insertAppointment(t, domain.StatusPending, f.date, slot)
	}

	av, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: f.barber.ID,
		Date:     f.date,
	})

	require.NoError(t, err)
	assert.Empty(t, av.AvailableSlots)
	assert.Equal(t, defaultSlots, av.BookedSlots)
}

func TestIsSlotAvailable(t *testing.T) {
	f := newFixture(t)
	uc := NewGetAvailability(f.repo, nil)

	ctx := context.Background()

	ok, err := uc.IsSlotAvailable(ctx, f.barber.ID, f.date, "09:00", nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ap := f.insertAppointment(t, domain.StatusConfirmed, f.date, "09:00")

	ok, err = uc.IsSlotAvailable(ctx, f.barber.ID, f.date, "09:00", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	// fora do template também não é reservável
	ok, err = uc.IsSlotAvailable(ctx, f.barber.ID, f.date, "15:00", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	// a própria linha não conta como conflito durante remarcação
	ok, err = uc.IsSlotAvailable(ctx, f.barber.ID, f.date, "09:00", &ap.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
