package appointment

import (
	"context"
	"time"

	"github.com/agendabarber/booking-api/internal/cache"
	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(repo domain.Repository, cache *cache.AvailabilityCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

// Execute calcula os horários reserváveis do barbeiro na data: template do
// dia da semana menos os slots de agendamentos não cancelados. Sem template
// ativo o resultado é vazio (barbeiro não trabalha no dia), não erro.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	if av, ok := uc.cache.Get(ctx, in.BarberID, in.Date); ok {
		return av, nil
	}

	sched, err := uc.repo.GetActiveSchedule(ctx, in.BarberID, domain.WeekdayName(in.Date))
	if err != nil {
		return nil, err
	}

	if sched == nil || !sched.Active {
		return &domain.Availability{
			AvailableSlots: []string{},
			BookedSlots:    []string{},
		}, nil
	}

	dayStart, dayEnd := domain.DayRange(in.Date)

	booked, err := uc.repo.ListBookedForDay(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	bookedSet := make(map[string]bool, len(booked))
	bookedSlots := make([]string, 0, len(booked))
	for _, ap := range booked {
		if !bookedSet[ap.TimeSlot] {
			bookedSet[ap.TimeSlot] = true
			bookedSlots = append(bookedSlots, ap.TimeSlot)
		}
	}

	template := sched.SlotList()
	available := make([]string, 0, len(template))
	for _, slot := range template {
		if !bookedSet[slot] {
			available = append(available, slot)
		}
	}

	av := &domain.Availability{
		AvailableSlots: available,
		BookedSlots:    bookedSlots,
	}

	uc.cache.Set(ctx, in.BarberID, in.Date, av)

	return av, nil
}

// IsSlotAvailable é o predicado puro usado por reserva e remarcação
func (uc *GetAvailability) IsSlotAvailable(
	ctx context.Context,
	barberID uint,
	date time.Time,
	timeSlot string,
	excludeID *uint,
) (bool, error) {

	guard := NewSlotGuard(uc.repo)

	err := guard.Check(ctx, barberID, date, timeSlot, excludeID)
	switch {
	case err == nil:
		return true, nil
	case err == domain.ErrSlotNotOffered || err == domain.ErrSlotTaken:
		return false, nil
	default:
		return false, err
	}
}
