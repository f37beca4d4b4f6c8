package appointment

import (
	"context"
	"time"

	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
)

// ======================================================
// SLOT RESERVATION GUARD
// ======================================================

// SlotGuard valida as duas condições de reserva: o horário pertence ao
// template ativo do barbeiro e nenhum agendamento não cancelado ocupa o slot.
//
// Isto é só o pré-check legível para o cliente. Dois chamadores concorrentes
// podem passar pela leitura ao mesmo tempo; quem decide de verdade é o índice
// único parcial (barber_id, date, time_slot) na escrita — o perdedor recebe a
// violação de constraint, traduzida de volta para ErrSlotTaken.
type SlotGuard struct {
	repo domain.Repository
}

func NewSlotGuard(repo domain.Repository) *SlotGuard {
	return &SlotGuard{repo: repo}
}

// Check devolve ErrSlotNotOffered (rejeição permanente) ou ErrSlotTaken
// (conflito transitório — cliente pode tentar outro horário). excludeID
// ignora a própria linha do agendamento durante remarcação.
func (g *SlotGuard) Check(
	ctx context.Context,
	barberID uint,
	date time.Time,
	timeSlot string,
	excludeID *uint,
) error {

	sched, err := g.repo.GetActiveSchedule(ctx, barberID, domain.WeekdayName(date))
	if err != nil {
		return err
	}

	if !domain.SlotOffered(sched, timeSlot) {
		return domain.ErrSlotNotOffered
	}

	dayStart, dayEnd := domain.DayRange(date)

	count, err := g.repo.CountActiveInSlot(ctx, barberID, dayStart, dayEnd, timeSlot, excludeID)
	if err != nil {
		return err
	}

	if count > 0 {
		return domain.ErrSlotTaken
	}

	return nil
}
