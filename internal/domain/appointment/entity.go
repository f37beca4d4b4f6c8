package appointment

import (
	"time"

	"github.com/agendabarber/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

const (
	// MaxReschedules limita cada ciclo de uso a uma única remarcação
	MaxReschedules = 1

	// RescheduleLockout bloqueia remarcações perto demais do horário marcado
	RescheduleLockout = 30 * time.Minute
)

func Transition(ap *models.Appointment, to Status, now time.Time) error {
	from := Status(ap.Status)

	if !to.Valid() || !CanTransition(from, to) {
		return ErrInvalidTransition
	}

	ap.Status = string(to)

	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
		// ciclo de uso encerrado: o contador volta a zero
		ap.RescheduleCount = 0
	}

	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusCancelled, now)
}

func Confirm(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusConfirmed, now)
}

func Complete(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusCompleted, now)
}

// CanReschedule valida as regras de negócio da remarcação sem tocar no registro:
// estado não terminal, contador abaixo do limite e início atual fora da janela
// de bloqueio. A disponibilidade do novo horário é verificada pelo guard.
func CanReschedule(ap *models.Appointment, now time.Time, loc *time.Location) error {
	if Status(ap.Status).Terminal() {
		return ErrInvalidTransition
	}

	if ap.RescheduleCount >= MaxReschedules {
		return ErrRescheduleLimit
	}

	start := SlotStart(ap.Date, ap.TimeSlot, loc)
	if !start.After(now.Add(RescheduleLockout)) {
		return ErrRescheduleLockout
	}

	return nil
}

// ApplyReschedule muda o agendamento para o novo horário. O chamador deve ter
// passado por CanReschedule e pelo guard antes; a escrita continua protegida
// pelo índice único de slot.
func ApplyReschedule(ap *models.Appointment, newDate time.Time, newSlot string) {
	ap.Date = newDate
	ap.TimeSlot = newSlot
	ap.RescheduleCount++
}
