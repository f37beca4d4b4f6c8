package appointment

import (
	"time"

	"github.com/agendabarber/booking-api/internal/models"
)

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// WeekdayName mapeia uma data concreta para o nome do dia usado no template semanal
func WeekdayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}

func ValidWeekday(name string) bool {
	for _, n := range weekdayNames {
		if n == name {
			return true
		}
	}
	return false
}

// SlotOffered verifica se o rótulo faz parte do template ativo do barbeiro
func SlotOffered(sched *models.WeeklySchedule, slot string) bool {
	if sched == nil || !sched.Active {
		return false
	}
	for _, s := range sched.SlotList() {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotStart combina a data (meia-noite) com o rótulo "HH:mm" no fuso da barbearia.
// Rótulos já validados por validators.ParseTimeSlot; entrada inválida vira meia-noite.
func SlotStart(date time.Time, slot string, loc *time.Location) time.Time {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		t = time.Time{}
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	)
}

// DayRange devolve [início, fim) do dia civil da data, no fuso dela
func DayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}
