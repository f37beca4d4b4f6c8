package validators

import (
	"time"
)

// Formato de data do contrato público (dd/mm/yyyy) e rótulo de horário (HH:mm).
const (
	DateLayout = "02/01/2006"
	SlotLayout = "15:04"
)

// ParseDate interpreta "dd/mm/yyyy" no fuso informado, normalizado para meia-noite.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ParseTimeSlot valida o rótulo "HH:mm" e devolve a forma canônica.
func ParseTimeSlot(slot string) (string, error) {
	t, err := time.Parse(SlotLayout, slot)
	if err != nil {
		return "", err
	}
	return t.Format(SlotLayout), nil
}
