package models

import (
	"encoding/json"
	"time"
)

// Template semanal de horários do barbeiro. No máximo um registro
// ativo por (barbeiro, dia da semana) — garantido por índice único.
type WeeklySchedule struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BarberID uint   `gorm:"uniqueIndex:uniq_barber_weekday" json:"barber_id"`
	Weekday  string `gorm:"size:10;uniqueIndex:uniq_barber_weekday" json:"weekday"`

	// Slots guarda a lista ordenada de rótulos "15:04" serializada em JSON
	Slots  string `gorm:"type:text" json:"-"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *WeeklySchedule) SlotList() []string {
	if s.Slots == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s.Slots), &out); err != nil {
		return nil
	}
	return out
}

func (s *WeeklySchedule) SetSlots(slots []string) {
	if len(slots) == 0 {
		s.Slots = "[]"
		return
	}
	b, _ := json.Marshal(slots)
	s.Slots = string(b)
}
