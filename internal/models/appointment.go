package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Agendamentos originados por pagamento podem chegar antes do cliente ser resolvido
	CustomerID *uint     `json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`

	BarberID uint   `gorm:"uniqueIndex:uniq_active_slot,where:status <> 'cancelled'" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Date é sempre meia-noite no fuso da barbearia; TimeSlot é o rótulo "15:04"
	Date     time.Time `gorm:"uniqueIndex:uniq_active_slot,where:status <> 'cancelled'" json:"date"`
	TimeSlot string    `gorm:"size:5;uniqueIndex:uniq_active_slot,where:status <> 'cancelled'" json:"time_slot"`

	Status          string `gorm:"size:20;default:'pending'" json:"status"`
	RescheduleCount int    `gorm:"default:0" json:"reschedule_count"`

	Notes string `gorm:"size:255" json:"notes"`

	ReminderSentAt *time.Time `json:"reminder_sent_at"`
	CancelledAt    *time.Time `json:"cancelled_at"`
	CompletedAt    *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
