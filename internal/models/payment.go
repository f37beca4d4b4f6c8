package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentTypeFull    = "full"
	PaymentTypeAdvance = "advance"
)

type Payment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Um pagamento pode existir sem agendamento (serviço comprado sem horário)
	AppointmentID *uint        `json:"appointment_id"`
	Appointment   *Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"appointment,omitempty"`

	Amount float64 `json:"amount"`
	Method string  `gorm:"size:30" json:"method"`
	Type   string  `gorm:"size:10;default:'full'" json:"type"`
	Status string  `gorm:"size:20" json:"status"`

	// Chave de idempotência atribuída pelo processador
	TransactionID string `gorm:"size:64;uniqueIndex;not null" json:"transaction_id"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
