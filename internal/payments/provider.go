package payments

import "context"

// Dados de slot que o checkout anexa ao pagamento via metadata
type SlotData struct {
	BarberID uint
	Date     string // dd/mm/yyyy
	TimeSlot string // HH:mm
	Notes    string
}

// ProcessorPayment é a visão normalizada de um pagamento do processador
type ProcessorPayment struct {
	TransactionID string
	Status        string
	Amount        float64
	Method        string
	Type          string // full | advance

	ServiceID  uint
	CustomerID *uint
	Slot       *SlotData
}

func (p *ProcessorPayment) Approved() bool {
	return p.Status == "approved"
}

// Provider busca o pagamento completo a partir do id notificado no webhook.
// O webhook do Mercado Pago carrega só o id; o resto vem da API deles.
type Provider interface {
	GetPayment(ctx context.Context, id string) (*ProcessorPayment, error)
}
