package payments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/agendabarber/booking-api/internal/models"
)

type MercadoPagoProvider struct {
	client payment.Client
}

func NewMercadoPago(accessToken string) (*MercadoPagoProvider, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPagoProvider{
		client: payment.NewClient(cfg),
	}, nil
}

func (p *MercadoPagoProvider) GetPayment(ctx context.Context, id string) (*ProcessorPayment, error) {
	paymentID, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: invalid payment id %q", id)
	}

	resp, err := p.client.Get(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: get payment %d: %w", paymentID, err)
	}

	out := &ProcessorPayment{
		TransactionID: strconv.Itoa(resp.ID),
		Status:        resp.Status,
		Amount:        resp.TransactionAmount,
		Method:        resp.PaymentMethodID,
		Type:          metaString(resp.Metadata, "payment_type", models.PaymentTypeFull),
		ServiceID:     metaUint(resp.Metadata, "service_id"),
	}

	if customerID := metaUint(resp.Metadata, "customer_id"); customerID != 0 {
		out.CustomerID = &customerID
	}

	// Slot só existe quando o checkout foi feito com horário escolhido
	if barberID := metaUint(resp.Metadata, "barber_id"); barberID != 0 {
		out.Slot = &SlotData{
			BarberID: barberID,
			Date:     metaString(resp.Metadata, "date", ""),
			TimeSlot: metaString(resp.Metadata, "time_slot", ""),
			Notes:    metaString(resp.Metadata, "notes", ""),
		}
	}

	return out, nil
}

// metadata do MP chega como map[string]any com números em float64

func metaUint(meta map[string]any, key string) uint {
	switch v := meta[key].(type) {
	case float64:
		return uint(v)
	case string:
		n, _ := strconv.ParseUint(v, 10, 64)
		return uint(n)
	}
	return 0
}

func metaString(meta map[string]any, key, def string) string {
	if v, ok := meta[key].(string); ok && v != "" {
		return v
	}
	return def
}

var _ Provider = (*MercadoPagoProvider)(nil)
