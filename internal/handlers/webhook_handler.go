package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	"github.com/agendabarber/booking-api/internal/httperr"
	"github.com/agendabarber/booking-api/internal/payments"
	ucPayment "github.com/agendabarber/booking-api/internal/usecase/payment"
)

// ======================================================
// WEBHOOK DE PAGAMENTO
// ======================================================

type WebhookHandler struct {
	provider payments.Provider
	apply    *ucPayment.ApplyPaymentEvent
}

func NewWebhookHandler(provider payments.Provider, apply *ucPayment.ApplyPaymentEvent) *WebhookHandler {
	return &WebhookHandler{
		provider: provider,
		apply:    apply,
	}
}

// Notificação do Mercado Pago: só carrega o tipo e o id do pagamento
type webhookNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// POST /api/webhooks/payment
//
// Entrega at-least-once: qualquer resposta não-2xx faz o processador
// reentregar. Replay do mesmo transaction id responde 200 (no-op).
// Rejeições permanentes (evento inválido, slot ocupado, referência
// inexistente) também respondem 200 com status "rejected", porque
// reentregar não muda o resultado. Só falha transitória (processador,
// storage) responde 5xx.
func (h *WebhookHandler) HandlePayment(c *gin.Context) {
	if h.provider == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "payments_disabled", "Processador de pagamento não configurado.")
		return
	}

	var notif webhookNotification
	if err := c.ShouldBindJSON(&notif); err != nil {
		httperr.BadRequest(c, "invalid_notification", "Notificação inválida.")
		return
	}

	if notif.Type != "payment" || notif.Data.ID == "" {
		// outros tipos de evento não interessam ao core
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	p, err := h.provider.GetPayment(c.Request.Context(), notif.Data.ID)
	if err != nil {
		log.Printf("webhook: failed to fetch payment %s: %v", notif.Data.ID, err)
		httperr.Internal(c, "provider_error", "Falha ao consultar o processador.")
		return
	}

	if !p.Approved() {
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "payment_status": p.Status})
		return
	}

	in := ucPayment.Input{
		TransactionID: p.TransactionID,
		ServiceID:     p.ServiceID,
		Type:          p.Type,
		Status:        p.Status,
		Amount:        p.Amount,
		Method:        p.Method,
		CustomerID:    p.CustomerID,
	}

	if p.Slot != nil {
		in.Slot = &ucPayment.SlotData{
			BarberID: p.Slot.BarberID,
			Date:     p.Slot.Date,
			TimeSlot: p.Slot.TimeSlot,
			Notes:    p.Slot.Notes,
		}
	}

	result, err := h.apply.Execute(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, ucPayment.ErrInvalidEvent) {
			c.JSON(http.StatusOK, gin.H{"status": "rejected", "reason": "invalid_event"})
			return
		}

		if code, ok := rejectionCode(err); ok {
			log.Printf("webhook: rejected payment tx=%s: %v", p.TransactionID, err)
			c.JSON(http.StatusOK, gin.H{"status": "rejected", "reason": code})
			return
		}

		log.Printf(
			"webhook: failed to apply payment tx=%s barber=%v: %v",
			p.TransactionID, p.Slot, err,
		)
		httperr.Internal(c, "apply_error", "Falha ao aplicar o pagamento.")
		return
	}

	status := "applied"
	if result.Duplicate {
		status = "duplicate"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"payment": result.Payment,
	})
}

// rejectionCode classifica as falhas permanentes do apply: o processador
// de pagamento não tem como corrigir nenhuma delas reentregando o evento.
func rejectionCode(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidTimeSlot):
		return "invalid_date_or_time", true
	case errors.Is(err, domain.ErrSlotNotOffered):
		return "slot_not_offered", true
	case errors.Is(err, domain.ErrSlotTaken):
		return "slot_taken", true
	case errors.Is(err, domain.ErrBarberNotFound):
		return "barber_not_found", true
	case errors.Is(err, domain.ErrServiceNotFound):
		return "service_not_found", true
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "customer_not_found", true
	}
	return "", false
}
