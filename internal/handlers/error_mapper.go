package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	"github.com/agendabarber/booking-api/internal/httperr"
)

// mapDomainError traduz a taxonomia de erros do core para a resposta HTTP.
// Conflito de slot é 409 (cliente pode tentar outro horário); erros de
// armazenamento inesperados caem no 500 genérico, elegível para retry.
func mapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidTimeSlot):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")

	case errors.Is(err, domain.ErrSlotNotOffered):
		httperr.BadRequest(c, "slot_not_offered", "Horário fora da agenda do barbeiro.")

	case errors.Is(err, domain.ErrSlotTaken):
		httperr.Conflict(c, "slot_taken", "Horário já reservado. Escolha outro.")

	case errors.Is(err, domain.ErrRescheduleLimit):
		httperr.BadRequest(c, "reschedule_limit_reached", "Este agendamento já foi remarcado.")

	case errors.Is(err, domain.ErrRescheduleLockout):
		httperr.BadRequest(c, "reschedule_window_closed", "Muito perto do horário para remarcar.")

	case errors.Is(err, domain.ErrInvalidTransition):
		httperr.BadRequest(c, "invalid_status_transition", "Transição de status inválida.")

	case errors.Is(err, domain.ErrNotFound):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")

	case errors.Is(err, domain.ErrBarberNotFound):
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")

	case errors.Is(err, domain.ErrServiceNotFound):
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")

	case errors.Is(err, domain.ErrCustomerNotFound):
		httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")

	default:
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
	}
}
