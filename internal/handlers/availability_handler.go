package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	"github.com/agendabarber/booking-api/internal/httperr"
	"github.com/agendabarber/booking-api/internal/timezone"
	ucAppointment "github.com/agendabarber/booking-api/internal/usecase/appointment"
	"github.com/agendabarber/booking-api/internal/validators"
)

type AvailabilityHandler struct {
	availability *ucAppointment.GetAvailability
}

func NewAvailabilityHandler(availability *ucAppointment.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// GET /api/public/availability?barber_id=1&date=dd/mm/yyyy
func (h *AvailabilityHandler) Get(c *gin.Context) {
	barberID, date, ok := h.parseParams(c)
	if !ok {
		return
	}

	av, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarberID: barberID,
			Date:     date,
		},
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, av)
}

// GET /api/public/availability/check?barber_id=1&date=dd/mm/yyyy&time_slot=09:00
func (h *AvailabilityHandler) CheckSlot(c *gin.Context) {
	barberID, date, ok := h.parseParams(c)
	if !ok {
		return
	}

	slot, err := validators.ParseTimeSlot(c.Query("time_slot"))
	if err != nil {
		httperr.BadRequest(c, "invalid_time_slot", "Horário inválido.")
		return
	}

	var excludeID *uint
	if raw := c.Query("exclude_appointment_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
			return
		}
		v := uint(id)
		excludeID = &v
	}

	available, err := h.availability.IsSlotAvailable(
		c.Request.Context(),
		barberID,
		date,
		slot,
		excludeID,
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao verificar horário.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

func (h *AvailabilityHandler) parseParams(c *gin.Context) (uint, time.Time, bool) {
	barberIDStr := c.Query("barber_id")
	dateStr := c.Query("date")

	if barberIDStr == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Barbeiro e data obrigatórios.")
		return 0, time.Time{}, false
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return 0, time.Time{}, false
	}

	date, err := validators.ParseDate(dateStr, timezone.Shop())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return 0, time.Time{}, false
	}

	return uint(barberID), date, true
}
