package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	"github.com/agendabarber/booking-api/internal/httperr"
	"github.com/agendabarber/booking-api/internal/middleware"
	"github.com/agendabarber/booking-api/internal/timezone"
	ucAppointment "github.com/agendabarber/booking-api/internal/usecase/appointment"
	"github.com/agendabarber/booking-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	updateStatus *ucAppointment.UpdateAppointmentStatus
	reschedule   *ucAppointment.RescheduleAppointment
	listByDate   *ucAppointment.ListAppointmentsByDate
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	updateStatus *ucAppointment.UpdateAppointmentStatus,
	reschedule *ucAppointment.RescheduleAppointment,
	listByDate *ucAppointment.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		updateStatus: updateStatus,
		reschedule:   reschedule,
		listByDate:   listByDate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	BarberID   uint   `json:"barber_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"`      // dd/mm/yyyy
	TimeSlot   string `json:"time_slot" binding:"required"` // HH:mm
	Notes      string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RescheduleRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

// POST /api/public/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerID: req.CustomerID,
		BarberID:   req.BarberID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		TimeSlot:   req.TimeSlot,
		Notes:      req.Notes,
	})
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// STATUS (confirm / cancel / complete)
// ======================================================

// PATCH /api/me/appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	status := domain.Status(req.Status)
	if !status.Valid() {
		httperr.BadRequest(c, "invalid_status", "Status desconhecido.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), id, status)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

// PATCH /api/public/appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), id, req.Date, req.TimeSlot)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// LIST
// ======================================================

// GET /api/me/appointments?date=dd/mm/yyyy
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := validators.ParseDate(dateStr, timezone.Shop())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// HELPERS
// ======================================================

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
