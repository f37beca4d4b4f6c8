package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	"github.com/agendabarber/booking-api/internal/httperr"
	"github.com/agendabarber/booking-api/internal/middleware"
	"github.com/agendabarber/booking-api/internal/models"
	"github.com/agendabarber/booking-api/internal/validators"
)

type ScheduleHandler struct {
	repo domain.Repository
}

func NewScheduleHandler(repo domain.Repository) *ScheduleHandler {
	return &ScheduleHandler{repo: repo}
}

type WeekdayScheduleConfig struct {
	Weekday string   `json:"weekday" binding:"required"`
	Slots   []string `json:"slots"`
	Active  bool     `json:"active"`
}

type ScheduleUpdateRequest struct {
	Days []WeekdayScheduleConfig `json:"days" binding:"required"`
}

type scheduleResponse struct {
	ID      uint     `json:"id"`
	Weekday string   `json:"weekday"`
	Slots   []string `json:"slots"`
	Active  bool     `json:"active"`
}

// GET /api/me/schedule
func (h *ScheduleHandler) Get(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	scheds, err := h.repo.ListSchedules(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_schedules", "Erro ao buscar agenda.")
		return
	}

	out := make([]scheduleResponse, 0, len(scheds))
	for _, s := range scheds {
		out = append(out, scheduleResponse{
			ID:      s.ID,
			Weekday: s.Weekday,
			Slots:   s.SlotList(),
			Active:  s.Active,
		})
	}

	c.JSON(http.StatusOK, out)
}

// PUT /api/me/schedule
//
// Upsert por (barbeiro, dia da semana): cria se não existe, senão substitui o
// conjunto de slots. A troca vale só para disponibilidade futura — agendamentos
// já criados não são tocados.
func (h *ScheduleHandler) Update(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, d := range req.Days {
		if !domain.ValidWeekday(d.Weekday) {
			httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido: "+d.Weekday)
			return
		}

		for _, slot := range d.Slots {
			if _, err := validators.ParseTimeSlot(slot); err != nil {
				httperr.BadRequest(c, "invalid_time_slot", "Horário inválido: "+slot)
				return
			}
		}
	}

	for _, d := range req.Days {
		sched := models.WeeklySchedule{
			BarberID: barberID,
			Weekday:  d.Weekday,
			Active:   d.Active,
		}
		sched.SetSlots(d.Slots)

		if err := h.repo.UpsertSchedule(c.Request.Context(), &sched); err != nil {
			httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar agenda.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
