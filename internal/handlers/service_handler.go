package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendabarber/booking-api/internal/httperr"
	"github.com/agendabarber/booking-api/internal/httpresp"
	"github.com/agendabarber/booking-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Active      *bool   `json:"active"`
}

// GET /api/public/services
func (h *ServiceHandler) ListPublic(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = ?", true)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

// POST /api/me/services
func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      true,
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	httpresp.Created(c, service)
}

// PATCH /api/me/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	c.JSON(http.StatusOK, service)
}
