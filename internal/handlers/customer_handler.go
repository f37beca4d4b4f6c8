package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/agendabarber/booking-api/internal/domain/appointment"
	"github.com/agendabarber/booking-api/internal/httperr"
	"github.com/agendabarber/booking-api/internal/httpresp"
	"github.com/agendabarber/booking-api/internal/models"
	"gorm.io/gorm"
)

type CustomerHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewCustomerHandler(db *gorm.DB, repo domain.Repository) *CustomerHandler {
	return &CustomerHandler{db: db, repo: repo}
}

type ResolveCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

// POST /api/public/customers
//
// Get-or-create por telefone: o app usa o id devolvido para reservar
func (h *CustomerHandler) Resolve(c *gin.Context) {
	var req ResolveCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	customer, err := h.repo.GetOrCreateCustomer(
		c.Request.Context(),
		req.Name,
		req.Phone,
		req.Email,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_resolve_customer", "Erro ao registrar cliente.")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// GET /api/me/customers
func (h *CustomerHandler) List(c *gin.Context) {
	var customers []models.Customer
	if err := h.db.Order("name ASC").Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, customers)
}
