package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope padrão de listagens: data + total, sem paginação
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func List[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  items,
		Total: len(items),
	})
}
