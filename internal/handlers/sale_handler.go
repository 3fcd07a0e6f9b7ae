package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-pos/internal/domain/sale"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/httpresp"
	"github.com/BruksfildServices01/salon-pos/internal/middleware"
	"github.com/BruksfildServices01/salon-pos/internal/usecase/sale"
)

type SaleHandler struct {
	create *sale.CreateSale
	list   *sale.ListSales
}

func NewSaleHandler(create *sale.CreateSale, list *sale.ListSales) *SaleHandler {
	return &SaleHandler{
		create: create,
		list:   list,
	}
}

type CreateSaleRequest struct {
	CustomerID    *string       `json:"customer_id"`
	PaymentMethod string        `json:"payment_method" binding:"required"`
	Items         []domain.Item `json:"items" binding:"required"`
}

func (h *SaleHandler) Create(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	s, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), sale.CreateSaleInput{
		CustomerID:    req.CustomerID,
		PaymentMethod: req.PaymentMethod,
		Items:         req.Items,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, s)
}

// List filters by payment_method when given.
func (h *SaleHandler) List(c *gin.Context) {
	from, to, ok := requireRange(c)
	if !ok {
		httperr.BadRequest(c, "invalid_range", "from and to must be RFC 3339 timestamps.")
		return
	}

	rows, err := h.list.Execute(c.Request.Context(), middleware.Actor(c), c.Query("payment_method"), from, to)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, rows)
}
