package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// OrderHandler serves the public order form.
type OrderHandler struct {
	facade SubmissionFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade SubmissionFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Catalog handles GET /api/catalog.
func (h *OrderHandler) Catalog(c *gin.Context) {
	catalog := h.facade.Catalog()
	methods := []string{string(model.PaymentMethodCard), string(model.PaymentMethodPayPal), string(model.PaymentMethodBank)}

	c.JSON(http.StatusOK, dto.CatalogResponse{
		PriceSource:    h.facade.PriceSource(),
		Services:       catalog.Services,
		Timelines:      model.Timelines,
		PaymentMethods: methods,
	})
}

// Submit handles POST /api/orders.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req dto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "malformed order payload")
		return
	}

	order, err := h.facade.SubmitOrder(c.Request.Context(), req.ToSubmission())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
