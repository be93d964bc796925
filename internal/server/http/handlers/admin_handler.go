package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// AdminHandler exposes order management to the operator.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// List handles GET /api/admin/orders.
func (h *AdminHandler) List(c *gin.Context) {
	filter := model.OrderFilter{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		Service: c.Query("service"),
	}
	orders, err := h.facade.AdminOrders(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Stats handles GET /api/admin/orders/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.facade.OrderStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Export handles GET /api/admin/orders/export.
func (h *AdminHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	name, err := h.facade.ExportOrders(c.Request.Context(), &buf)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/json", buf.Bytes())
}

// UpdateStatus handles PATCH /api/admin/orders/:id/status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "malformed status payload")
		return
	}
	if err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateNotes handles PATCH /api/admin/orders/:id/notes.
func (h *AdminHandler) UpdateNotes(c *gin.Context) {
	var req dto.UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Notes == nil {
		abortBadRequest(c, "malformed notes payload")
		return
	}
	if err := h.facade.UpdateOrderNotes(c.Request.Context(), c.Param("id"), *req.Notes); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/admin/orders/:id. The confirm query flag is required.
func (h *AdminHandler) Delete(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	if err := h.facade.DeleteOrder(c.Request.Context(), c.Param("id"), confirmed); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
