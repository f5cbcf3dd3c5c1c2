package handlers

import (
	"github.com/gin-gonic/gin"

	"substock/internal/domain/inventory"
)

// InventoryHandler serves the derived inventory state.
type InventoryHandler struct {
	*BaseHandler
	service *inventory.Service
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(base *BaseHandler, service *inventory.Service) *InventoryHandler {
	return &InventoryHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /inventory
func (h *InventoryHandler) List(c *gin.Context) {
	h.OK(c, h.service.Items())
}

// Summary handles GET /inventory/summary
func (h *InventoryHandler) Summary(c *gin.Context) {
	h.OK(c, inventory.Summarize(h.service.Items()))
}

// Drugs handles GET /inventory/drugs
func (h *InventoryHandler) Drugs(c *gin.Context) {
	h.OK(c, inventory.Drugs(h.service.Items()))
}
