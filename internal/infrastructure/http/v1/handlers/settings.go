package handlers

import (
	"github.com/gin-gonic/gin"

	"substock/internal/domain/settings"
	"substock/internal/infrastructure/http/v1/dto"
)

// SettingsHandler handles configuration endpoints.
type SettingsHandler struct {
	*BaseHandler
	service *settings.Service
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(base *BaseHandler, service *settings.Service) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Snapshot handles GET /settings
func (h *SettingsHandler) Snapshot(c *gin.Context) {
	snap, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, snap)
}

// SetDrugConfig handles PUT /settings/drugs
func (h *SettingsHandler) SetDrugConfig(c *gin.Context) {
	var req dto.DrugConfigRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.SetDrugConfig(c.Request.Context(), req.ToDrugConfig()); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "drug config saved")
}

// AddRequester handles POST /settings/requesters
func (h *SettingsHandler) AddRequester(c *gin.Context) {
	var req dto.AddRequesterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	r, err := h.service.AddRequester(c.Request.Context(), req.Name)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, r.ID)
}

// RemoveRequester handles DELETE /settings/requesters/:id
func (h *SettingsHandler) RemoveRequester(c *gin.Context) {
	if err := h.service.RemoveRequester(c.Request.Context(), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
