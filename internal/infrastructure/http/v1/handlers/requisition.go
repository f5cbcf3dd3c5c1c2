package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"substock/internal/domain/requisition"
	"substock/internal/infrastructure/export"
	"substock/internal/infrastructure/http/v1/dto"
)

// RequisitionHandler handles requisition session endpoints.
type RequisitionHandler struct {
	*BaseHandler
	service *requisition.Service
}

// NewRequisitionHandler creates a new requisition handler.
func NewRequisitionHandler(base *BaseHandler, service *requisition.Service) *RequisitionHandler {
	return &RequisitionHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /requisitions
func (h *RequisitionHandler) Create(c *gin.Context) {
	c.JSON(http.StatusCreated, h.service.Create(c.Request.Context()))
}

// Get handles GET /requisitions/:id
func (h *RequisitionHandler) Get(c *gin.Context) {
	sess, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sess)
}

// SetManualOrder handles PUT /requisitions/:id/lines
func (h *RequisitionHandler) SetManualOrder(c *gin.Context) {
	var req dto.SetManualOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sess, err := h.service.SetManualOrder(c.Request.Context(), c.Param("id"), req.Code, req.LotNo, req.Qty)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sess)
}

// ApplySuggestion handles POST /requisitions/:id/apply-suggestion
func (h *RequisitionHandler) ApplySuggestion(c *gin.Context) {
	var req dto.ApplySuggestionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sess, err := h.service.ApplySuggestion(c.Request.Context(), c.Param("id"), requisition.Multiplier(req.Multiplier))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sess)
}

// ToggleSelected handles POST /requisitions/:id/toggle
func (h *RequisitionHandler) ToggleSelected(c *gin.Context) {
	var req dto.ToggleSelectedRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sess, err := h.service.ToggleSelected(c.Request.Context(), c.Param("id"), req.Code, req.LotNo)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sess)
}

// SelectAll handles POST /requisitions/:id/select-all
func (h *RequisitionHandler) SelectAll(c *gin.Context) {
	var req dto.SelectAllRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sess, err := h.service.SelectAll(c.Request.Context(), c.Param("id"), req.Selected)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sess)
}

// Finalize handles POST /requisitions/:id/finalize
// Responds with the finalized document as an XLSX download.
func (h *RequisitionHandler) Finalize(c *gin.Context) {
	var req dto.FinalizeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.Finalize(c.Request.Context(), c.Param("id"), req.RequesterID)
	if err != nil {
		h.Error(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteRequisition(&buf, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+export.Filename(doc))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// Abandon handles DELETE /requisitions/:id
func (h *RequisitionHandler) Abandon(c *gin.Context) {
	if err := h.service.Abandon(c.Request.Context(), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
