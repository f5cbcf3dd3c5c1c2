package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"substock/internal/core/apperror"
	"substock/internal/domain/ledger"
	"substock/internal/infrastructure/http/v1/dto"
)

// maxImportSize caps CSV uploads at 8 MiB.
const maxImportSize = 8 << 20

// LedgerHandler handles ledger endpoints.
type LedgerHandler struct {
	*BaseHandler
	service *ledger.Service
}

// NewLedgerHandler creates a new ledger handler.
func NewLedgerHandler(base *BaseHandler, service *ledger.Service) *LedgerHandler {
	return &LedgerHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /ledger
func (h *LedgerHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, records)
}

// Append handles POST /ledger
func (h *LedgerHandler) Append(c *gin.Context) {
	var req dto.AppendRecordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	rec, err := h.service.Append(c.Request.Context(), req.ToRecord())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, rec.ID)
}

// Import handles POST /ledger/import?mode=IN|OUT with a raw CSV body.
func (h *LedgerHandler) Import(c *gin.Context) {
	var q dto.ImportQuery
	if !h.BindQuery(c, &q) {
		return
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
	if err != nil {
		h.Error(c, apperror.NewValidation("failed to read upload").WithDetail("error", err.Error()))
		return
	}

	count, err := h.service.Import(c.Request.Context(), data, ledger.Kind(q.Mode))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.CountResponse{Count: count})
}

// Delete handles DELETE /ledger/:id
func (h *LedgerHandler) Delete(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
