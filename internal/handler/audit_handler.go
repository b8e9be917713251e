package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/leadscout/internal/dto"
	middlewarepkg "github.com/octobees/leadscout/internal/middleware"
	"github.com/octobees/leadscout/internal/service"
)

// AuditHandler produces website audits.
type AuditHandler struct {
	audits *service.AuditService
}

// NewAuditHandler wires the handler.
func NewAuditHandler(audits *service.AuditService) *AuditHandler {
	return &AuditHandler{audits: audits}
}

// Generate handles POST /audits.
func (h *AuditHandler) Generate(c echo.Context) error {
	var req dto.AuditRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Lead.Name) == "" {
		return Error(c, http.StatusBadRequest, "lead name is required")
	}

	report, err := h.audits.Generate(c.Request().Context(), middlewarepkg.GeminiKeyFromContext(c), req.Lead)
	if err != nil {
		return FromError(c, err)
	}
	return Success(c, http.StatusOK, "", report)
}
