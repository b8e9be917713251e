package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/leadscout/internal/catalog"
	"github.com/octobees/leadscout/internal/dto"
	"github.com/octobees/leadscout/internal/entity"
	"github.com/octobees/leadscout/internal/export"
	middlewarepkg "github.com/octobees/leadscout/internal/middleware"
	"github.com/octobees/leadscout/internal/service"
)

const maxPitchBatch = 100

// PitchHandler generates outreach emails.
type PitchHandler struct {
	pitches *service.PitchService
}

// NewPitchHandler wires the handler.
func NewPitchHandler(pitches *service.PitchService) *PitchHandler {
	return &PitchHandler{pitches: pitches}
}

// Batch handles POST /pitches/batch. With ?format=csv the results are
// returned as a CSV attachment.
func (h *PitchHandler) Batch(c echo.Context) error {
	var req dto.BatchPitchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if len(req.Leads) == 0 {
		return Error(c, http.StatusBadRequest, "leads are required")
	}
	if len(req.Leads) > maxPitchBatch {
		return Error(c, http.StatusBadRequest, "at most 100 leads per batch")
	}

	results, err := h.pitches.GenerateBatch(c.Request().Context(), middlewarepkg.GeminiKeyFromContext(c), req.Leads, nil)
	if err != nil {
		return FromError(c, err)
	}

	if strings.EqualFold(c.QueryParam("format"), "csv") {
		return CSV(c, "pitch-export.csv", export.PitchesCSV(results))
	}

	failed := 0
	for _, result := range results {
		if result.Failed() {
			failed++
		}
	}
	return Success(c, http.StatusOK, "pitches generated", dto.BatchPitchResponse{Results: results, Failed: failed})
}

// Single handles POST /pitches. The service may be a catalog id, a free-form
// name, or empty to use the lead's recommendation.
func (h *PitchHandler) Single(c echo.Context) error {
	var req dto.PitchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Lead.Name) == "" {
		return Error(c, http.StatusBadRequest, "lead name is required")
	}

	serviceName := resolveServiceName(req.Service, req.Lead)
	pitch, err := h.pitches.GeneratePitch(c.Request().Context(), middlewarepkg.GeminiKeyFromContext(c), serviceName, req.Lead)
	if err != nil {
		return FromError(c, err)
	}
	return Success(c, http.StatusOK, "", dto.PitchResponse{Pitch: pitch})
}

func resolveServiceName(requested string, lead entity.Lead) string {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return catalog.PitchLabel(lead.RecommendedServiceID)
	}
	if offer, ok := catalog.Lookup(entity.ServiceID(strings.ToLower(requested))); ok {
		return offer.Title
	}
	return requested
}
