package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/octobees/leadscout/internal/dto"
	"github.com/octobees/leadscout/internal/entity"
	"github.com/octobees/leadscout/internal/export"
	"github.com/octobees/leadscout/internal/service"
)

// HistoryHandler exposes stored search runs.
type HistoryHandler struct {
	history *service.HistoryService
}

// NewHistoryHandler wires the handler.
func NewHistoryHandler(history *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// List handles GET /leads/history.
func (h *HistoryHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	runs, err := h.history.List(c.Request().Context(), limit)
	if err != nil {
		return FromError(c, err)
	}
	summaries := make([]dto.HistorySummary, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, summarize(run))
	}
	return Success(c, http.StatusOK, "", summaries)
}

// Get handles GET /leads/history/:id with optional q, rating, reviews and tier filters.
func (h *HistoryHandler) Get(c echo.Context) error {
	run, err := h.history.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return FromError(c, err)
	}
	leads := service.FilterLeads(run.Leads, filterFromQuery(c))
	return Success(c, http.StatusOK, "", dto.HistoryDetail{
		HistorySummary: summarize(*run),
		Matched:        len(leads),
		Leads:          toLeadViews(leads),
	})
}

// ExportCSV handles GET /leads/history/:id/csv with the same filters as Get.
func (h *HistoryHandler) ExportCSV(c echo.Context) error {
	run, err := h.history.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return FromError(c, err)
	}
	leads := service.FilterLeads(run.Leads, filterFromQuery(c))
	return CSV(c, fmt.Sprintf("leads-%s.csv", run.ID), export.LeadsCSV(leads))
}

func filterFromQuery(c echo.Context) service.LeadFilter {
	return service.LeadFilter{
		Text:    c.QueryParam("q"),
		Rating:  c.QueryParam("rating"),
		Reviews: c.QueryParam("reviews"),
		Tier:    c.QueryParam("tier"),
	}
}

func summarize(run entity.SearchRun) dto.HistorySummary {
	return dto.HistorySummary{
		ID:        run.ID.String(),
		CreatedAt: run.CreatedAt,
		Params:    run.Params,
		LeadCount: len(run.Leads),
	}
}
