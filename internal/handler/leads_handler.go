package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octobees/leadscout/internal/dto"
	"github.com/octobees/leadscout/internal/entity"
	middlewarepkg "github.com/octobees/leadscout/internal/middleware"
	"github.com/octobees/leadscout/internal/service"
	"github.com/octobees/leadscout/internal/service/scoring"
)

const (
	defaultSearchCount = 15
	maxSearchCount     = 100
)

// LeadsHandler runs lead acquisition and records each run in history.
type LeadsHandler struct {
	leads   *service.LeadsService
	history *service.HistoryService
	parser  *service.QueryParser
	logger  *zap.Logger
}

// NewLeadsHandler wires the handler. history may be nil to skip recording.
func NewLeadsHandler(leads *service.LeadsService, history *service.HistoryService, parser *service.QueryParser, logger *zap.Logger) *LeadsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadsHandler{leads: leads, history: history, parser: parser, logger: logger}
}

// Search handles POST /leads/search.
func (h *LeadsHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	params := entity.SearchParams{
		Niche:    strings.TrimSpace(req.Niche),
		Location: strings.TrimSpace(req.Location),
		Count:    req.Count,
	}
	return h.run(c, params)
}

// PromptSearch handles POST /leads/prompt-search.
func (h *LeadsHandler) PromptSearch(c echo.Context) error {
	var req dto.PromptSearchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	parsed, err := h.parser.Parse(req.Prompt)
	if err != nil {
		return FromError(c, err)
	}
	count := req.Count
	if count == 0 {
		count = parsed.Count
	}
	return h.run(c, entity.SearchParams{Niche: parsed.Niche, Location: parsed.Location, Count: count})
}

func (h *LeadsHandler) run(c echo.Context, params entity.SearchParams) error {
	if params.Count == 0 {
		params.Count = defaultSearchCount
	}
	if params.Count < 0 || params.Count > maxSearchCount {
		return Error(c, http.StatusBadRequest, "count must be between 1 and 100")
	}

	ctx := c.Request().Context()
	batchesRun := 0
	leads, err := h.leads.Search(ctx, middlewarepkg.GeminiKeyFromContext(c), params, func(p service.SearchProgress) {
		batchesRun = p.Batch
	})
	if err != nil {
		return FromError(c, err)
	}

	resp := dto.SearchResponse{Params: params, BatchesRun: batchesRun, Leads: toLeadViews(leads)}
	if h.history != nil {
		run, err := h.history.Record(ctx, params, leads)
		if err != nil {
			h.logger.Warn("record search run failed",
				zap.String("request_id", middlewarepkg.RequestIDFromContext(c)),
				zap.Error(err))
		} else {
			resp.RunID = run.ID.String()
		}
	}

	return Success(c, http.StatusOK, "leads found", resp)
}

func toLeadViews(leads []entity.Lead) []dto.LeadView {
	views := make([]dto.LeadView, 0, len(leads))
	for _, lead := range leads {
		views = append(views, dto.LeadView{Lead: lead, Tier: string(scoring.TierOf(lead))})
	}
	return views
}
