package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/leadscout/internal/config"
	"github.com/octobees/leadscout/internal/handler"
	middlewarepkg "github.com/octobees/leadscout/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Leads   *handler.LeadsHandler
	History *handler.HistoryHandler
	Pitches *handler.PitchHandler
	Audits  *handler.AuditHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})
	e.GET("/services", handler.ListServices)

	api := e.Group("", middlewarepkg.GeminiKey(cfg.GeminiAPIKey))

	searchLimit := middlewarepkg.SearchRateLimiter(cfg.RateLimitSearch)
	api.POST("/leads/search", handlers.Leads.Search, searchLimit)
	api.POST("/leads/prompt-search", handlers.Leads.PromptSearch, searchLimit)

	if handlers.History != nil {
		api.GET("/leads/history", handlers.History.List)
		api.GET("/leads/history/:id", handlers.History.Get)
		api.GET("/leads/history/:id/csv", handlers.History.ExportCSV)
	}

	api.POST("/pitches/batch", handlers.Pitches.Batch)
	api.POST("/pitches", handlers.Pitches.Single)
	api.POST("/audits", handlers.Audits.Generate)
}
