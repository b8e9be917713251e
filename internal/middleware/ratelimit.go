package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/octobees/leadscout/internal/config"
)

// SearchPaths are the routes that trigger a lead acquisition run.
var SearchPaths = []string{"/leads/search", "/leads/prompt-search"}

// SearchRateLimiter applies one shared token bucket to the given route paths.
// With no paths it guards SearchPaths.
func SearchRateLimiter(cfg config.RateLimitConfig, paths ...string) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return next(c)
			}
		}
	}

	if len(paths) == 0 {
		paths = SearchPaths
	}
	guarded := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		guarded[p] = struct{}{}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	limiter := rate.NewLimiter(rate.Every(perRequest), cfg.Requests)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := guarded[c.Path()]; !ok {
				return next(c)
			}

			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"status":  "error",
					"message": "search rate limit exceeded",
				})
			}

			return next(c)
		}
	}
}
