package middleware

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Incoming ids end up in log lines and search run logs, keep them short and printable.
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)

// RequestID tags every request with an id, reusing the caller's X-Request-ID when it is well formed.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if !requestIDPattern.MatchString(rid) {
				rid = uuid.NewString()
			}

			c.Set(ContextKeyRequestID, rid)
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			return next(c)
		}
	}
}

// RequestIDFromContext returns the id stored by RequestID, or "" outside of it.
func RequestIDFromContext(c echo.Context) string {
	rid, _ := c.Get(ContextKeyRequestID).(string)
	return rid
}
