package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// HeaderGeminiKey lets a caller supply their own Gemini credential.
const HeaderGeminiKey = "X-Gemini-Key"

// GeminiKey stores the caller's Gemini key on the context, falling back to
// the server-wide key when the header is absent.
func GeminiKey(fallback string) echo.MiddlewareFunc {
	fallback = strings.TrimSpace(fallback)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := strings.TrimSpace(c.Request().Header.Get(HeaderGeminiKey))
			if key == "" {
				key = fallback
			}
			c.Set(ContextKeyGeminiKey, key)
			return next(c)
		}
	}
}

// GeminiKeyFromContext returns the key resolved by GeminiKey, or "".
func GeminiKeyFromContext(c echo.Context) string {
	if val, ok := c.Get(ContextKeyGeminiKey).(string); ok {
		return val
	}
	return ""
}
