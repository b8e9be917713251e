package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/leadscout/internal/catalog"
)

// ListServices handles GET /services.
func ListServices(c echo.Context) error {
	return Success(c, http.StatusOK, "", catalog.Offers())
}
