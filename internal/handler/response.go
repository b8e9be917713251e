package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/leadscout/internal/llm"
	"github.com/octobees/leadscout/internal/service"
)

// APIResponse describes the standard envelope returned by the API.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success sends a successful response using the shared envelope format.
func Success(c echo.Context, status int, message string, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	payload := APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
	return c.JSON(status, payload)
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	payload := APIResponse{
		Status:  "error",
		Message: message,
	}
	return c.JSON(status, payload)
}

// FromError maps a service error onto a status code and writes the error envelope.
func FromError(c echo.Context, err error) error {
	status, message := classify(err)
	return Error(c, status, message)
}

func classify(err error) (int, string) {
	var (
		valErr   service.ValidationError
		modelErr *service.ModelError
	)
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		return http.StatusUnauthorized, err.Error()
	case errors.As(err, &valErr):
		return http.StatusBadRequest, valErr.Message
	case errors.Is(err, service.ErrInvalidRunID):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrRunNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrNoQualifyingLeads):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "model request timed out"
	case errors.As(err, &modelErr):
		return http.StatusBadGateway, modelErr.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// CSV sends body as a downloadable CSV attachment.
func CSV(c echo.Context, filename, body string) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}
