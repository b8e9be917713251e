package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/octobees/leadscout/internal/llm"
	"github.com/octobees/leadscout/internal/service"
)

func TestSuccess(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Success(c, 0, "hello", map[string]string{"foo": "bar"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var payload APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Status != "success" || payload.Message != "hello" {
		t.Fatalf("unexpected response: %+v", payload)
	}
}

func TestError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Error(c, 0, "boom"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected default status 500, got %d", rec.Code)
	}

	var payload APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Status != "error" || payload.Message != "boom" {
		t.Fatalf("unexpected response: %+v", payload)
	}
}

func TestFromError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"missing key", llm.ErrMissingAPIKey, http.StatusUnauthorized, llm.ErrMissingAPIKey.Error()},
		{"validation", service.ValidationError{Message: "niche is required"}, http.StatusBadRequest, "niche is required"},
		{"invalid id", service.ErrInvalidRunID, http.StatusBadRequest, service.ErrInvalidRunID.Error()},
		{"not found", service.ErrRunNotFound, http.StatusNotFound, service.ErrRunNotFound.Error()},
		{"no leads", service.ErrNoQualifyingLeads, http.StatusUnprocessableEntity, service.ErrNoQualifyingLeads.Error()},
		{"model", &service.ModelError{Op: "search leads", Err: errors.New("quota exceeded")}, http.StatusBadGateway, "quota exceeded"},
		{"timeout", &service.ModelError{Op: "search leads", Err: context.DeadlineExceeded}, http.StatusGatewayTimeout, "model request timed out"},
		{"unknown", errors.New("db password wrong"), http.StatusInternalServerError, "internal server error"},
	}

	e := echo.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if err := FromError(c, tc.err); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			var payload APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if payload.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, payload.Message)
			}
		})
	}
}

func TestCSV(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := CSV(c, "leads.csv", "Name\n\"A\""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Header().Get(echo.HeaderContentDisposition); got != `attachment; filename="leads.csv"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if rec.Header().Get(echo.HeaderContentType) != "text/csv; charset=utf-8" || rec.Body.String() != "Name\n\"A\"" {
		t.Fatalf("unexpected csv response: %q %q", rec.Header().Get(echo.HeaderContentType), rec.Body.String())
	}
}
