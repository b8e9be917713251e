package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/octobees/leadscout/internal/entity"
	"github.com/octobees/leadscout/internal/service"
)

func TestAuditHandler_Generate(t *testing.T) {
	model := &scriptedModel{replies: []reply{{text: `{"overallScore": 62, "summary": "Needs HTTPS"}`}}}
	h := NewAuditHandler(service.NewAuditService(model.factory(), ""))
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/audits", `{"lead":{"name":"Crumbs","website":"crumbs.co.uk"}}`, "key")
	if err := h.Generate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var report entity.AuditReport
	decodeEnvelope(t, rec, &report)
	if report.OverallScore != 62 || report.Summary != "Needs HTTPS" {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestAuditHandler_GenerateErrors(t *testing.T) {
	e := echo.New()
	cases := []struct {
		name   string
		body   string
		reply  string
		status int
	}{
		{"missing lead name", `{"lead":{}}`, "", http.StatusBadRequest},
		{"unparsable audit", `{"lead":{"name":"Crumbs"}}`, "I could not audit this site.", http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			model := &scriptedModel{replies: []reply{{text: tc.reply}}}
			h := NewAuditHandler(service.NewAuditService(model.factory(), ""))
			c, rec := newJSONContext(e, http.MethodPost, "/audits", tc.body, "key")
			if err := h.Generate(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
		})
	}
}
