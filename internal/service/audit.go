package service

import (
	"context"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/octobees/leadscout/internal/entity"
	"github.com/octobees/leadscout/internal/llm"
)

// AuditService produces structured website audits.
type AuditService struct {
	factory llm.Factory
	model   string
}

// NewAuditService constructs an AuditService. An empty model selects the maps model.
func NewAuditService(factory llm.Factory, model string) *AuditService {
	if strings.TrimSpace(model) == "" {
		model = DefaultMapsModel
	}
	return &AuditService{factory: factory, model: model}
}

// Generate audits one lead. Transport and parse failures are both returned
// as *ModelError.
//
// The request keeps the grounding tools but not the JSON response type:
// the API rejects the two together, so the object is sliced out of the text.
func (s *AuditService) Generate(ctx context.Context, apiKey string, lead entity.Lead) (*entity.AuditReport, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, llm.ErrMissingAPIKey
	}
	gen, err := s.factory(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	text, err := gen.Generate(ctx, llm.Request{
		Model:  s.model,
		Prompt: auditPrompt(lead),
		Tools:  []llm.Tool{llm.ToolGoogleMaps, llm.ToolGoogleSearch},
	})
	if err != nil {
		return nil, newModelError("generate audit", err, "audit generation failed")
	}

	var report entity.AuditReport
	if err := llm.DecodeObject(text, &report); err != nil {
		return nil, newModelError("parse audit", eris.Wrapf(err, "parse audit for %s", lead.Name), "")
	}
	normalizeAudit(&report)
	return &report, nil
}

func normalizeAudit(report *entity.AuditReport) {
	report.OverallScore = clampScore(report.OverallScore, 100)
	for i := range report.Categories {
		report.Categories[i].Score = clampScore(report.Categories[i].Score, 10)
	}
	if report.Categories == nil {
		report.Categories = []entity.AuditCategory{}
	}
	if report.KeyFindings == nil {
		report.KeyFindings = []entity.AuditFinding{}
	}
	if report.Roadmap == nil {
		report.Roadmap = []entity.RoadmapPhase{}
	}
	if report.TechnicalDetails == nil {
		report.TechnicalDetails = []entity.TechnicalDetail{}
	}
}

// clampScore rounds to one decimal and bounds the result to [0, hi].
func clampScore(v, hi float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return math.Round(v*10) / 10
}
