package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/octobees/leadscout/internal/catalog"
	"github.com/octobees/leadscout/internal/entity"
	"github.com/octobees/leadscout/internal/llm"
)

const (
	DefaultPitchModel = "gemini-3-flash-preview"
	DefaultPitchDelay = 300 * time.Millisecond

	// PitchFallbackText is returned when the model produced no pitch.
	PitchFallbackText = "Pitch generation failed."

	pitchConfidence = "High"
)

var errIncompleteEmail = errors.New("model response is missing subject or body")

// PitchProgressFunc receives the number of processed leads. It may be nil.
type PitchProgressFunc func(done, total int)

// PitchService writes outreach emails for scored leads.
type PitchService struct {
	factory llm.Factory
	model   string
	delay   time.Duration
	logger  *zap.Logger
}

// NewPitchService constructs a PitchService. An empty model selects the default.
func NewPitchService(factory llm.Factory, model string, delay time.Duration, logger *zap.Logger) *PitchService {
	if strings.TrimSpace(model) == "" {
		model = DefaultPitchModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PitchService{factory: factory, model: model, delay: delay, logger: logger}
}

type pitchEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// GenerateBatch writes one email per lead, in order. A lead whose call or
// decode fails yields a sentinel result and the batch continues.
func (s *PitchService) GenerateBatch(ctx context.Context, apiKey string, leads []entity.Lead, progress PitchProgressFunc) ([]entity.PitchResult, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, llm.ErrMissingAPIKey
	}
	gen, err := s.newGenerator(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	pacer := NewPacer(s.delay)
	results := make([]entity.PitchResult, 0, len(leads))
	for i, lead := range leads {
		if i > 0 {
			if err := pacer.Wait(ctx); err != nil {
				return results, eris.Wrap(err, "wait for next pitch")
			}
		}

		label := catalog.PitchLabel(lead.RecommendedServiceID)
		email, err := s.writeEmail(ctx, gen, lead, label)
		pacer.Mark()
		if err != nil {
			s.logger.Warn("pitch generation failed", zap.String("lead", lead.Name), zap.Error(err))
			results = append(results, failedPitch(lead, err))
		} else {
			results = append(results, entity.PitchResult{
				Lead:            lead,
				LeadScoreValue:  lead.LeadScore,
				ConfidenceLevel: pitchConfidence,
				PrimaryIssue:    label,
				ServiceToPitch:  label,
				EmailSubject:    email.Subject,
				EmailBody:       email.Body,
			})
		}

		if progress != nil {
			progress(i+1, len(leads))
		}
	}
	return results, nil
}

func (s *PitchService) writeEmail(ctx context.Context, gen llm.Generator, lead entity.Lead, label string) (pitchEmail, error) {
	text, err := gen.Generate(ctx, llm.Request{
		Model:            s.model,
		Prompt:           batchPitchPrompt(lead.Name, label),
		ResponseMIMEType: llm.MIMEJSON,
	})
	if err != nil {
		return pitchEmail{}, newModelError("generate pitch", err, PitchFallbackText)
	}
	var email pitchEmail
	if err := llm.DecodeObject(text, &email); err != nil {
		return pitchEmail{}, err
	}
	if strings.TrimSpace(email.Subject) == "" || strings.TrimSpace(email.Body) == "" {
		return pitchEmail{}, errIncompleteEmail
	}
	return email, nil
}

func failedPitch(lead entity.Lead, err error) entity.PitchResult {
	return entity.PitchResult{
		Lead:         lead,
		EmailSubject: entity.PitchSentinel,
		EmailBody:    entity.PitchSentinel,
		Err:          err,
		Failure:      err.Error(),
	}
}

// GeneratePitch writes a free-text pitch of serviceName for one lead. On
// failure it returns PitchFallbackText together with the error.
func (s *PitchService) GeneratePitch(ctx context.Context, apiKey, serviceName string, lead entity.Lead) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return PitchFallbackText, llm.ErrMissingAPIKey
	}
	gen, err := s.newGenerator(ctx, apiKey)
	if err != nil {
		return PitchFallbackText, err
	}
	text, err := gen.Generate(ctx, llm.Request{
		Model:  s.model,
		Prompt: adHocPitchPrompt(serviceName, lead),
	})
	if err != nil {
		return PitchFallbackText, newModelError("generate pitch", err, PitchFallbackText)
	}
	if strings.TrimSpace(text) == "" {
		return PitchFallbackText, nil
	}
	return text, nil
}

func (s *PitchService) newGenerator(ctx context.Context, apiKey string) (llm.Generator, error) {
	gen, err := s.factory(ctx, apiKey)
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			return nil, err
		}
		return nil, newModelError("create model client", err, "")
	}
	return gen, nil
}
