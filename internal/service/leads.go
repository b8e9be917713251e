package service

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/octobees/leadscout/internal/entity"
	"github.com/octobees/leadscout/internal/llm"
	"github.com/octobees/leadscout/internal/service/scoring"
)

const (
	DefaultBatchSize  = 15
	DefaultBatchDelay = 2 * time.Second
	DefaultMapsModel  = "gemini-2.5-flash"

	mapsSearchURL      = "https://www.google.com/maps/search/?api=1&query="
	searchTemperature  = 0.1
	searchFallbackText = "failed to search for leads"
)

// SearchProgress is reported after every batch.
type SearchProgress struct {
	Batch   int
	Batches int
	Leads   int
}

// SearchProgressFunc receives batch progress. It may be nil.
type SearchProgressFunc func(SearchProgress)

// LeadsService discovers and scores leads through the maps-grounded model.
type LeadsService struct {
	factory    llm.Factory
	batchSize  int
	batchDelay time.Duration
	model      string
	sanitizer  *ContactSanitizer
	logger     *zap.Logger
}

// LeadsOption customises a LeadsService.
type LeadsOption func(*LeadsService)

// WithBatchSize overrides how many leads are requested per model call.
func WithBatchSize(size int) LeadsOption {
	return func(s *LeadsService) {
		if size > 0 {
			s.batchSize = size
		}
	}
}

// WithBatchDelay overrides the pause between batches.
func WithBatchDelay(d time.Duration) LeadsOption {
	return func(s *LeadsService) {
		s.batchDelay = d
	}
}

// WithMapsModel overrides the model used for acquisition.
func WithMapsModel(model string) LeadsOption {
	return func(s *LeadsService) {
		if strings.TrimSpace(model) != "" {
			s.model = model
		}
	}
}

// WithSanitizer overrides the contact sanitizer.
func WithSanitizer(sanitizer *ContactSanitizer) LeadsOption {
	return func(s *LeadsService) {
		if sanitizer != nil {
			s.sanitizer = sanitizer
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) LeadsOption {
	return func(s *LeadsService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewLeadsService constructs a LeadsService.
func NewLeadsService(factory llm.Factory, opts ...LeadsOption) *LeadsService {
	s := &LeadsService{
		factory:    factory,
		batchSize:  DefaultBatchSize,
		batchDelay: DefaultBatchDelay,
		model:      DefaultMapsModel,
		sanitizer:  NewContactSanitizer(defaultPhoneRegion),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search runs the batch acquisition loop and returns unique leads sorted by
// descending lead score.
func (s *LeadsService) Search(ctx context.Context, apiKey string, params entity.SearchParams, progress SearchProgressFunc) ([]entity.Lead, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, llm.ErrMissingAPIKey
	}
	params.Niche = strings.TrimSpace(params.Niche)
	params.Location = strings.TrimSpace(params.Location)
	if params.Niche == "" {
		return nil, ValidationError{Message: "niche is required"}
	}
	if params.Location == "" {
		return nil, ValidationError{Message: "location is required"}
	}
	if params.Count <= 0 {
		return nil, ValidationError{Message: "count must be greater than zero"}
	}

	gen, err := s.factory(ctx, apiKey)
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			return nil, err
		}
		return nil, newModelError("search leads", err, searchFallbackText)
	}

	batches := (params.Count + s.batchSize - 1) / s.batchSize
	pacer := NewPacer(s.batchDelay)
	seen := make(map[string]struct{})
	leads := make([]entity.Lead, 0, params.Count)
	logger := s.logger.With(zap.String("niche", params.Niche), zap.String("location", params.Location))

	for batch := 1; batch <= batches; batch++ {
		if batch > 1 {
			if err := pacer.Wait(ctx); err != nil {
				return nil, eris.Wrap(err, "wait for next batch")
			}
		}

		text, err := gen.Generate(ctx, llm.Request{
			Model:       s.model,
			Prompt:      leadBatchPrompt(s.batchSize, params.Niche, params.Location),
			Tools:       []llm.Tool{llm.ToolGoogleMaps, llm.ToolGoogleSearch},
			Temperature: llm.Temperature(searchTemperature),
		})
		pacer.Mark()
		if err != nil {
			return nil, newModelError("search leads", err, searchFallbackText)
		}

		items, err := llm.ExtractArray(text)
		if err != nil {
			logger.Warn("batch parse failed", zap.Int("batch", batch), zap.Error(err))
		} else {
			for _, record := range parseRecords(items) {
				key := entity.DedupKey(record.Name, record.Address)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				leads = append(leads, s.buildLead(record, params.Niche))
			}
		}

		logger.Debug("batch complete", zap.Int("batch", batch), zap.Int("batches", batches), zap.Int("leads", len(leads)))
		if progress != nil {
			progress(SearchProgress{Batch: batch, Batches: batches, Leads: len(leads)})
		}
		if len(leads) >= params.Count {
			break
		}
	}

	if len(leads) == 0 {
		return nil, ErrNoQualifyingLeads
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].LeadScore > leads[j].LeadScore
	})
	return leads, nil
}

func (s *LeadsService) buildLead(record rawRecord, niche string) entity.Lead {
	lead := entity.Lead{
		Name:                  record.Name,
		Phone:                 record.Phone,
		Website:               record.Website,
		Email:                 record.Email,
		Instagram:             record.Instagram,
		LinkedIn:              record.LinkedIn,
		Rating:                record.Rating,
		ReviewCount:           record.ReviewCount,
		Address:               record.Address,
		Type:                  record.Type,
		MobileSpeedIssue:      record.MobileSpeedIssue,
		MobileSpeedConfidence: record.MobileSpeedConfidence,
	}
	if lead.Phone == "" {
		lead.Phone = missingValue
	}
	if lead.Type == "" {
		lead.Type = niche
	}
	lead.MobileSpeedConfidence = scoring.SpeedBadge(lead)

	lead.GoogleMapsLink = MapsLink(lead.Name, lead.Address)
	lead.RecommendedServiceID = scoring.Classify(lead)
	lead.LeadScore = scoring.Score(lead)
	return s.sanitizer.Apply(lead)
}

// MapsLink builds the maps search URL for a business.
func MapsLink(name, address string) string {
	return mapsSearchURL + encodeURIComponent(name+" "+address)
}

var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(value string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(value))
}
