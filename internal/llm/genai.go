package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"google.golang.org/genai"
)

// GenAIOption configures a GenAI backed generator.
type GenAIOption func(*genaiSettings)

type genaiSettings struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// WithBaseURL points the client at a different API host.
func WithBaseURL(url string) GenAIOption {
	return func(s *genaiSettings) {
		s.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient overrides the HTTP client used by the SDK.
func WithHTTPClient(hc *http.Client) GenAIOption {
	return func(s *genaiSettings) {
		if hc != nil {
			s.httpClient = hc
		}
	}
}

// WithTimeout bounds every model call.
func WithTimeout(d time.Duration) GenAIOption {
	return func(s *genaiSettings) {
		s.timeout = d
	}
}

// GenAIClient calls Gemini through the google.golang.org/genai SDK.
type GenAIClient struct {
	client  *genai.Client
	timeout time.Duration
}

// NewGenAIClient creates a generator for apiKey.
func NewGenAIClient(ctx context.Context, apiKey string, opts ...GenAIOption) (*GenAIClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	settings := genaiSettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: settings.httpClient,
	}
	if settings.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: settings.baseURL + "/"}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, eris.Wrap(err, "llm: create genai client")
	}
	return &GenAIClient{client: client, timeout: settings.timeout}, nil
}

// NewGenAIFactory returns a Factory that builds clients with opts.
func NewGenAIFactory(opts ...GenAIOption) Factory {
	return func(ctx context.Context, apiKey string) (Generator, error) {
		return NewGenAIClient(ctx, apiKey, opts...)
	}
}

// Generate sends a single-turn prompt and returns the concatenated text parts.
func (c *GenAIClient) Generate(ctx context.Context, req Request) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), buildConfig(req))
	if err != nil {
		return "", eris.Wrapf(err, "llm: generate content with %s", req.Model)
	}
	return resp.Text(), nil
}

func buildConfig(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:      req.Temperature,
		ResponseMIMEType: req.ResponseMIMEType,
	}
	for _, tool := range req.Tools {
		switch tool {
		case ToolGoogleMaps:
			cfg.Tools = append(cfg.Tools, &genai.Tool{GoogleMaps: &genai.GoogleMaps{}})
		case ToolGoogleSearch:
			cfg.Tools = append(cfg.Tools, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
		}
	}
	return cfg
}

var _ Generator = (*GenAIClient)(nil)
