// Package llm is the boundary to the generative model used for lead
// discovery, pitches and audits.
package llm

import (
	"context"
	"errors"
)

// Tool names a grounding capability the model may use.
type Tool string

const (
	// ToolGoogleMaps grounds answers on map listings. Only some model
	// variants accept it.
	ToolGoogleMaps Tool = "googleMaps"
	// ToolGoogleSearch grounds answers on live web search.
	ToolGoogleSearch Tool = "googleSearch"
)

// MIMEJSON asks the model to answer with a JSON document.
const MIMEJSON = "application/json"

// ErrMissingAPIKey is returned before any network call when no credential is configured.
var ErrMissingAPIKey = errors.New("API key is missing, configure it in settings")

// Request is one prompt sent to the model.
type Request struct {
	Model            string
	Prompt           string
	Tools            []Tool
	Temperature      *float32
	ResponseMIMEType string
}

// Generator sends a request and returns the model's text answer.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Factory builds a Generator bound to one API key.
type Factory func(ctx context.Context, apiKey string) (Generator, error)

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Temperature returns a pointer suitable for Request.Temperature.
func Temperature(v float32) *float32 {
	return &v
}
