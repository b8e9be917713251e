package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/octobees/leadscout/internal/llm"
	middlewarepkg "github.com/octobees/leadscout/internal/middleware"
)

// scriptedModel answers each call with the next scripted reply.
type scriptedModel struct {
	mu      sync.Mutex
	replies []reply
	prompts []string
}

type reply struct {
	text string
	err  error
}

func (m *scriptedModel) factory() llm.Factory {
	return func(context.Context, string) (llm.Generator, error) {
		return llm.GeneratorFunc(func(_ context.Context, req llm.Request) (string, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			idx := len(m.prompts)
			m.prompts = append(m.prompts, req.Prompt)
			if idx >= len(m.replies) {
				return "", nil
			}
			return m.replies[idx].text, m.replies[idx].err
		}), nil
	}
}

func newJSONContext(e *echo.Echo, method, target, body, apiKey string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middlewarepkg.ContextKeyGeminiKey, apiKey)
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) APIResponse {
	t.Helper()
	var raw struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode response: %v (%s)", err, rec.Body.String())
	}
	if data != nil && len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, data); err != nil {
			t.Fatalf("failed to decode data: %v", err)
		}
	}
	return APIResponse{Status: raw.Status, Message: raw.Message}
}
