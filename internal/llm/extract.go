package llm

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrNoJSON indicates the model text holds no bracketed JSON value.
var ErrNoJSON = errors.New("llm: no json value in model response")

// Shape selects which kind of JSON value to look for.
type Shape int

const (
	ShapeArray Shape = iota
	ShapeObject
)

func (s Shape) brackets() (byte, byte) {
	if s == ShapeObject {
		return '{', '}'
	}
	return '[', ']'
}

// StripFences removes markdown code fences and surrounding whitespace.
func StripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// Slice returns the substring between the first opening and the last
// closing bracket of shape.
func Slice(text string, shape Shape) (string, error) {
	open, closing := shape.brackets()
	cleaned := StripFences(text)
	start := strings.IndexByte(cleaned, open)
	end := strings.LastIndexByte(cleaned, closing)
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}
	return cleaned[start : end+1], nil
}

// ExtractArray decodes the JSON array embedded in text into untyped values.
func ExtractArray(text string) ([]any, error) {
	raw, err := Slice(text, ShapeArray)
	if err != nil {
		return nil, err
	}
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, eris.Wrap(err, "llm: decode json array")
	}
	return items, nil
}

// DecodeObject decodes the JSON object embedded in text into v.
func DecodeObject(text string, v any) error {
	raw, err := Slice(text, ShapeObject)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return eris.Wrap(err, "llm: decode json object")
	}
	return nil
}
