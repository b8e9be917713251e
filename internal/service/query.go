package service

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	stopwordExpr  = regexp.MustCompile(`(?i)\b(please|find|me|us|show|get|list|search|searching|look|looking|for|i|we|need|want|some|any|all|the|a|an|of|leads?|top|best)\b`)
	countExpr     = regexp.MustCompile(`\b(\d{1,4})\b`)
	whitespace    = regexp.MustCompile(`\s+`)
	locationWords = []string{" in ", " near ", " at "}
)

const defaultNiche = "business"

// QueryParser interprets free-form search prompts such as "find 20 bakeries in Leeds".
type QueryParser struct {
	DefaultLocation string
}

// QueryResult holds the structured parameters derived from a prompt.
// Count is zero when the prompt names no number.
type QueryResult struct {
	Niche    string
	Location string
	Count    int
}

// NewQueryParser creates a prompt parser. An empty default location selects London.
func NewQueryParser(defaultLocation string) *QueryParser {
	if strings.TrimSpace(defaultLocation) == "" {
		defaultLocation = "London"
	}
	return &QueryParser{DefaultLocation: defaultLocation}
}

// Parse converts a prompt into niche, location and an optional count.
func (p *QueryParser) Parse(prompt string) (QueryResult, error) {
	prompt = whitespace.ReplaceAllString(strings.TrimSpace(prompt), " ")
	if prompt == "" {
		return QueryResult{}, ValidationError{Message: "prompt is required"}
	}

	subject, location := splitLocation(prompt)

	count := 0
	if match := countExpr.FindStringSubmatch(subject); len(match) > 1 {
		count, _ = strconv.Atoi(match[1])
		subject = strings.Replace(subject, match[0], " ", 1)
	}

	niche := stopwordExpr.ReplaceAllString(subject, " ")
	niche = strings.Trim(whitespace.ReplaceAllString(niche, " "), " ,.")
	if niche == "" {
		niche = defaultNiche
	}

	location = titleCase(strings.Trim(location, " ,.?!"))
	if location == "" {
		location = p.DefaultLocation
	}

	return QueryResult{Niche: niche, Location: location, Count: count}, nil
}

// splitLocation cuts the prompt at the last location preposition.
func splitLocation(prompt string) (string, string) {
	lowered := strings.ToLower(prompt)
	if len(lowered) != len(prompt) {
		lowered = prompt
	}
	padded := " " + lowered + " "
	cut, width := -1, 0
	for _, word := range locationWords {
		if idx := strings.LastIndex(padded, word); idx > cut {
			cut, width = idx, len(word)
		}
	}
	if cut < 0 {
		return prompt, ""
	}
	// padded is one byte longer at the front than prompt.
	start := cut - 1
	end := cut - 1 + width
	subject := ""
	if start > 0 {
		subject = prompt[:start]
	}
	location := ""
	if end < len(prompt) {
		location = prompt[end:]
	}
	return subject, location
}

func titleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	parts := strings.Fields(value)
	for i, p := range parts {
		runes := []rune(strings.ToLower(p))
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
