package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/octobees/leadscout/internal/entity"
)

// rawRecord is one lead as the model described it, after field-presence
// checks and type coercion but before defaults and scoring.
type rawRecord struct {
	Name                  string
	Address               string
	Phone                 string
	Website               string
	Email                 string
	Instagram             string
	LinkedIn              string
	Type                  string
	Rating                float64
	ReviewCount           int
	MobileSpeedIssue      bool
	MobileSpeedConfidence entity.Confidence
}

// parseRecords validates untyped model output into raw records. Entries that
// are not objects or that lack a name or address are dropped.
func parseRecords(items []any) []rawRecord {
	records := make([]rawRecord, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		record := rawRecord{
			Name:                  stringField(fields, "name"),
			Address:               stringField(fields, "address"),
			Phone:                 stringField(fields, "phone"),
			Website:               stringField(fields, "website"),
			Email:                 stringField(fields, "email"),
			Instagram:             stringField(fields, "instagram"),
			LinkedIn:              stringField(fields, "linkedin"),
			Type:                  stringField(fields, "type"),
			Rating:                ratingField(fields, "rating"),
			ReviewCount:           countField(fields, "reviewCount", "reviews", "review_count"),
			MobileSpeedIssue:      boolField(fields, "mobile_speed_issue", "mobileSpeedIssue"),
			MobileSpeedConfidence: confidenceField(fields, "mobile_speed_confidence", "mobileSpeedConfidence"),
		}
		if record.Name == "" || record.Address == "" {
			continue
		}
		records = append(records, record)
	}
	return records
}

func lookup(fields map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if value, ok := fields[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

func stringField(fields map[string]any, keys ...string) string {
	value, ok := lookup(fields, keys...)
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func numberField(fields map[string]any, keys ...string) float64 {
	value, ok := lookup(fields, keys...)
	if !ok {
		return 0
	}
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(v, ",", "")), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func ratingField(fields map[string]any, keys ...string) float64 {
	rating := numberField(fields, keys...)
	switch {
	case rating < 0:
		return 0
	case rating > 5:
		return 5
	default:
		return rating
	}
}

func countField(fields map[string]any, keys ...string) int {
	count := numberField(fields, keys...)
	if count <= 0 {
		return 0
	}
	if count > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(count)
}

func boolField(fields map[string]any, keys ...string) bool {
	value, ok := lookup(fields, keys...)
	if !ok {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}

func confidenceField(fields map[string]any, keys ...string) entity.Confidence {
	switch strings.ToLower(stringField(fields, keys...)) {
	case "low":
		return entity.ConfidenceLow
	case "medium":
		return entity.ConfidenceMedium
	case "high":
		return entity.ConfidenceHigh
	default:
		return ""
	}
}
