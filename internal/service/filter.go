package service

import (
	"strings"

	"github.com/octobees/leadscout/internal/entity"
	"github.com/octobees/leadscout/internal/service/scoring"
)

// Rating and review bands accepted by LeadFilter. Any other value matches every lead.
const (
	RatingCritical = "critical"
	RatingTarget   = "target"
	RatingGood     = "good"

	ReviewsNew  = "new"
	ReviewsBest = "best"
	ReviewsBig  = "big"
)

// LeadFilter narrows a result list for display or export.
type LeadFilter struct {
	Text    string
	Rating  string
	Reviews string
	Tier    string
}

// Matches reports whether lead passes every criterion.
func (f LeadFilter) Matches(lead entity.Lead) bool {
	if text := strings.ToLower(strings.TrimSpace(f.Text)); text != "" {
		if !strings.Contains(strings.ToLower(lead.Name), text) && !strings.Contains(strings.ToLower(lead.Address), text) {
			return false
		}
	}
	if !matchesRatingBand(strings.ToLower(strings.TrimSpace(f.Rating)), lead.Rating) {
		return false
	}
	if !matchesReviewBand(strings.ToLower(strings.TrimSpace(f.Reviews)), lead.ReviewCount) {
		return false
	}
	if tier := strings.TrimSpace(f.Tier); tier != "" && !strings.EqualFold(tier, "all") {
		if !strings.EqualFold(string(scoring.TierOf(lead)), tier) {
			return false
		}
	}
	return true
}

// FilterLeads returns the leads matching f, preserving order.
func FilterLeads(leads []entity.Lead, f LeadFilter) []entity.Lead {
	out := make([]entity.Lead, 0, len(leads))
	for _, lead := range leads {
		if f.Matches(lead) {
			out = append(out, lead)
		}
	}
	return out
}

func matchesRatingBand(band string, rating float64) bool {
	switch band {
	case RatingCritical:
		return rating < 3.8
	case RatingTarget:
		return rating >= 3.8 && rating <= 4.4
	case RatingGood:
		return rating > 4.4
	default:
		return true
	}
}

func matchesReviewBand(band string, reviews int) bool {
	switch band {
	case ReviewsNew:
		return reviews < 50
	case ReviewsBest:
		return reviews >= 50 && reviews <= 300
	case ReviewsBig:
		return reviews > 300
	default:
		return true
	}
}
