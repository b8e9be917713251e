package scoring

import (
	"strings"

	"github.com/octobees/leadscout/internal/entity"
)

const (
	categoryWebsite = "website_priority"
	categoryReviews = "review_profile"
	categoryRating  = "rating_gap"

	maxScore = 100

	// mapsListingDomain marks websites that are only a map listing, which
	// do not earn the early-bird bonus.
	mapsListingDomain = "google.com"
)

// Tier is the sales-priority label shown next to a lead.
type Tier string

const (
	TierUrgent      Tier = "Urgent"
	TierNewBusiness Tier = "New Business"
	TierPrime       Tier = "Prime Target"
	TierReputation  Tier = "Reputation Fix"
	TierEstablished Tier = "Established/Big"
	TierStable      Tier = "Stable SMB"
)

// Tiers lists every tier in precedence order.
var Tiers = []Tier{TierUrgent, TierNewBusiness, TierPrime, TierReputation, TierEstablished, TierStable}

// ScoreResult reports the capped total and the uncapped per-category points.
type ScoreResult struct {
	Total     int
	Breakdown map[string]int
}

// Evaluate computes the lead score breakdown.
func Evaluate(lead entity.Lead) ScoreResult {
	breakdown := map[string]int{
		categoryWebsite: scoreWebsite(lead),
		categoryReviews: scoreReviews(lead),
		categoryRating:  scoreRating(lead),
	}

	total := 0
	for _, value := range breakdown {
		total += value
	}

	return ScoreResult{
		Total:     min(total, maxScore),
		Breakdown: breakdown,
	}
}

// Score returns the 0-100 priority of a lead.
func Score(lead entity.Lead) int {
	return Evaluate(lead).Total
}

// Classify picks the service to recommend.
func Classify(lead entity.Lead) entity.ServiceID {
	switch {
	case !HasWebsite(lead.Website):
		return entity.ServiceBuild
	case lead.MobileSpeedIssue:
		return entity.ServiceFix
	case lead.Rating < 4.0:
		return entity.ServiceCare
	default:
		return entity.ServiceCheck
	}
}

// TierOf evaluates the opportunity rules in order; the first match wins.
func TierOf(lead entity.Lead) Tier {
	rating := lead.Rating
	reviews := lead.ReviewCount

	switch {
	case !HasWebsite(lead.Website):
		return TierUrgent
	case reviews < 15:
		return TierNewBusiness
	case rating >= 3.8 && rating <= 4.4 && reviews >= 30 && reviews <= 300:
		return TierPrime
	case rating > 0 && rating < 3.8:
		return TierReputation
	case reviews > 600:
		return TierEstablished
	default:
		return TierStable
	}
}

// SpeedBadge returns the confidence to display for a flagged mobile speed
// issue, or an empty string when nothing is flagged.
func SpeedBadge(lead entity.Lead) entity.Confidence {
	if !lead.MobileSpeedIssue {
		return ""
	}
	if lead.MobileSpeedConfidence == "" {
		return entity.ConfidenceMedium
	}
	return lead.MobileSpeedConfidence
}

// HasWebsite reports whether the website field names a real site.
func HasWebsite(website string) bool {
	site := strings.TrimSpace(website)
	return site != "" && site != "N/A"
}

func scoreWebsite(lead entity.Lead) int {
	if !HasWebsite(lead.Website) {
		return 45
	}
	if lead.MobileSpeedIssue {
		return 25
	}
	return 0
}

// The early-bird rule only checks that the website string is non-empty,
// so a literal "N/A" still qualifies.
func scoreReviews(lead entity.Lead) int {
	reviews := lead.ReviewCount
	site := strings.TrimSpace(lead.Website)
	if reviews < 10 && site != "" && !strings.Contains(site, mapsListingDomain) {
		return 40
	}
	if reviews >= 10 && reviews <= 300 {
		return 30
	}
	return 0
}

func scoreRating(lead entity.Lead) int {
	if lead.Rating > 0 && lead.Rating <= 4.2 {
		return 15
	}
	return 0
}
