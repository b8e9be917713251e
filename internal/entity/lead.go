package entity

import "strings"

// ServiceID identifies one of the offers in the service catalog.
type ServiceID string

// Service identifiers emitted by the classifier.
const (
	ServiceCheck ServiceID = "check"
	ServiceFix   ServiceID = "fix"
	ServiceBuild ServiceID = "build"
	ServiceCare  ServiceID = "care"
)

// Confidence grades how sure the model is about a flagged mobile speed issue.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Lead is a discovered business with enrichment and scoring attached.
type Lead struct {
	Name                  string     `json:"name"`
	Phone                 string     `json:"phone"`
	Website               string     `json:"website"`
	Email                 string     `json:"email"`
	Instagram             string     `json:"instagram,omitempty"`
	LinkedIn              string     `json:"linkedin,omitempty"`
	Rating                float64    `json:"rating"`
	ReviewCount           int        `json:"reviewCount"`
	Address               string     `json:"address"`
	GoogleMapsLink        string     `json:"googleMapsLink,omitempty"`
	Type                  string     `json:"type"`
	RecommendedServiceID  ServiceID  `json:"recommendedServiceId,omitempty"`
	MobileSpeedIssue      bool       `json:"mobile_speed_issue"`
	MobileSpeedConfidence Confidence `json:"mobile_speed_confidence,omitempty"`
	LeadScore             int        `json:"leadScore"`
}

// Key returns the identity used for deduplication and selection.
// Distinct businesses sharing name and address collide on this key.
func (l Lead) Key() string {
	return DedupKey(l.Name, l.Address)
}

// DedupKey builds the lowercased name/address identity.
func DedupKey(name, address string) string {
	return strings.ToLower(name + "-" + address)
}
