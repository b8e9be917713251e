package dto

import "github.com/octobees/leadscout/internal/entity"

// BatchPitchRequest asks for one cold email per lead.
type BatchPitchRequest struct {
	Leads []entity.Lead `json:"leads"`
}

// BatchPitchResponse carries pitch results in input order.
type BatchPitchResponse struct {
	Results []entity.PitchResult `json:"results"`
	Failed  int                  `json:"failed"`
}

// PitchRequest asks for a free-text pitch of one service.
type PitchRequest struct {
	Service string      `json:"service"`
	Lead    entity.Lead `json:"lead"`
}

// PitchResponse holds the generated pitch text.
type PitchResponse struct {
	Pitch string `json:"pitch"`
}

// AuditRequest asks for a website audit of one lead.
type AuditRequest struct {
	Lead entity.Lead `json:"lead"`
}
