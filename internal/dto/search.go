package dto

import (
	"time"

	"github.com/octobees/leadscout/internal/entity"
)

// SearchRequest starts a lead acquisition run.
type SearchRequest struct {
	Niche    string `json:"niche"`
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// PromptSearchRequest represents a free-form search prompt.
type PromptSearchRequest struct {
	Prompt string `json:"prompt"`
	Count  int    `json:"count,omitempty"`
}

// LeadView is a lead plus the labels derived for display.
type LeadView struct {
	entity.Lead
	Tier string `json:"tier"`
}

// SearchResponse is returned once a run completes.
type SearchResponse struct {
	RunID      string              `json:"run_id,omitempty"`
	Params     entity.SearchParams `json:"params"`
	BatchesRun int                 `json:"batches_run"`
	Leads      []LeadView          `json:"leads"`
}

// HistorySummary lists a stored run without its leads.
type HistorySummary struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"created_at"`
	Params    entity.SearchParams `json:"params"`
	LeadCount int                 `json:"lead_count"`
}

// HistoryDetail is a stored run with its filtered leads.
type HistoryDetail struct {
	HistorySummary
	Matched int        `json:"matched"`
	Leads   []LeadView `json:"leads"`
}
