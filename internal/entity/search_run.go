package entity

import (
	"time"

	"github.com/google/uuid"
)

// SearchParams describes one lead acquisition request.
type SearchParams struct {
	Niche    string `json:"niche"`
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// SearchRun is a completed acquisition kept in history.
type SearchRun struct {
	ID        uuid.UUID    `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Params    SearchParams `json:"params"`
	Leads     []Lead       `json:"leads"`
}
