package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/octobees/leadscout/internal/entity"
)

// MemorySearchRunsRepository keeps runs in process memory. It is used when
// no database is configured.
type MemorySearchRunsRepository struct {
	mu   sync.RWMutex
	runs map[uuid.UUID]entity.SearchRun
}

// NewMemorySearchRunsRepository returns an empty store.
func NewMemorySearchRunsRepository() *MemorySearchRunsRepository {
	return &MemorySearchRunsRepository{runs: make(map[uuid.UUID]entity.SearchRun)}
}

var _ SearchRunsRepository = (*MemorySearchRunsRepository)(nil)
var _ SearchRunsRepository = (*PGXSearchRunsRepository)(nil)

func (r *MemorySearchRunsRepository) Save(_ context.Context, run *entity.SearchRun) error {
	if run == nil {
		return fmt.Errorf("search run payload is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[run.ID] = cloneRun(*run)
	return nil
}

func (r *MemorySearchRunsRepository) List(_ context.Context, limit int) ([]entity.SearchRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runs := make([]entity.SearchRun, 0, len(r.runs))
	for _, run := range r.runs {
		runs = append(runs, cloneRun(run))
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func (r *MemorySearchRunsRepository) Get(_ context.Context, id uuid.UUID) (*entity.SearchRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.runs[id]
	if !ok {
		return nil, ErrSearchRunNotFound
	}
	out := cloneRun(run)
	return &out, nil
}

func cloneRun(run entity.SearchRun) entity.SearchRun {
	leads := make([]entity.Lead, len(run.Leads))
	copy(leads, run.Leads)
	run.Leads = leads
	return run
}
