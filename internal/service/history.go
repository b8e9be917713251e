package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/octobees/leadscout/internal/entity"
	"github.com/octobees/leadscout/internal/repository"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryService records completed searches so they can be revisited and exported.
type HistoryService struct {
	repo repository.SearchRunsRepository
	now  func() time.Time
}

// NewHistoryService creates a HistoryService.
func NewHistoryService(repo repository.SearchRunsRepository) *HistoryService {
	return &HistoryService{repo: repo, now: time.Now}
}

// Record stores a search run and returns it.
func (s *HistoryService) Record(ctx context.Context, params entity.SearchParams, leads []entity.Lead) (*entity.SearchRun, error) {
	run := &entity.SearchRun{
		ID:        uuid.New(),
		CreatedAt: s.now().UTC(),
		Params:    params,
		Leads:     leads,
	}
	if err := s.repo.Save(ctx, run); err != nil {
		return nil, eris.Wrap(err, "record search run")
	}
	return run, nil
}

// List returns recent runs, newest first. The limit defaults to 20 and is capped at 100.
func (s *HistoryService) List(ctx context.Context, limit int) ([]entity.SearchRun, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	runs, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, eris.Wrap(err, "list search runs")
	}
	return runs, nil
}

// Get loads a run by its textual id.
func (s *HistoryService) Get(ctx context.Context, rawID string) (*entity.SearchRun, error) {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return nil, ErrInvalidRunID
	}
	run, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSearchRunNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, eris.Wrap(err, "get search run")
	}
	return run, nil
}
