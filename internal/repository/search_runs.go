package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/leadscout/internal/entity"
)

// ErrSearchRunNotFound is returned when no run matches the identifier.
var ErrSearchRunNotFound = errors.New("search run not found")

// SearchRunsRepository persists completed lead searches.
type SearchRunsRepository interface {
	Save(ctx context.Context, run *entity.SearchRun) error
	List(ctx context.Context, limit int) ([]entity.SearchRun, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.SearchRun, error)
}

// Pool is the subset of pgxpool.Pool used by the repositories.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Pool = (*pgxpool.Pool)(nil)

// PGXSearchRunsRepository implements SearchRunsRepository using pgx. Leads
// are stored as a JSONB document per run.
type PGXSearchRunsRepository struct {
	pool Pool
}

// NewPGXSearchRunsRepository wires a pgx backed repository.
func NewPGXSearchRunsRepository(pool Pool) *PGXSearchRunsRepository {
	return &PGXSearchRunsRepository{pool: pool}
}

const searchRunColumns = `id, created_at, niche, location, requested_count, leads`

// Save inserts a run.
func (r *PGXSearchRunsRepository) Save(ctx context.Context, run *entity.SearchRun) error {
	if run == nil {
		return fmt.Errorf("search run payload is nil")
	}
	leads := run.Leads
	if leads == nil {
		leads = []entity.Lead{}
	}
	payload, err := json.Marshal(leads)
	if err != nil {
		return fmt.Errorf("encode leads: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO search_runs (`+searchRunColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		run.ID, run.CreatedAt, run.Params.Niche, run.Params.Location, run.Params.Count, payload,
	)
	if err != nil {
		return fmt.Errorf("insert search run: %w", err)
	}
	return nil
}

// List returns the most recent runs first.
func (r *PGXSearchRunsRepository) List(ctx context.Context, limit int) ([]entity.SearchRun, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+searchRunColumns+` FROM search_runs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list search runs: %w", err)
	}
	defer rows.Close()

	runs := make([]entity.SearchRun, 0)
	for rows.Next() {
		run, err := scanSearchRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan search run row: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate search runs: %w", err)
	}
	return runs, nil
}

// Get loads one run by id.
func (r *PGXSearchRunsRepository) Get(ctx context.Context, id uuid.UUID) (*entity.SearchRun, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+searchRunColumns+` FROM search_runs WHERE id = $1`, id)
	run, err := scanSearchRun(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSearchRunNotFound
		}
		return nil, fmt.Errorf("get search run: %w", err)
	}
	return run, nil
}

func scanSearchRun(row pgx.Row) (*entity.SearchRun, error) {
	var (
		run       entity.SearchRun
		createdAt time.Time
		count     int
		payload   []byte
	)
	if err := row.Scan(&run.ID, &createdAt, &run.Params.Niche, &run.Params.Location, &count, &payload); err != nil {
		return nil, err
	}
	run.CreatedAt = createdAt
	run.Params.Count = count
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &run.Leads); err != nil {
			return nil, fmt.Errorf("decode leads: %w", err)
		}
	}
	if run.Leads == nil {
		run.Leads = []entity.Lead{}
	}
	return &run, nil
}
