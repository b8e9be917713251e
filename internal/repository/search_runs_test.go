package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/octobees/leadscout/internal/entity"
)

var runColumns = []string{"id", "created_at", "niche", "location", "requested_count", "leads"}

func TestPGXSearchRunsRepository_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new mock pool: %v", err)
	}
	defer mock.Close()

	run := &entity.SearchRun{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Params:    entity.SearchParams{Niche: "bakery", Location: "Leeds", Count: 5},
		Leads:     []entity.Lead{{Name: "Crumbs", Address: "1 Kirkgate"}},
	}
	mock.ExpectExec("INSERT INTO search_runs").
		WithArgs(run.ID, pgxmock.AnyArg(), "bakery", "Leeds", 5, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewPGXSearchRunsRepository(mock)
	if err := repo.Save(context.Background(), run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGXSearchRunsRepository_SaveError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec("INSERT INTO search_runs").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("disk full"))

	repo := NewPGXSearchRunsRepository(mock)
	err = repo.Save(context.Background(), &entity.SearchRun{ID: uuid.New()})
	if err == nil || err.Error() != "insert search run: disk full" {
		t.Fatalf("expected wrapped insert error, got %v", err)
	}
	if err := repo.Save(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil run")
	}
}

func TestPGXSearchRunsRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new mock pool: %v", err)
	}
	defer mock.Close()

	newer, older := uuid.New(), uuid.New()
	now := time.Now()
	rows := pgxmock.NewRows(runColumns).
		AddRow(newer, now, "bakery", "Leeds", 5, []byte(`[{"name":"Crumbs","address":"1 Kirkgate","leadScore":45}]`)).
		AddRow(older, now.Add(-time.Hour), "florist", "York", 10, []byte(`[]`))
	mock.ExpectQuery("FROM search_runs ORDER BY created_at DESC").WithArgs(20).WillReturnRows(rows)

	repo := NewPGXSearchRunsRepository(mock)
	runs, err := repo.List(context.Background(), 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != newer || runs[0].Params.Count != 5 || len(runs[0].Leads) != 1 || runs[0].Leads[0].LeadScore != 45 {
		t.Fatalf("unexpected first run: %+v", runs[0])
	}
	if runs[1].Params.Location != "York" || runs[1].Leads == nil {
		t.Fatalf("unexpected second run: %+v", runs[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGXSearchRunsRepository_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new mock pool: %v", err)
	}
	defer mock.Close()

	id := uuid.New()
	mock.ExpectQuery("FROM search_runs WHERE id").WithArgs(id).
		WillReturnRows(pgxmock.NewRows(runColumns).AddRow(id, time.Now(), "gym", "Hull", 3, []byte(`[{"name":"Iron","address":"2 Dock St"}]`)))

	repo := NewPGXSearchRunsRepository(mock)
	run, err := repo.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Params.Niche != "gym" || len(run.Leads) != 1 || run.Leads[0].Name != "Iron" {
		t.Fatalf("unexpected run: %+v", run)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGXSearchRunsRepository_GetNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new mock pool: %v", err)
	}
	defer mock.Close()

	id := uuid.New()
	mock.ExpectQuery("FROM search_runs WHERE id").WithArgs(id).WillReturnError(pgx.ErrNoRows)

	repo := NewPGXSearchRunsRepository(mock)
	if _, err := repo.Get(context.Background(), id); !errors.Is(err, ErrSearchRunNotFound) {
		t.Fatalf("expected ErrSearchRunNotFound, got %v", err)
	}
}
