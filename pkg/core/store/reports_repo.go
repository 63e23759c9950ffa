// Package store persists consolidated reports in Postgres. Persistence is
// optional: the rest of the system runs without a database.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"statement_consolidator/pkg/core/report"
)

// SavedReport is one persisted consolidation result.
type SavedReport struct {
	ID        uuid.UUID      `json:"id"`
	Filenames []string       `json:"filenames"`
	Report    *report.Report `json:"report"`
	CreatedAt time.Time      `json:"created_at"`
}

// reportPayload is the JSONB shape; id and created_at live in their own
// columns so listing does not depend on the blob.
type reportPayload struct {
	Filenames []string       `json:"filenames"`
	Report    *report.Report `json:"report"`
}

// ReportRepo stores consolidated reports as JSONB blobs over its own
// connection pool.
//
// Schema assumption (migrations managed elsewhere):
//
//	CREATE TABLE IF NOT EXISTS consolidated_reports (
//	  id UUID PRIMARY KEY,
//	  report_json JSONB NOT NULL,
//	  created_at TIMESTAMPTZ NOT NULL
//	);
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepo opens a connection pool from the DATABASE_URL environment
// variable and returns a repository over it.
func NewReportRepo(ctx context.Context) (*ReportRepo, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}
	return NewReportRepoWithURL(ctx, dbURL)
}

// NewReportRepoWithURL opens a connection pool for an explicit connection
// string.
func NewReportRepoWithURL(ctx context.Context, dbURL string) (*ReportRepo, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}
	return &ReportRepo{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (r *ReportRepo) Close() {
	r.pool.Close()
}

// Save upserts the report by ID.
func (r *ReportRepo) Save(ctx context.Context, rec *SavedReport) error {
	payload := reportPayload{Filenames: rec.Filenames, Report: rec.Report}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO consolidated_reports (id, report_json, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET
			report_json = EXCLUDED.report_json,
			created_at = EXCLUDED.created_at;
	`
	if _, err := r.pool.Exec(ctx, query, rec.ID, jsonData, rec.CreatedAt); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// Load retrieves one report by ID.
func (r *ReportRepo) Load(ctx context.Context, id uuid.UUID) (*SavedReport, error) {
	query := `SELECT report_json, created_at FROM consolidated_reports WHERE id = $1`

	var jsonData []byte
	var createdAt time.Time
	if err := r.pool.QueryRow(ctx, query, id).Scan(&jsonData, &createdAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no report found for id %s", id)
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	var payload reportPayload
	if err := json.Unmarshal(jsonData, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &SavedReport{
		ID:        id,
		Filenames: payload.Filenames,
		Report:    payload.Report,
		CreatedAt: createdAt,
	}, nil
}

// List returns the most recent reports, newest first.
func (r *ReportRepo) List(ctx context.Context, limit int) ([]*SavedReport, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, report_json, created_at FROM consolidated_reports ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var out []*SavedReport
	for rows.Next() {
		var id uuid.UUID
		var jsonData []byte
		var createdAt time.Time
		if err := rows.Scan(&id, &jsonData, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		var payload reportPayload
		if err := json.Unmarshal(jsonData, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report %s: %w", id, err)
		}
		out = append(out, &SavedReport{
			ID:        id,
			Filenames: payload.Filenames,
			Report:    payload.Report,
			CreatedAt: createdAt,
		})
	}
	return out, rows.Err()
}
