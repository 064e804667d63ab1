package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-match/internal/analyzer"
)

// PGRepo implements Repo using Postgres. The score report is stored as
// JSONB so the full finding and action detail survives round trips.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, user_id, document_id, job_description, profile_field, status, report, error_message, duration_ms, created_at`

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (id, user_id, document_id, job_description, profile_field, status, report, error_message, duration_ms, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	report, err := marshalReport(analysis.Report)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.UserID,
		analysis.DocumentID,
		analysis.JobDescription,
		analysis.ProfileField,
		analysis.Status,
		report,
		nullString(analysis.ErrorMessage),
		analysis.DurationMs,
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns a user's analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, userID, analysisID string) (Analysis, error) {
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE user_id = $1 AND id = $2
LIMIT 1`
	return scanAnalysis(r.DB.QueryRowContext(ctx, query, userID, analysisID))
}

// ListByUser returns analyses newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var report sql.NullString
	var errorMessage sql.NullString
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.DocumentID,
		&a.JobDescription,
		&a.ProfileField,
		&a.Status,
		&report,
		&errorMessage,
		&a.DurationMs,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	a.ErrorMessage = errorMessage.String
	if report.Valid && report.String != "" {
		var rep analyzer.ScoreReport
		if err := json.Unmarshal([]byte(report.String), &rep); err != nil {
			return Analysis{}, fmt.Errorf("decode report for analysis %s: %w", a.ID, err)
		}
		a.Report = &rep
	}
	return a, nil
}

func marshalReport(report *analyzer.ScoreReport) (any, error) {
	if report == nil {
		return nil, nil
	}
	data, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return string(data), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var _ Repo = (*PGRepo)(nil)
