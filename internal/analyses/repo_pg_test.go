package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-match/internal/analyzer"
)

func TestPGRepoCreateMarshalsReport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	report := &analyzer.ScoreReport{Overall: 84, Grade: "A", ProfileField: "custom"}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO analyses")).
		WithArgs(
			"a1", "guest:u1", "d1", "Python and SQL", "custom", StatusCompleted,
			string(reportJSON), sqlmock.AnyArg(), 12.5, created,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	err = repo.Create(context.Background(), Analysis{
		ID:             "a1",
		UserID:         "guest:u1",
		DocumentID:     "d1",
		JobDescription: "Python and SQL",
		ProfileField:   "custom",
		Status:         StatusCompleted,
		Report:         report,
		DurationMs:     12.5,
		CreatedAt:      created,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByIDDecodesReport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	reportJSON := `{"overall":72,"grade":"B","profile_field":"Software Engineering"}`
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "document_id", "job_description", "profile_field",
		"status", "report", "error_message", "duration_ms", "created_at",
	}).AddRow("a1", "guest:u1", "d1", "", "Software Engineering", StatusCompleted, reportJSON, nil, 8.0, created)

	mock.ExpectQuery(regexp.QuoteMeta("FROM analyses")).
		WithArgs("guest:u1", "a1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	analysis, err := repo.GetByID(context.Background(), "guest:u1", "a1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if analysis.Report == nil {
		t.Fatalf("expected decoded report")
	}
	if analysis.Report.Overall != 72 || analysis.Report.Grade != "B" {
		t.Fatalf("unexpected report %+v", analysis.Report)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM analyses")).
		WithArgs("guest:u1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "guest:u1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByUserScansRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "document_id", "job_description", "profile_field",
		"status", "report", "error_message", "duration_ms", "created_at",
	}).
		AddRow("a2", "guest:u1", "d1", "", "", StatusFailed, nil, "unsupported mime type", 1.0, created.Add(time.Hour)).
		AddRow("a1", "guest:u1", "d1", "", "custom", StatusCompleted, `{"overall":84}`, nil, 9.0, created)

	mock.ExpectQuery(regexp.QuoteMeta("FROM analyses")).
		WithArgs("guest:u1", 20, 0).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	out, err := repo.ListByUser(context.Background(), "guest:u1", 0, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 analyses, got %d", len(out))
	}
	if out[0].Status != StatusFailed || out[0].ErrorMessage == "" {
		t.Fatalf("unexpected first row %+v", out[0])
	}
	if out[1].Report == nil || out[1].Report.Overall != 84 {
		t.Fatalf("unexpected second row %+v", out[1])
	}
}
