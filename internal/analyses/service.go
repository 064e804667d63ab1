package analyses

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"resume-match/internal/analyzer"
	"resume-match/internal/documents"
	"resume-match/internal/extract"
	"resume-match/internal/shared/metrics"
	"resume-match/internal/shared/storage/object"
	"resume-match/internal/shared/telemetry"
)

const maxJobDescriptionLen = 20_000

// Service runs the scoring pipeline and persists results. The pipeline is
// deterministic and fast, so analyses complete within the request.
type Service struct {
	Repo   Repo
	Docs   *documents.Service
	Store  object.ObjectStore
	Engine *analyzer.Engine
}

// AnalyzeUpload stores the uploaded file as a document, extracts its text
// and scores it. A failed extraction is persisted as a failed analysis so
// the caller can see it in history.
func (s *Service) AnalyzeUpload(ctx context.Context, userID, fileName string, file io.Reader, jobDescription string) (Analysis, error) {
	if len(jobDescription) > maxJobDescriptionLen {
		return Analysis{}, fmt.Errorf("%w: job description too long", ErrInvalidInput)
	}

	doc, err := s.Docs.Upload(ctx, userID, fileName, file)
	if err != nil {
		if errors.Is(err, documents.ErrInvalidInput) {
			return Analysis{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
		return Analysis{}, err
	}
	return s.analyzeDocument(ctx, userID, doc, jobDescription)
}

// AnalyzeDocument re-scores a previously uploaded document, reusing its
// extracted text when available.
func (s *Service) AnalyzeDocument(ctx context.Context, userID, documentID, jobDescription string) (Analysis, error) {
	if len(jobDescription) > maxJobDescriptionLen {
		return Analysis{}, fmt.Errorf("%w: job description too long", ErrInvalidInput)
	}
	doc, err := s.Docs.Repo.GetByID(ctx, userID, documentID)
	if err != nil {
		return Analysis{}, err
	}
	return s.analyzeDocument(ctx, userID, doc, jobDescription)
}

func (s *Service) analyzeDocument(ctx context.Context, userID string, doc documents.Document, jobDescription string) (Analysis, error) {
	metrics.IncAnalysisStarted()
	start := time.Now()

	analysis := Analysis{
		ID:             uuid.NewString(),
		UserID:         userID,
		DocumentID:     doc.ID,
		JobDescription: jobDescription,
		CreatedAt:      start.UTC(),
	}

	text, err := s.resumeText(ctx, userID, doc)
	if err != nil {
		metrics.IncExtractFailed(extract.Format(doc.MimeType, doc.FileName))
		metrics.IncAnalysisFailed()
		analysis.Status = StatusFailed
		analysis.ErrorMessage = err.Error()
		analysis.DurationMs = durationMs(start)
		if createErr := s.Repo.Create(ctx, analysis); createErr != nil {
			return Analysis{}, createErr
		}
		telemetry.Error("analysis.extract_failed", map[string]any{
			"analysis_id": analysis.ID,
			"document_id": doc.ID,
			"user_id":     userID,
			"error":       err.Error(),
		})
		return analysis, fmt.Errorf("%w: %s", ErrExtraction, err)
	}

	report := s.Engine.Analyze(text, jobDescription)
	analysis.Status = StatusCompleted
	analysis.Report = &report
	analysis.ProfileField = report.ProfileField
	analysis.DurationMs = durationMs(start)

	if err := s.Repo.Create(ctx, analysis); err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, err
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(analysis.DurationMs)
	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id":   analysis.ID,
		"document_id":   doc.ID,
		"user_id":       userID,
		"profile_field": report.ProfileField,
		"overall":       report.Overall,
		"grade":         report.Grade,
		"duration_ms":   analysis.DurationMs,
	})
	return analysis, nil
}

// resumeText returns the document's plain text, extracting and persisting
// it on first use.
func (s *Service) resumeText(ctx context.Context, userID string, doc documents.Document) (string, error) {
	if doc.ExtractedTextKey != "" {
		body, err := s.Store.Open(ctx, doc.ExtractedTextKey)
		if err == nil {
			defer body.Close()
			raw, readErr := io.ReadAll(body)
			if readErr == nil {
				return string(raw), nil
			}
		}
		// Fall through and re-extract from the original file.
	}

	text, err := extract.ExtractText(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName)
	if err != nil {
		return "", err
	}
	if err := s.Docs.RecordExtraction(ctx, userID, doc.ID, doc.StorageKey+".extracted.txt"); err != nil {
		telemetry.Error("analysis.record_extraction_failed", map[string]any{
			"document_id": doc.ID,
			"error":       err.Error(),
		})
	}
	return text, nil
}

// Get returns a user's analysis by ID.
func (s *Service) Get(ctx context.Context, userID, analysisID string) (Analysis, error) {
	return s.Repo.GetByID(ctx, userID, analysisID)
}

// List returns a user's analyses, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func durationMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
