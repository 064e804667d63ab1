package analyses

import (
	"time"

	"resume-match/internal/analyzer"
)

// AnalysisResponse is the outward-facing representation of an analysis.
type AnalysisResponse struct {
	AnalysisID   string                `json:"analysisId"`
	DocumentID   string                `json:"documentId"`
	Status       string                `json:"status"`
	ProfileField string                `json:"profileField,omitempty"`
	Report       *analyzer.ScoreReport `json:"report,omitempty"`
	Error        string                `json:"error,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// AnalysisSummary is the list-view representation: scores without the full
// finding detail.
type AnalysisSummary struct {
	AnalysisID   string    `json:"analysisId"`
	DocumentID   string    `json:"documentId"`
	Status       string    `json:"status"`
	ProfileField string    `json:"profileField,omitempty"`
	Overall      int       `json:"overall,omitempty"`
	Grade        string    `json:"grade,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toResponse(a Analysis) AnalysisResponse {
	return AnalysisResponse{
		AnalysisID:   a.ID,
		DocumentID:   a.DocumentID,
		Status:       a.Status,
		ProfileField: a.ProfileField,
		Report:       a.Report,
		Error:        a.ErrorMessage,
		CreatedAt:    a.CreatedAt,
	}
}

func toSummary(a Analysis) AnalysisSummary {
	summary := AnalysisSummary{
		AnalysisID:   a.ID,
		DocumentID:   a.DocumentID,
		Status:       a.Status,
		ProfileField: a.ProfileField,
		CreatedAt:    a.CreatedAt,
	}
	if a.Report != nil {
		summary.Overall = a.Report.Overall
		summary.Grade = a.Report.Grade
	}
	return summary
}
