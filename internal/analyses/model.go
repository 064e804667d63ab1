package analyses

import (
	"time"

	"resume-match/internal/analyzer"
)

// Analysis statuses. Scoring runs synchronously, so an analysis is either
// completed or failed by the time it is persisted.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Analysis is one scored resume run.
type Analysis struct {
	ID             string
	UserID         string
	DocumentID     string
	JobDescription string
	ProfileField   string
	Status         string
	Report         *analyzer.ScoreReport
	ErrorMessage   string
	DurationMs     float64
	CreatedAt      time.Time
}
