// Package analyzer implements the resume analysis pipeline: section
// segmentation, keyword matching against a resolved profile, content
// checks over experience bullets, sub-score computation and the
// prioritized action plan.
package analyzer

// Finding kinds produced by the pipeline.
const (
	KindMissingSection     = "missing_section"
	KindMissingKeyword     = "missing_keyword"
	KindUnquantifiedBullet = "unquantified_bullet"
	KindBuzzword           = "buzzword"
	KindOutdatedTech       = "outdated_tech"
	KindWeakSummary        = "weak_summary"
	KindEducationGap       = "education_gap"
)

// Finding severities, ordered from most to least urgent.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Finding is one concrete issue located in the resume. Term, Weight and
// Category are set only for keyword findings; Location carries a section
// label or a bullet excerpt depending on the kind.
type Finding struct {
	Kind     string  `json:"kind"`
	Severity string  `json:"severity"`
	Location string  `json:"location,omitempty"`
	Term     string  `json:"term,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Category string  `json:"category,omitempty"`
	Message  string  `json:"message"`
}

// SubScores are the four component scores, each on a 0..100 scale.
type SubScores struct {
	KeywordMatch     int `json:"keyword_match"`
	Quantification   int `json:"quantification"`
	BuzzwordPenalty  int `json:"buzzword_penalty"`
	FreshnessPenalty int `json:"freshness_penalty"`
}

// ScoreReport is the complete result of one analysis run. Identical input
// always produces an identical report.
type ScoreReport struct {
	Overall         int       `json:"overall"`
	Grade           string    `json:"grade"`
	SubScores       SubScores `json:"sub_scores"`
	ProfileField    string    `json:"profile_field"`
	MatchedKeywords []string  `json:"matched_keywords"`
	MissingKeywords []string  `json:"missing_keywords"`
	Findings        []Finding `json:"findings"`
	Actions         []string  `json:"actions"`
}
