package analyzer

import "math"

// Overall score weights. Keyword coverage dominates because it is what
// screening software filters on first.
const (
	weightKeywordMatch     = 0.50
	weightQuantification   = 0.20
	weightBuzzwordPenalty  = 0.15
	weightFreshnessPenalty = 0.15
)

// Per-occurrence deductions for the penalty sub-scores.
const (
	buzzwordDeduction = 10
	outdatedDeduction = 5
)

// keywordMatchScore is the matched share of the profile's total weight on a
// 0..100 scale. A profile with no weight scores zero rather than dividing
// by it.
func keywordMatchScore(matched, total float64) int {
	if total <= 0 {
		return 0
	}
	return roundScore(matched / total * 100)
}

// quantificationScore is the share of experience bullets that carry a
// measurable result. No bullets at all means nothing to penalize.
func quantificationScore(stats contentStats) int {
	if stats.bullets == 0 {
		return 100
	}
	quantified := stats.bullets - stats.unquantified
	return roundScore(float64(quantified) / float64(stats.bullets) * 100)
}

func buzzwordScore(stats contentStats) int {
	return clampScore(100 - buzzwordDeduction*stats.buzzwords)
}

func freshnessScore(stats contentStats) int {
	return clampScore(100 - outdatedDeduction*stats.outdated)
}

func overallScore(s SubScores) int {
	weighted := weightKeywordMatch*float64(s.KeywordMatch) +
		weightQuantification*float64(s.Quantification) +
		weightBuzzwordPenalty*float64(s.BuzzwordPenalty) +
		weightFreshnessPenalty*float64(s.FreshnessPenalty)
	return roundScore(weighted)
}

func gradeFor(overall int) string {
	switch {
	case overall >= 80:
		return "A"
	case overall >= 70:
		return "B"
	case overall >= 60:
		return "C"
	case overall >= 40:
		return "D"
	default:
		return "F"
	}
}

func roundScore(v float64) int {
	return clampScore(int(math.Round(v)))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
