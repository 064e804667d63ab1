package analyzer

import "testing"

func TestKeywordMatchScore(t *testing.T) {
	cases := []struct {
		name    string
		matched float64
		total   float64
		want    int
	}{
		{name: "full", matched: 3, total: 3, want: 100},
		{name: "two_thirds", matched: 2, total: 3, want: 67},
		{name: "none", matched: 0, total: 3, want: 0},
		{name: "zero_total_weight", matched: 0, total: 0, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keywordMatchScore(tc.matched, tc.total); got != tc.want {
				t.Fatalf("keywordMatchScore(%v, %v) = %d, expected %d", tc.matched, tc.total, got, tc.want)
			}
		})
	}
}

func TestQuantificationScore(t *testing.T) {
	cases := []struct {
		name  string
		stats contentStats
		want  int
	}{
		{name: "no_bullets", stats: contentStats{}, want: 100},
		{name: "all_quantified", stats: contentStats{bullets: 4}, want: 100},
		{name: "three_quarters", stats: contentStats{bullets: 4, unquantified: 1}, want: 75},
		{name: "none_quantified", stats: contentStats{bullets: 4, unquantified: 4}, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := quantificationScore(tc.stats); got != tc.want {
				t.Fatalf("quantificationScore(%+v) = %d, expected %d", tc.stats, got, tc.want)
			}
		})
	}
}

func TestPenaltyScoresFloorAtZero(t *testing.T) {
	if got := buzzwordScore(contentStats{buzzwords: 3}); got != 70 {
		t.Fatalf("buzzwordScore(3) = %d, expected 70", got)
	}
	if got := buzzwordScore(contentStats{buzzwords: 50}); got != 0 {
		t.Fatalf("buzzwordScore(50) = %d, expected 0", got)
	}
	if got := freshnessScore(contentStats{outdated: 2}); got != 90 {
		t.Fatalf("freshnessScore(2) = %d, expected 90", got)
	}
	if got := freshnessScore(contentStats{outdated: 100}); got != 0 {
		t.Fatalf("freshnessScore(100) = %d, expected 0", got)
	}
}

func TestOverallScore(t *testing.T) {
	cases := []struct {
		name string
		sub  SubScores
		want int
	}{
		{name: "perfect", sub: SubScores{KeywordMatch: 100, Quantification: 100, BuzzwordPenalty: 100, FreshnessPenalty: 100}, want: 100},
		{name: "zero", sub: SubScores{}, want: 0},
		{name: "weighted_mix", sub: SubScores{KeywordMatch: 80, Quantification: 50, BuzzwordPenalty: 100, FreshnessPenalty: 100}, want: 80},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := overallScore(tc.sub); got != tc.want {
				t.Fatalf("overallScore(%+v) = %d, expected %d", tc.sub, got, tc.want)
			}
		})
	}
}

func TestGradeFor(t *testing.T) {
	cases := []struct {
		overall int
		grade   string
	}{
		{overall: 100, grade: "A"},
		{overall: 80, grade: "A"},
		{overall: 79, grade: "B"},
		{overall: 70, grade: "B"},
		{overall: 69, grade: "C"},
		{overall: 60, grade: "C"},
		{overall: 59, grade: "D"},
		{overall: 40, grade: "D"},
		{overall: 39, grade: "F"},
		{overall: 0, grade: "F"},
	}
	for _, tc := range cases {
		if got := gradeFor(tc.overall); got != tc.grade {
			t.Fatalf("gradeFor(%d) = %q, expected %q", tc.overall, got, tc.grade)
		}
	}
}
