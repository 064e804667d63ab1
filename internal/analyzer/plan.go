package analyzer

import (
	"fmt"
	"sort"
	"strings"
)

// maxActions caps the plan so the reader gets a short prioritized list
// instead of a wall of advice.
const maxActions = 10

// buildActions turns findings into an ordered action plan. Structural gaps
// come first, then missing keywords in descending weight, then writing
// fixes. The order is fully determined by the findings, so identical input
// yields an identical plan.
func buildActions(findings []Finding) []string {
	var actions []string

	for _, f := range findings {
		if f.Kind == KindMissingSection {
			actions = append(actions, fmt.Sprintf("Add a %s section; reviewers and screening software look for it explicitly.", titleCase(f.Location)))
		}
	}

	missing := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if f.Kind == KindMissingKeyword {
			missing = append(missing, f)
		}
	}
	sort.SliceStable(missing, func(i, j int) bool {
		if missing[i].Weight != missing[j].Weight {
			return missing[i].Weight > missing[j].Weight
		}
		return missing[i].Term < missing[j].Term
	})
	for _, f := range missing {
		actions = append(actions, fmt.Sprintf("Work %q into your skills or experience; it is a high-value %s term for this role.", f.Term, f.Category))
	}

	if n := countKind(findings, KindUnquantifiedBullet); n > 0 {
		actions = append(actions, fmt.Sprintf("Add numbers to %d experience %s; measurable results read far stronger than duties.", n, pluralBullets(n)))
	}
	if terms := termsOfKind(findings, KindBuzzword); len(terms) > 0 {
		actions = append(actions, fmt.Sprintf("Cut filler phrases (%s) and describe what you actually delivered.", strings.Join(terms, ", ")))
	}
	if terms := termsOfKind(findings, KindOutdatedTech); len(terms) > 0 {
		actions = append(actions, fmt.Sprintf("Replace dated technology mentions (%s) with their current equivalents.", strings.Join(terms, ", ")))
	}
	if countKind(findings, KindWeakSummary) > 0 {
		actions = append(actions, "Rewrite the summary to open with an action verb and a concrete, numbered achievement.")
	}
	for _, f := range findings {
		if f.Kind == KindEducationGap {
			actions = append(actions, "Education: "+f.Message+".")
		}
	}

	if len(actions) > maxActions {
		actions = actions[:maxActions]
	}
	return actions
}

func countKind(findings []Finding, kind string) int {
	n := 0
	for _, f := range findings {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

// termsOfKind returns the distinct terms for a kind, sorted for stable
// output.
func termsOfKind(findings []Finding, kind string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, f := range findings {
		if f.Kind != kind || seen[f.Term] {
			continue
		}
		seen[f.Term] = true
		terms = append(terms, f.Term)
	}
	sort.Strings(terms)
	return terms
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func pluralBullets(n int) string {
	if n == 1 {
		return "bullet"
	}
	return "bullets"
}
