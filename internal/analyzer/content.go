package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"resume-match/internal/analyzer/segment"
	"resume-match/internal/analyzer/tables"
)

const minBulletLen = 16

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// contentStats feeds the scorer: bullet totals for the quantification
// sub-score and occurrence counts for the two penalty sub-scores.
type contentStats struct {
	bullets      int
	unquantified int
	buzzwords    int
	outdated     int
}

// contentChecker runs the hygiene checks over a segmented resume.
type contentChecker struct {
	buzzwords   []termPattern
	outdated    []termPattern
	actionVerbs map[string]bool
	education   []termPattern
}

type termPattern struct {
	term string
	re   *regexp.Regexp
}

func newContentChecker(t *tables.Tables) *contentChecker {
	verbs := make(map[string]bool, len(t.ActionVerbs))
	for _, v := range t.ActionVerbs {
		verbs[strings.ToLower(v)] = true
	}
	return &contentChecker{
		buzzwords:   compileTerms(t.Buzzwords),
		outdated:    compileTerms(t.OutdatedTech),
		actionVerbs: verbs,
		education:   compileTerms(t.EducationTerms),
	}
}

// compileTerms builds word-boundary matchers so "go-getter" does not fire
// inside "on-the-go-getters" style run-ons and "flash" does not fire inside
// "flashlight".
func compileTerms(terms []string) []termPattern {
	out := make([]termPattern, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		re := regexp.MustCompile(`(^|\W)` + regexp.QuoteMeta(term) + `($|\W)`)
		out = append(out, termPattern{term: term, re: re})
	}
	return out
}

func (p termPattern) count(lower string) int {
	// Overlapping separators between adjacent hits make FindAllString
	// undercount, so walk the string manually.
	n := 0
	for rest := lower; ; {
		loc := p.re.FindStringIndex(rest)
		if loc == nil {
			return n
		}
		n++
		rest = rest[loc[0]+1:]
		if rest == "" {
			return n
		}
	}
}

// check produces content findings and the aggregate stats for scoring.
func (c *contentChecker) check(doc *segment.Document) ([]Finding, contentStats) {
	var findings []Finding
	var stats contentStats

	for _, bullet := range splitBullets(doc.SectionBody("experience")) {
		stats.bullets++
		lower := strings.ToLower(bullet)
		if !isQuantified(bullet) {
			stats.unquantified++
			findings = append(findings, Finding{
				Kind:     KindUnquantifiedBullet,
				Severity: SeverityMedium,
				Location: excerpt(bullet),
				Message:  "bullet has no measurable result; add a number, percentage or amount",
			})
		}
		for _, bw := range c.buzzwords {
			n := bw.count(lower)
			if n == 0 {
				continue
			}
			stats.buzzwords += n
			findings = append(findings, Finding{
				Kind:     KindBuzzword,
				Severity: SeverityLow,
				Location: excerpt(bullet),
				Term:     bw.term,
				Message:  fmt.Sprintf("replace the filler phrase %q with a concrete accomplishment", bw.term),
			})
		}
	}

	lowerAll := strings.ToLower(doc.RawText)
	for _, ot := range c.outdated {
		n := ot.count(lowerAll)
		if n == 0 {
			continue
		}
		stats.outdated += n
		findings = append(findings, Finding{
			Kind:     KindOutdatedTech,
			Severity: SeverityLow,
			Term:     ot.term,
			Message:  fmt.Sprintf("%q reads as dated; list a current equivalent or drop it", ot.term),
		})
	}

	findings = append(findings, c.checkSummary(doc)...)
	findings = append(findings, c.checkEducation(doc)...)
	return findings, stats
}

// checkSummary flags a summary that carries neither a number nor a single
// action verb, which tends to read as generic filler.
func (c *contentChecker) checkSummary(doc *segment.Document) []Finding {
	body := doc.SectionBody("summary")
	if strings.TrimSpace(body) == "" {
		return nil
	}
	if containsDigit(body) {
		return nil
	}
	for _, word := range strings.FieldsFunc(strings.ToLower(body), func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		if c.actionVerbs[word] {
			return nil
		}
	}
	return []Finding{{
		Kind:     KindWeakSummary,
		Severity: SeverityLow,
		Location: "summary",
		Message:  "summary has no numbers and no action verbs; lead with a concrete achievement",
	}}
}

// checkEducation flags an education section that names no degree or no
// graduation year. A missing section altogether is reported structurally
// by the engine, not here.
func (c *contentChecker) checkEducation(doc *segment.Document) []Finding {
	body := doc.SectionBody("education")
	if strings.TrimSpace(body) == "" {
		return nil
	}
	lower := strings.ToLower(body)
	var findings []Finding
	hasDegree := false
	for _, term := range c.education {
		if term.count(lower) > 0 {
			hasDegree = true
			break
		}
	}
	if !hasDegree {
		findings = append(findings, Finding{
			Kind:     KindEducationGap,
			Severity: SeverityLow,
			Location: "education",
			Message:  "education section names no degree or certification",
		})
	}
	if !yearPattern.MatchString(body) {
		findings = append(findings, Finding{
			Kind:     KindEducationGap,
			Severity: SeverityLow,
			Location: "education",
			Message:  "education section lists no graduation year",
		})
	}
	return findings
}

// splitBullets treats each non-blank experience line as a bullet, stripping
// leading bullet punctuation. Very short lines are assumed to be employer or
// date headings rather than accomplishment bullets.
func splitBullets(body string) []string {
	var bullets []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-•*‣·◦ \t")
		if len(line) < minBulletLen {
			continue
		}
		bullets = append(bullets, line)
	}
	return bullets
}

// isQuantified reports whether a bullet carries a measurable result: any
// digit, a percent sign or a currency amount.
func isQuantified(bullet string) bool {
	if containsDigit(bullet) {
		return true
	}
	return strings.ContainsAny(bullet, "%$€£")
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func excerpt(bullet string) string {
	const max = 60
	if len(bullet) <= max {
		return bullet
	}
	cut := bullet[:max]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
