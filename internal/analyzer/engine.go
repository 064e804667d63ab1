package analyzer

import (
	"fmt"
	"strings"

	"resume-match/internal/analyzer/keywords"
	"resume-match/internal/analyzer/profile"
	"resume-match/internal/analyzer/segment"
	"resume-match/internal/analyzer/tables"
)

// coreSections are the sections every resume is expected to carry. A missing
// one is a structural finding and leads the action plan.
var coreSections = []string{"summary", "experience", "education", "skills"}

// Engine is the full analysis pipeline. It is immutable after construction
// and safe for concurrent use.
type Engine struct {
	segmenter *segment.Segmenter
	extractor *keywords.Extractor
	resolver  *profile.Resolver
	checker   *contentChecker
}

// New builds an Engine over validated static tables.
func New(t *tables.Tables) *Engine {
	extractor := keywords.New(t)
	return &Engine{
		segmenter: segment.New(t.Sections),
		extractor: extractor,
		resolver:  profile.NewResolver(t, extractor),
		checker:   newContentChecker(t),
	}
}

// Analyze scores a resume, optionally against a job description. It is a
// total function: malformed or empty input degrades the report rather than
// failing, and identical input always produces an identical report.
func (e *Engine) Analyze(resumeText, jobDescription string) ScoreReport {
	doc := e.segmenter.Segment(resumeText)
	prof := e.resolver.Resolve(jobDescription, resumeText)

	findings := e.structuralFindings(doc)
	matched, missing, keywordFindings, matchedWeight := e.matchKeywords(doc, prof)
	findings = append(findings, keywordFindings...)

	contentFindings, stats := e.checker.check(doc)
	findings = append(findings, contentFindings...)

	sub := SubScores{
		KeywordMatch:     keywordMatchScore(matchedWeight, prof.TotalWeight()),
		Quantification:   quantificationScore(stats),
		BuzzwordPenalty:  buzzwordScore(stats),
		FreshnessPenalty: freshnessScore(stats),
	}
	overall := overallScore(sub)

	return ScoreReport{
		Overall:         overall,
		Grade:           gradeFor(overall),
		SubScores:       sub,
		ProfileField:    prof.Field,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Findings:        findings,
		Actions:         buildActions(findings),
	}
}

func (e *Engine) structuralFindings(doc *segment.Document) []Finding {
	findings := []Finding{}
	for _, label := range coreSections {
		if sectionHasContent(doc, label) {
			continue
		}
		findings = append(findings, Finding{
			Kind:     KindMissingSection,
			Severity: SeverityHigh,
			Location: label,
			Message:  fmt.Sprintf("resume has no usable %s section", label),
		})
	}
	return findings
}

// sectionHasContent reports whether a core section carries usable content.
// A heading over an empty body counts the same as a missing heading, and
// experience additionally needs at least one accomplishment bullet.
func sectionHasContent(doc *segment.Document, label string) bool {
	body := strings.TrimSpace(doc.SectionBody(label))
	if body == "" {
		return false
	}
	if label == "experience" {
		return len(splitBullets(body)) > 0
	}
	return true
}

// matchKeywords walks the profile in its declared order and splits it into
// matched and missing terms. Missing terms in the top half of the profile's
// weight range are flagged high severity.
func (e *Engine) matchKeywords(doc *segment.Document, prof profile.KeywordProfile) (matched, missing []string, findings []Finding, matchedWeight float64) {
	present := e.extractor.Extract(doc.RawText)
	matched = []string{}
	missing = []string{}

	var maxWeight float64
	for _, kw := range prof.Keywords {
		if kw.Weight > maxWeight {
			maxWeight = kw.Weight
		}
	}

	for _, kw := range prof.Keywords {
		if present.Has(kw.Term) {
			matched = append(matched, kw.Term)
			matchedWeight += kw.Weight
			continue
		}
		missing = append(missing, kw.Term)
		severity := SeverityMedium
		if maxWeight > 0 && kw.Weight >= maxWeight/2 {
			severity = SeverityHigh
		}
		findings = append(findings, Finding{
			Kind:     KindMissingKeyword,
			Severity: severity,
			Term:     kw.Term,
			Weight:   kw.Weight,
			Category: kw.Category,
			Message:  fmt.Sprintf("%s profile expects %q and the resume never mentions it", strings.ToLower(prof.Field), kw.Term),
		})
	}
	return matched, missing, findings, matchedWeight
}
