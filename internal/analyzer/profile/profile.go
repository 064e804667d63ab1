package profile

import (
	"sort"
	"strings"

	"resume-match/internal/analyzer/keywords"
	"resume-match/internal/analyzer/tables"
)

// CustomField labels profiles derived from a submitted job description.
const CustomField = "custom"

// Keyword is one weighted target term.
type Keyword struct {
	Term     string
	Weight   float64
	Category string
}

// KeywordProfile is the weighted target vocabulary a resume is scored
// against. Terms within a profile are unique (case-insensitive).
type KeywordProfile struct {
	Field    string
	Keywords []Keyword
}

// TotalWeight returns the sum of all keyword weights.
func (p KeywordProfile) TotalWeight() float64 {
	var total float64
	for _, kw := range p.Keywords {
		total += kw.Weight
	}
	return total
}

// Resolver produces a KeywordProfile for an analysis request: from the job
// description when one was submitted, otherwise from the best-effort field
// inference over the resume text. Resolution never fails; the default domain
// guarantees a usable profile.
type Resolver struct {
	extractor *keywords.Extractor
	tables    *tables.Tables
}

// NewResolver builds a Resolver over the static tables.
func NewResolver(t *tables.Tables, extractor *keywords.Extractor) *Resolver {
	return &Resolver{extractor: extractor, tables: t}
}

// Resolve returns the profile to score against. A non-empty job description
// yields an ad-hoc profile weighted by term frequency; otherwise the resume's
// inferred domain selects a built-in default profile.
func (r *Resolver) Resolve(jobDescription, resumeText string) KeywordProfile {
	if strings.TrimSpace(jobDescription) != "" {
		return r.fromJobDescription(jobDescription)
	}
	return r.BuiltIn(r.InferDomain(resumeText))
}

// InferDomain counts field-indicator keyword occurrences per known domain
// and returns the domain with the highest count. Ties are broken by the
// declared domain order in the table; zero hits anywhere falls back to the
// default domain.
func (r *Resolver) InferDomain(resumeText string) string {
	lower := strings.ToLower(resumeText)
	best := r.tables.DefaultDomain
	bestCount := 0
	for _, d := range r.tables.Domains {
		count := 0
		for _, indicator := range d.Indicators {
			count += strings.Count(lower, strings.ToLower(indicator))
		}
		if count > bestCount {
			best = d.Name
			bestCount = count
		}
	}
	return best
}

// BuiltIn returns the default profile for a domain, or the default domain's
// profile when the domain is unknown.
func (r *Resolver) BuiltIn(domain string) KeywordProfile {
	spec, ok := r.tables.Profiles[domain]
	if !ok {
		spec = r.tables.Profiles[r.tables.DefaultDomain]
	}
	p := KeywordProfile{Field: spec.Field}
	seen := make(map[string]bool, len(spec.Keywords))
	for _, kw := range spec.Keywords {
		term := strings.ToLower(strings.TrimSpace(kw.Term))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		p.Keywords = append(p.Keywords, Keyword{Term: term, Weight: kw.Weight, Category: kw.Category})
	}
	return p
}

func (r *Resolver) fromJobDescription(jobDescription string) KeywordProfile {
	counts := r.extractor.Counts(jobDescription)
	p := KeywordProfile{Field: CustomField}
	for term, count := range counts {
		p.Keywords = append(p.Keywords, Keyword{
			Term:     term,
			Weight:   float64(count),
			Category: r.categoryFor(term),
		})
	}
	// Highest-frequency terms first; lexical order within equal weights
	// keeps the profile deterministic for identical input.
	sort.Slice(p.Keywords, func(i, j int) bool {
		if p.Keywords[i].Weight != p.Keywords[j].Weight {
			return p.Keywords[i].Weight > p.Keywords[j].Weight
		}
		return p.Keywords[i].Term < p.Keywords[j].Term
	})
	return p
}

// categoryFor reuses the category a term carries in any built-in profile;
// terms the tables have never seen default to the domain category.
func (r *Resolver) categoryFor(term string) string {
	for _, d := range r.tables.Domains {
		spec, ok := r.tables.Profiles[d.Name]
		if !ok {
			continue
		}
		for _, kw := range spec.Keywords {
			if strings.EqualFold(kw.Term, term) {
				return kw.Category
			}
		}
	}
	return tables.CategoryDomain
}
