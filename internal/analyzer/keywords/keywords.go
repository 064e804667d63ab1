package keywords

import (
	"sort"
	"strings"
	"unicode"

	"resume-match/internal/analyzer/tables"
)

// Set is a set of normalized terms.
type Set map[string]bool

// Has reports whether the set contains the term (case-insensitive).
func (s Set) Has(term string) bool {
	return s[strings.ToLower(strings.TrimSpace(term))]
}

// Sorted returns the terms in lexical order for deterministic output.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for term := range s {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

// Extractor tokenizes text into normalized salient terms: lower-cased,
// punctuation-stripped, stop words removed, with known aliases collapsed to a
// canonical form ("ReactJS" and "React.js" both become "react"). Extraction
// is deterministic and side-effect free.
type Extractor struct {
	stopwords map[string]bool
	phrases   []phraseAlias
	synonyms  map[string]string
}

type phraseAlias struct {
	alias     string
	canonical string
}

// New builds an Extractor from the stopword and synonym tables. Aliases that
// contain spaces or punctuation ("supply chain", "react.js") are rewritten as
// whole phrases before tokenization so multi-word technology names survive as
// single tokens.
func New(t *tables.Tables) *Extractor {
	e := &Extractor{
		stopwords: make(map[string]bool, len(t.Stopwords)),
		synonyms:  make(map[string]string, len(t.Synonyms)),
	}
	for _, w := range t.Stopwords {
		e.stopwords[strings.ToLower(strings.TrimSpace(w))] = true
	}
	for alias, canonical := range t.Synonyms {
		alias = strings.ToLower(strings.TrimSpace(alias))
		canonical = strings.ToLower(strings.TrimSpace(canonical))
		if alias == "" || canonical == "" {
			continue
		}
		if isPlainWord(alias) {
			e.synonyms[alias] = canonical
		} else {
			e.phrases = append(e.phrases, phraseAlias{alias: alias, canonical: canonical})
		}
	}
	// Longest alias first so "microservices architecture" is rewritten
	// before "microservices" ever could be.
	sort.Slice(e.phrases, func(i, j int) bool {
		if len(e.phrases[i].alias) != len(e.phrases[j].alias) {
			return len(e.phrases[i].alias) > len(e.phrases[j].alias)
		}
		return e.phrases[i].alias < e.phrases[j].alias
	})
	return e
}

// Extract returns the set of normalized terms in text. Empty input yields an
// empty set, never an error.
func (e *Extractor) Extract(text string) Set {
	set := make(Set)
	for term := range e.Counts(text) {
		set[term] = true
	}
	return set
}

// Counts returns each normalized term with its occurrence count, used to
// weight keywords derived from a job description.
func (e *Extractor) Counts(text string) map[string]int {
	counts := make(map[string]int)
	if strings.TrimSpace(text) == "" {
		return counts
	}

	lower := strings.ToLower(text)
	for _, p := range e.phrases {
		lower = strings.ReplaceAll(lower, p.alias, " "+p.canonical+" ")
	}

	for _, token := range tokenize(lower) {
		if canonical, ok := e.synonyms[token]; ok {
			token = canonical
		}
		if e.stopwords[token] {
			continue
		}
		if len(token) < 2 || isNumeric(token) {
			continue
		}
		counts[token]++
	}
	return counts
}

// tokenize splits on punctuation while keeping the characters canonical
// terms are built from: letters, digits, and the -, +, # of terms like
// data-structures, c++ and c#.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return false
		case r == '-' || r == '+' || r == '#':
			return false
		}
		return true
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "-")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func isPlainWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
