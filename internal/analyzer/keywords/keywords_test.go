package keywords

import (
	"reflect"
	"testing"

	"resume-match/internal/analyzer/tables"
)

func testExtractor(t *testing.T) *Extractor {
	t.Helper()
	tb, err := tables.Load()
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}
	return New(tb)
}

func TestExtract(t *testing.T) {
	e := testExtractor(t)
	cases := []struct {
		name    string
		text    string
		present []string
		absent  []string
	}{
		{
			name:    "normalizes_case_and_punctuation",
			text:    "Python, SQL; Docker!",
			present: []string{"python", "sql", "docker"},
		},
		{
			name:    "synonyms_collapse",
			text:    "Golang and ReactJS with k8s",
			present: []string{"go", "react", "kubernetes"},
			absent:  []string{"golang", "reactjs", "k8s"},
		},
		{
			name:    "phrase_alias_survives_tokenization",
			text:    "ran supply chain planning",
			present: []string{"supply-chain"},
			absent:  []string{"supply", "chain"},
		},
		{
			name:   "stopwords_and_numbers_dropped",
			text:   "with 5 years of experience",
			absent: []string{"with", "5", "years", "of", "experience"},
		},
		{
			name:    "compound_terms_keep_symbols",
			text:    "C++ and C# on ci/cd pipelines",
			present: []string{"c++", "c#", "cicd"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set := e.Extract(tc.text)
			for _, term := range tc.present {
				if !set.Has(term) {
					t.Fatalf("expected %q in %v", term, set.Sorted())
				}
			}
			for _, term := range tc.absent {
				if set.Has(term) {
					t.Fatalf("did not expect %q in %v", term, set.Sorted())
				}
			}
		})
	}
}

func TestExtractEmpty(t *testing.T) {
	e := testExtractor(t)
	if set := e.Extract("   \n\t"); len(set) != 0 {
		t.Fatalf("expected empty set, got %v", set.Sorted())
	}
}

func TestCounts(t *testing.T) {
	e := testExtractor(t)
	counts := e.Counts("Python python PYTHON, sql")
	if counts["python"] != 3 {
		t.Fatalf("expected python count 3, got %d", counts["python"])
	}
	if counts["sql"] != 1 {
		t.Fatalf("expected sql count 1, got %d", counts["sql"])
	}
}

func TestExtractDeterministic(t *testing.T) {
	e := testExtractor(t)
	text := "Go, Docker, Kubernetes and PostgreSQL on AWS"
	first := e.Extract(text).Sorted()
	second := e.Extract(text).Sorted()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("extraction not deterministic: %v vs %v", first, second)
	}
}
