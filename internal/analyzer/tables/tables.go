package tables

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/tables.yaml
var embedded embed.FS

// Keyword categories used by profile keywords and missing-keyword findings.
const (
	CategorySkill  = "skill"
	CategoryTool   = "tool"
	CategoryDomain = "domain"
)

// Tables holds every static lookup table the analysis pipeline depends on.
// Loaded once at process start and treated as immutable afterwards.
type Tables struct {
	Sections       []Section              `yaml:"sections"`
	Stopwords      []string               `yaml:"stopwords"`
	Synonyms       map[string]string      `yaml:"synonyms"`
	Domains        []Domain               `yaml:"domains"`
	DefaultDomain  string                 `yaml:"default_domain"`
	Profiles       map[string]ProfileSpec `yaml:"profiles"`
	Buzzwords      []string               `yaml:"buzzwords"`
	OutdatedTech   []string               `yaml:"outdated_tech"`
	ActionVerbs    []string               `yaml:"action_verbs"`
	EducationTerms []string               `yaml:"education_terms"`
}

// Section maps heading aliases onto a canonical section label. The slice
// order in the table is the declared priority order for ambiguous headings.
type Section struct {
	Canonical string   `yaml:"canonical"`
	Aliases   []string `yaml:"aliases"`
}

// Domain holds indicator keywords for one job field. The slice order in the
// table is the declared tie-break order for field inference.
type Domain struct {
	Name       string   `yaml:"name"`
	Indicators []string `yaml:"indicators"`
}

// ProfileSpec is the raw form of a built-in default keyword profile.
type ProfileSpec struct {
	Field    string        `yaml:"field"`
	Keywords []KeywordSpec `yaml:"keywords"`
}

// KeywordSpec is one weighted keyword within a profile.
type KeywordSpec struct {
	Term     string  `yaml:"term"`
	Weight   float64 `yaml:"weight"`
	Category string  `yaml:"category"`
}

// Load parses the embedded default tables.
func Load() (*Tables, error) {
	data, err := embedded.ReadFile("data/tables.yaml")
	if err != nil {
		return nil, fmt.Errorf("tables: read embedded tables: %w", err)
	}
	return parse(data)
}

// LoadFile parses tables from an external YAML file, used to swap fixture
// tables in tests or override the built-in defaults in deployment.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("tables: read %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("tables: parse yaml: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// validate enforces the startup contract: a missing or empty required table
// is a configuration error and must stop the process before serving traffic.
func (t *Tables) validate() error {
	if len(t.Sections) == 0 {
		return fmt.Errorf("tables: sections table is empty")
	}
	for _, s := range t.Sections {
		if strings.TrimSpace(s.Canonical) == "" {
			return fmt.Errorf("tables: section with empty canonical label")
		}
		if len(s.Aliases) == 0 {
			return fmt.Errorf("tables: section %q has no aliases", s.Canonical)
		}
	}
	if len(t.Stopwords) == 0 {
		return fmt.Errorf("tables: stopwords table is empty")
	}
	if len(t.Domains) == 0 {
		return fmt.Errorf("tables: domains table is empty")
	}
	for _, d := range t.Domains {
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("tables: domain with empty name")
		}
		if len(d.Indicators) == 0 {
			return fmt.Errorf("tables: domain %q has no indicators", d.Name)
		}
	}
	if strings.TrimSpace(t.DefaultDomain) == "" {
		return fmt.Errorf("tables: default_domain is not set")
	}
	if _, ok := t.Profiles[t.DefaultDomain]; !ok {
		return fmt.Errorf("tables: default_domain %q has no profile", t.DefaultDomain)
	}
	for _, d := range t.Domains {
		if _, ok := t.Profiles[d.Name]; !ok {
			return fmt.Errorf("tables: domain %q has no profile", d.Name)
		}
	}
	for name, p := range t.Profiles {
		if len(p.Keywords) == 0 {
			return fmt.Errorf("tables: profile %q has no keywords", name)
		}
		seen := make(map[string]bool, len(p.Keywords))
		for _, kw := range p.Keywords {
			term := strings.ToLower(strings.TrimSpace(kw.Term))
			if term == "" {
				return fmt.Errorf("tables: profile %q has a keyword with empty term", name)
			}
			if seen[term] {
				return fmt.Errorf("tables: profile %q has duplicate term %q", name, term)
			}
			seen[term] = true
			if kw.Weight <= 0 {
				return fmt.Errorf("tables: profile %q term %q has non-positive weight", name, kw.Term)
			}
			switch kw.Category {
			case CategorySkill, CategoryTool, CategoryDomain:
			default:
				return fmt.Errorf("tables: profile %q term %q has unknown category %q", name, kw.Term, kw.Category)
			}
		}
	}
	if len(t.Buzzwords) == 0 {
		return fmt.Errorf("tables: buzzwords table is empty")
	}
	if len(t.OutdatedTech) == 0 {
		return fmt.Errorf("tables: outdated_tech table is empty")
	}
	if len(t.ActionVerbs) == 0 {
		return fmt.Errorf("tables: action_verbs table is empty")
	}
	if len(t.EducationTerms) == 0 {
		return fmt.Errorf("tables: education_terms table is empty")
	}
	return nil
}
