package segment

import (
	"strings"

	"resume-match/internal/analyzer/tables"
)

// HeaderLabel is the implicit section for lines before the first recognized
// heading (name, contact info). It is ignored by scoring.
const HeaderLabel = "header"

// Heading candidates are short lines; anything longer is body text even if it
// happens to start with a section word.
const maxHeadingWords = 4

// Document is raw text split into an ordered sequence of labeled sections.
// Section boundaries are non-overlapping and cover the whole text.
type Document struct {
	RawText  string
	Sections []Section
}

// Section is one labeled slice of the document. Heading holds the heading
// line exactly as written, or "" for the implicit header section. Lines holds
// the body lines exactly as they appeared so the original line sequence can
// be reconstructed.
type Section struct {
	Label   string
	Heading string
	Lines   []string
}

// Body returns the section body with surrounding blank lines trimmed.
func (s Section) Body() string {
	return strings.TrimSpace(strings.Join(s.Lines, "\n"))
}

// Has reports whether any section with the given canonical label exists.
func (d *Document) Has(label string) bool {
	for _, s := range d.Sections {
		if s.Label == label {
			return true
		}
	}
	return false
}

// SectionBody returns the combined body of every section with the given
// label, in document order. Repeated headings for the same canonical section
// are merged.
func (d *Document) SectionBody(label string) string {
	var parts []string
	for _, s := range d.Sections {
		if s.Label != label {
			continue
		}
		if body := s.Body(); body != "" {
			parts = append(parts, body)
		}
	}
	return strings.Join(parts, "\n")
}

// Segmenter splits raw resume text into canonical sections using the heading
// alias table. The table's declared order is the priority order: when a line
// matches aliases of two canonical sections, the first table entry wins.
type Segmenter struct {
	aliases map[string]string
}

// New builds a Segmenter from the section alias table.
func New(sections []tables.Section) *Segmenter {
	aliases := make(map[string]string)
	for _, sec := range sections {
		for _, alias := range sec.Aliases {
			key := normalizeHeading(alias)
			if key == "" {
				continue
			}
			if _, exists := aliases[key]; !exists {
				aliases[key] = sec.Canonical
			}
		}
	}
	return &Segmenter{aliases: aliases}
}

// Segment splits text into sections. It is total: any input, including the
// empty string, yields a Document; text with no recognized headings becomes a
// single header section.
func (s *Segmenter) Segment(text string) *Document {
	doc := &Document{RawText: text}
	lines := strings.Split(text, "\n")

	current := Section{Label: HeaderLabel}
	for _, line := range lines {
		if label, ok := s.matchHeading(line); ok {
			if len(current.Lines) > 0 || current.Heading != "" {
				doc.Sections = append(doc.Sections, current)
			}
			current = Section{Label: label, Heading: line}
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	if len(current.Lines) > 0 || current.Heading != "" {
		doc.Sections = append(doc.Sections, current)
	}
	return doc
}

func (s *Segmenter) matchHeading(line string) (string, bool) {
	normalized := normalizeHeading(line)
	if normalized == "" {
		return "", false
	}
	if len(strings.Fields(normalized)) > maxHeadingWords {
		return "", false
	}
	label, ok := s.aliases[normalized]
	return label, ok
}

// normalizeHeading lowercases a line and strips punctuation so "TECHNICAL
// SKILLS:" and "technical skills" compare equal.
func normalizeHeading(line string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(line)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
