package segment

import (
	"strings"
	"testing"

	"resume-match/internal/analyzer/tables"
)

func testSegmenter(t *testing.T) *Segmenter {
	t.Helper()
	tb, err := tables.Load()
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}
	return New(tb.Sections)
}

func TestSegmentLabels(t *testing.T) {
	s := testSegmenter(t)
	text := "Jane Doe\njane@example.com\n\nSUMMARY\nBackend engineer.\n\nWork Experience\n- Built an API\n\nTechnical Skills\nGo, SQL"
	doc := s.Segment(text)

	want := []string{HeaderLabel, "summary", "experience", "skills"}
	if len(doc.Sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(doc.Sections))
	}
	for i, label := range want {
		if doc.Sections[i].Label != label {
			t.Fatalf("section %d: expected label %q, got %q", i, label, doc.Sections[i].Label)
		}
	}
	if got := doc.SectionBody("skills"); got != "Go, SQL" {
		t.Fatalf("skills body: got %q", got)
	}
}

func TestSegmentNoHeadings(t *testing.T) {
	s := testSegmenter(t)
	doc := s.Segment("just a plain paragraph\nwith no headings at all")
	if len(doc.Sections) != 1 || doc.Sections[0].Label != HeaderLabel {
		t.Fatalf("expected a single header section, got %+v", doc.Sections)
	}
}

func TestSegmentEmpty(t *testing.T) {
	s := testSegmenter(t)
	doc := s.Segment("")
	if doc.Has("experience") {
		t.Fatalf("empty input should have no experience section")
	}
}

// Every input line must land in exactly one section, in order, so the
// original document can be reconstructed from the segmentation.
func TestSegmentRoundTrip(t *testing.T) {
	s := testSegmenter(t)
	text := "Jane Doe\n\nExperience\n- Shipped the thing\n\nEducation\nB.S. in CS, 2019"
	doc := s.Segment(text)

	var lines []string
	for _, sec := range doc.Sections {
		if sec.Heading != "" {
			lines = append(lines, sec.Heading)
		}
		lines = append(lines, sec.Lines...)
	}
	if got := strings.Join(lines, "\n"); got != text {
		t.Fatalf("round trip mismatch:\n got: %q\nwant: %q", got, text)
	}
}

func TestHeadingMatching(t *testing.T) {
	s := testSegmenter(t)
	cases := []struct {
		name    string
		line    string
		label   string
		matches bool
	}{
		{name: "exact", line: "Experience", label: "experience", matches: true},
		{name: "case_insensitive", line: "WORK HISTORY", label: "experience", matches: true},
		{name: "trailing_colon", line: "Skills:", label: "skills", matches: true},
		{name: "decorated", line: "=== Education ===", label: "education", matches: true},
		{name: "body_text_too_long", line: "My experience with Go spans several production systems", matches: false},
		{name: "unknown_heading", line: "Hobbies", matches: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			label, ok := s.matchHeading(tc.line)
			if ok != tc.matches {
				t.Fatalf("matchHeading(%q): matched=%v, expected %v", tc.line, ok, tc.matches)
			}
			if ok && label != tc.label {
				t.Fatalf("matchHeading(%q): label %q, expected %q", tc.line, label, tc.label)
			}
		})
	}
}

func TestRepeatedSectionsMerge(t *testing.T) {
	s := testSegmenter(t)
	doc := s.Segment("Experience\nfirst role\n\nEducation\nB.S.\n\nExperience\nsecond role")
	body := doc.SectionBody("experience")
	if !strings.Contains(body, "first role") || !strings.Contains(body, "second role") {
		t.Fatalf("expected merged experience body, got %q", body)
	}
}
