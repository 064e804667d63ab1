package analyzer

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildActionsOrdering(t *testing.T) {
	findings := []Finding{
		{Kind: KindBuzzword, Term: "synergy"},
		{Kind: KindMissingKeyword, Term: "docker", Weight: 0.8, Category: "tool"},
		{Kind: KindUnquantifiedBullet, Location: "Responsible for things"},
		{Kind: KindMissingSection, Location: "skills"},
		{Kind: KindMissingKeyword, Term: "python", Weight: 1.0, Category: "skill"},
		{Kind: KindOutdatedTech, Term: "flash"},
	}

	actions := buildActions(findings)
	if len(actions) != 6 {
		t.Fatalf("expected 6 actions, got %d: %v", len(actions), actions)
	}
	if !strings.Contains(actions[0], "Skills section") {
		t.Fatalf("expected structural action first, got %q", actions[0])
	}
	if !strings.Contains(actions[1], `"python"`) {
		t.Fatalf("expected heaviest missing keyword second, got %q", actions[1])
	}
	if !strings.Contains(actions[2], `"docker"`) {
		t.Fatalf("expected docker third, got %q", actions[2])
	}
	if !strings.Contains(actions[3], "numbers") {
		t.Fatalf("expected quantification action fourth, got %q", actions[3])
	}
	if !strings.Contains(actions[4], "synergy") {
		t.Fatalf("expected buzzword action fifth, got %q", actions[4])
	}
	if !strings.Contains(actions[5], "flash") {
		t.Fatalf("expected freshness action last, got %q", actions[5])
	}
}

func TestBuildActionsEqualWeightsAreAlphabetical(t *testing.T) {
	findings := []Finding{
		{Kind: KindMissingKeyword, Term: "sql", Weight: 1.0},
		{Kind: KindMissingKeyword, Term: "java", Weight: 1.0},
		{Kind: KindMissingKeyword, Term: "go", Weight: 1.0},
	}
	actions := buildActions(findings)
	for i, term := range []string{`"go"`, `"java"`, `"sql"`} {
		if !strings.Contains(actions[i], term) {
			t.Fatalf("action %d: expected %s, got %q", i, term, actions[i])
		}
	}
}

func TestBuildActionsCap(t *testing.T) {
	var findings []Finding
	for _, term := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		findings = append(findings, Finding{Kind: KindMissingKeyword, Term: term, Weight: 1.0})
	}
	actions := buildActions(findings)
	if len(actions) != maxActions {
		t.Fatalf("expected plan capped at %d, got %d", maxActions, len(actions))
	}
}

func TestBuildActionsDeterministic(t *testing.T) {
	findings := []Finding{
		{Kind: KindMissingSection, Location: "experience"},
		{Kind: KindMissingKeyword, Term: "go", Weight: 1.0},
		{Kind: KindBuzzword, Term: "rockstar"},
		{Kind: KindWeakSummary, Location: "summary"},
	}
	first := buildActions(findings)
	second := buildActions(findings)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("action plan not deterministic: %v vs %v", first, second)
	}
}

func TestBuildActionsEmpty(t *testing.T) {
	if actions := buildActions(nil); len(actions) != 0 {
		t.Fatalf("expected no actions for no findings, got %v", actions)
	}
}
