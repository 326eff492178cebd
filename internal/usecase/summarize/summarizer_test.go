package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// fakeExternal is a canned external capability for tests.
type fakeExternal struct {
	out string
	err error
}

func (f *fakeExternal) Summarize(_ context.Context, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

func TestSummarizeBullets_ShortInputPassesThrough(t *testing.T) {
	s := NewSummarizer(nil, nil)
	text := "The quarterly budget review went well overall. We still need to trim marketing expenses further. Next quarter looks considerably more promising."

	got := s.SummarizeBullets(context.Background(), text, 6)

	want := []string{
		"The quarterly budget review went well overall",
		"We still need to trim marketing expenses further",
		"Next quarter looks considerably more promising",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d bullets got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bullet %d: expected %q got %q", i, want[i], got[i])
		}
	}
}

func TestExtractKeySentences_PrefersDecisionLanguageInOriginalOrder(t *testing.T) {
	s := NewSummarizer(nil, nil)

	decisionA := "We decided to adopt the new deployment process for every service"
	decisionB := "The deadline for migration tasks must be agreed by the team"
	text := strings.Join([]string{
		"The team gathered in the main conference room",
		"Coffee was served before the session began properly",
		decisionA,
		"Some folks discussed the weather for a while",
		decisionB,
		"The meeting room was fairly warm throughout",
	}, ". ") + "."

	got := s.ExtractKeySentences(text, 2)

	if len(got) != 2 {
		t.Fatalf("expected 2 sentences got %d: %v", len(got), got)
	}
	if got[0] != decisionA || got[1] != decisionB {
		t.Fatalf("expected decision sentences in original order, got %v", got)
	}
}

func TestExtractDecisions_DeduplicatesRestatedClause(t *testing.T) {
	s := NewSummarizer(nil, nil)
	text := "We have decided to launch the product in November. The weather is nice today."

	got := s.ExtractDecisions(text)

	if len(got) != 1 {
		t.Fatalf("expected exactly 1 decision got %d: %v", len(got), got)
	}
	if got[0] != "Launch the product in November" {
		t.Fatalf("unexpected decision %q", got[0])
	}
}

func TestExtractDecisions_KeywordSentences(t *testing.T) {
	s := NewSummarizer(nil, nil)
	text := "The board approved the hiring plan for next year. Lunch arrived at noon."

	got := s.ExtractDecisions(text)

	if len(got) != 1 {
		t.Fatalf("expected 1 decision got %d: %v", len(got), got)
	}
	if got[0] != "The board approved the hiring plan for next year" {
		t.Fatalf("unexpected decision %q", got[0])
	}
}

func TestExtractDecisions_CappedAtTen(t *testing.T) {
	s := NewSummarizer(nil, nil)

	topics := []string{
		"alpha", "beta", "gamma", "delta", "epsilon", "zeta",
		"eta", "theta", "iota", "kappa", "lambda", "sigma",
	}
	var b strings.Builder
	for _, topic := range topics {
		fmt.Fprintf(&b, "The board approved the %s proposal this afternoon. ", topic)
	}

	got := s.ExtractDecisions(b.String())

	if len(got) != 10 {
		t.Fatalf("expected 10 decisions got %d", len(got))
	}
}

func TestSummarizeBullets_ExternalCondensesText(t *testing.T) {
	ext := &fakeExternal{out: "The group agreed to ship the release next week."}
	s := NewSummarizer(ext, nil)

	got := s.SummarizeBullets(context.Background(), "Some long transcript text goes here for the capability.", 6)

	if len(got) != 1 {
		t.Fatalf("expected 1 bullet got %d: %v", len(got), got)
	}
	if got[0] != "The group agreed to ship the release next week" {
		t.Fatalf("unexpected bullet %q", got[0])
	}
}

func TestSummarizeBullets_ExternalFailureFallsBackToExtractive(t *testing.T) {
	ext := &fakeExternal{err: errors.New("upstream unavailable")}
	s := NewSummarizer(ext, nil)
	text := "The quarterly budget review went well overall. We still need to trim marketing expenses further. Next quarter looks considerably more promising."

	got := s.SummarizeBullets(context.Background(), text, 6)

	if len(got) == 0 {
		t.Fatal("expected extractive fallback bullets, got none")
	}
	for _, bullet := range got {
		if !strings.Contains(text, bullet) {
			t.Errorf("fallback bullet %q not taken from the input", bullet)
		}
	}
}

func TestSummarizeBullets_NonPositiveTarget(t *testing.T) {
	s := NewSummarizer(nil, nil)

	if got := s.SummarizeBullets(context.Background(), "Anything at all in the transcript.", 0); len(got) != 0 {
		t.Fatalf("expected no bullets got %v", got)
	}
}
