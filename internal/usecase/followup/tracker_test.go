package followup

import (
	"testing"
	"time"

	"github.com/johnquangdev/minutes-agent/internal/domain/entities"
)

// refNow is a fixed Tuesday used across the categorization tests.
var refNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func TestParseDeadline(t *testing.T) {
	tr := NewTracker()

	cases := []struct {
		deadline string
		want     string
		ok       bool
	}{
		{"2026-04-01", "2026-04-01", true},
		{"04/01/2026", "2026-04-01", true},
		{"Friday", "2026-03-13", true},
		{"by friday", "2026-03-13", true},
		// Reference day is a Tuesday: "tuesday" rolls a full week.
		{"tuesday", "2026-03-17", true},
		{"in 5 days", "2026-03-15", true},
		{"November 1st", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := tr.ParseDeadline(tc.deadline, refNow)
		if ok != tc.ok {
			t.Errorf("ParseDeadline(%q): expected ok=%v got %v", tc.deadline, tc.ok, ok)
			continue
		}
		if ok && got.Format("2006-01-02") != tc.want {
			t.Errorf("ParseDeadline(%q): expected %s got %s", tc.deadline, tc.want, got.Format("2006-01-02"))
		}
	}
}

func TestCategorize_PartitionIsExhaustiveAndDisjoint(t *testing.T) {
	tr := NewTracker()

	items := []entities.ActionItem{
		{Task: "Close out the audit findings", Owner: "Sarah", Deadline: strPtr("2026-03-01")},
		{Task: "Draft the release notes", Owner: "Mike", Deadline: strPtr("2026-03-12")},
		{Task: "Review the rollout checklist", Owner: "John", Deadline: strPtr("2026-03-13")},
		{Task: "Ship the migration tooling", Owner: "Sarah", Deadline: strPtr("2026-03-10")},
		{Task: "Plan the next offsite", Owner: "Mike", Deadline: strPtr("2026-04-01")},
		{Task: "Confirm the venue booking", Owner: "John", Deadline: strPtr("November 1st")},
		{Task: "Collect the survey results", Owner: "Sarah"},
	}

	cats := tr.Categorize(items, refNow)

	if n := len(cats.Overdue); n != 1 {
		t.Errorf("expected 1 overdue got %d", n)
	}
	// Same-day, +2 and the +3 boundary all count as upcoming.
	if n := len(cats.Upcoming); n != 3 {
		t.Errorf("expected 3 upcoming got %d", n)
	}
	// A deadline too far out, and one that cannot be parsed, are on track.
	if n := len(cats.OnTrack); n != 2 {
		t.Errorf("expected 2 on_track got %d", n)
	}
	if n := len(cats.NoDeadline); n != 1 {
		t.Errorf("expected 1 no_deadline got %d", n)
	}
	if total := cats.Total(); total != len(items) {
		t.Errorf("partition not exhaustive: %d categorized of %d", total, len(items))
	}
}

func TestCategoryOf(t *testing.T) {
	tr := NewTracker()

	cases := []struct {
		deadline *string
		want     entities.DeadlineCategory
	}{
		{strPtr("2026-03-01"), entities.CategoryOverdue},
		{strPtr("2026-03-09"), entities.CategoryOverdue},
		{strPtr("2026-03-10"), entities.CategoryUpcoming},
		{strPtr("2026-03-13"), entities.CategoryUpcoming},
		{strPtr("2026-03-14"), entities.CategoryOnTrack},
		{strPtr("Friday"), entities.CategoryUpcoming},
		{strPtr("November 1st"), entities.CategoryOnTrack},
		{nil, entities.CategoryNoDeadline},
	}
	for _, tc := range cases {
		item := entities.ActionItem{Task: "Review the quarterly numbers", Owner: "Sarah", Deadline: tc.deadline}
		if got := tr.CategoryOf(item, refNow); got != tc.want {
			t.Errorf("CategoryOf(%v): expected %s got %s", tc.deadline, tc.want, got)
		}
	}
}

func TestNextSteps_FixedOrderAndWording(t *testing.T) {
	tr := NewTracker()

	items := []entities.ActionItem{
		{Task: "Close out the audit findings", Owner: "Sarah", Deadline: strPtr("2026-03-01"), Priority: strPtr(entities.PriorityHigh)},
		{Task: "Collect the survey results", Owner: "Mike"},
	}

	got := tr.NextSteps(items, refNow)

	want := []string{
		"Follow up on 1 overdue action item(s)",
		"Prioritize 1 high-priority action item(s)",
		"Assign deadlines to 1 action item(s)",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d steps got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: expected %q got %q", i, want[i], got[i])
		}
	}
}

func TestNextSteps_EmptyWhenNothingNeedsAttention(t *testing.T) {
	tr := NewTracker()

	items := []entities.ActionItem{
		{Task: "Plan the next offsite", Owner: "Mike", Deadline: strPtr("2026-04-01")},
	}

	if got := tr.NextSteps(items, refNow); len(got) != 0 {
		t.Fatalf("expected no steps got %v", got)
	}
}
