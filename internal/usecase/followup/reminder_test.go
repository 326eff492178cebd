package followup

import (
	"strings"
	"testing"

	"github.com/johnquangdev/minutes-agent/internal/domain/entities"
)

func TestGenerateAllReminders_MostUrgentFirst(t *testing.T) {
	tr := NewTracker()

	items := []entities.ActionItem{
		{Task: "Collect the survey results", Owner: "Mike"},
		{Task: "Draft the release notes", Owner: "John", Deadline: strPtr("2026-03-12")},
		{Task: "Close out the audit findings", Owner: "Sarah", Deadline: strPtr("2026-03-01")},
	}

	got := tr.GenerateAllReminders(items, entities.ChannelText, refNow)

	if len(got) != 3 {
		t.Fatalf("expected 3 reminders got %d", len(got))
	}
	if !strings.Contains(got[0], "[OVERDUE]") || !strings.Contains(got[0], "Close out the audit findings") {
		t.Errorf("expected overdue reminder first, got %q", got[0])
	}
	if !strings.Contains(got[1], "[UPCOMING]") {
		t.Errorf("expected upcoming reminder second, got %q", got[1])
	}
	if !strings.Contains(got[2], "[ACTIVE]") {
		t.Errorf("expected remaining reminder last, got %q", got[2])
	}
}

func TestRenderReminder_Slack(t *testing.T) {
	tr := NewTracker()
	item := entities.ActionItem{
		Task:     "Close out the audit findings",
		Owner:    "Sarah",
		Deadline: strPtr("2026-03-01"),
		Priority: strPtr(entities.PriorityHigh),
	}

	got := tr.RenderReminder(item, entities.ChannelSlack, refNow)

	for _, want := range []string{
		"🔴 *Action Item Reminder*",
		"*Owner:* @Sarah",
		"⚠️ *OVERDUE by 9 days*",
		"*Priority:* HIGH",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("slack reminder missing %q:\n%s", want, got)
		}
	}
}

func TestRenderReminder_SlackUpcomingGlyph(t *testing.T) {
	tr := NewTracker()
	item := entities.ActionItem{Task: "Draft the release notes", Owner: "John", Deadline: strPtr("2026-03-12")}

	got := tr.RenderReminder(item, entities.ChannelSlack, refNow)

	if !strings.Contains(got, "🟡") || !strings.Contains(got, "⏰ *Due in 2 days*") {
		t.Fatalf("unexpected upcoming slack reminder:\n%s", got)
	}
}

func TestRenderReminder_EmailEscalatesSubject(t *testing.T) {
	tr := NewTracker()
	item := entities.ActionItem{
		Task:     "Close out the audit findings",
		Owner:    "Sarah",
		Deadline: strPtr("2026-03-01"),
	}

	got := tr.RenderReminder(item, entities.ChannelEmail, refNow)

	for _, want := range []string{
		"Subject: URGENT: Overdue Action Item - Close out the audit findings",
		"Dear Sarah,",
		"(OVERDUE by 9 days)",
		"Best regards,\nMinutes Agent",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("email reminder missing %q:\n%s", want, got)
		}
	}
}

func TestRenderReminder_MissingDeadlineReadsTBD(t *testing.T) {
	tr := NewTracker()
	item := entities.ActionItem{Task: "Collect the survey results", Owner: "Mike"}

	got := tr.RenderReminder(item, entities.ChannelSlack, refNow)

	if !strings.Contains(got, "*Deadline:* TBD") || !strings.Contains(got, "🟢") {
		t.Fatalf("unexpected reminder for missing deadline:\n%s", got)
	}
}

func TestRenderReminder_UnparseableDeadlineKeptVerbatim(t *testing.T) {
	tr := NewTracker()
	item := entities.ActionItem{Task: "Confirm the venue booking", Owner: "John", Deadline: strPtr("November 1st")}

	got := tr.RenderReminder(item, entities.ChannelText, refNow)

	if !strings.Contains(got, "Deadline: November 1st") {
		t.Fatalf("expected raw deadline text kept:\n%s", got)
	}
	if !strings.Contains(got, "[ACTIVE]") {
		t.Fatalf("expected unparseable deadline to stay active:\n%s", got)
	}
}
