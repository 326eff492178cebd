package followup

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/minutes-agent/internal/domain/entities"
)

// RenderReminder formats a reminder notification for one action item on
// the given channel. Pure formatting: nothing is delivered anywhere.
func (t *Tracker) RenderReminder(item entities.ActionItem, channel string, now time.Time) string {
	switch channel {
	case entities.ChannelEmail:
		return t.renderEmailReminder(item, now)
	case entities.ChannelSlack:
		return t.renderSlackReminder(item, now)
	default:
		return t.renderTextReminder(item, now)
	}
}

// GenerateAllReminders renders reminders for every item, most urgent
// first: overdue, then upcoming, then the rest. The ordering is a
// presentation priority only.
func (t *Tracker) GenerateAllReminders(items []entities.ActionItem, channel string, now time.Time) []string {
	cats := t.Categorize(items, now)

	reminders := []string{}
	for _, item := range cats.Overdue {
		reminders = append(reminders, t.RenderReminder(item, channel, now))
	}
	for _, item := range cats.Upcoming {
		reminders = append(reminders, t.RenderReminder(item, channel, now))
	}
	for _, item := range append(cats.OnTrack, cats.NoDeadline...) {
		reminders = append(reminders, t.RenderReminder(item, channel, now))
	}

	return reminders
}

func (t *Tracker) renderSlackReminder(item entities.ActionItem, now time.Time) string {
	category := t.CategoryOf(item, now)

	glyph := "🟢"
	switch category {
	case entities.CategoryOverdue:
		glyph = "🔴"
	case entities.CategoryUpcoming:
		glyph = "🟡"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s *Action Item Reminder*\n\n", glyph)
	fmt.Fprintf(&b, "*Task:* %s\n", item.Task)
	fmt.Fprintf(&b, "*Owner:* @%s\n", item.Owner)
	fmt.Fprintf(&b, "*Deadline:* %s\n", t.deadlineLine(item, category, now, "⚠️ *OVERDUE by %d days*", "⏰ *Due in %d days*"))

	if p := item.PriorityText(); p != "" {
		fmt.Fprintf(&b, "*Priority:* %s\n", strings.ToUpper(p))
	}

	return b.String()
}

func (t *Tracker) renderEmailReminder(item entities.ActionItem, now time.Time) string {
	category := t.CategoryOf(item, now)

	subject := "Action Item Reminder"
	switch category {
	case entities.CategoryOverdue:
		subject = fmt.Sprintf("URGENT: Overdue Action Item - %s", clip(item.Task, 50))
	case entities.CategoryUpcoming:
		subject = fmt.Sprintf("Upcoming Deadline: %s", clip(item.Task, 50))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n\n", subject)
	fmt.Fprintf(&b, "Dear %s,\n\n", item.Owner)
	b.WriteString("This is a reminder about the following action item:\n\n")
	fmt.Fprintf(&b, "Task: %s\n", item.Task)
	fmt.Fprintf(&b, "Deadline: %s\n", t.deadlineLine(item, category, now, "(OVERDUE by %d days)", "(Due in %d days)"))

	if p := item.PriorityText(); p != "" {
		fmt.Fprintf(&b, "Priority: %s\n", strings.ToUpper(p))
	}

	b.WriteString("\nPlease provide an update on the status of this task.\n\n")
	b.WriteString("Best regards,\nMinutes Agent")

	return b.String()
}

func (t *Tracker) renderTextReminder(item entities.ActionItem, now time.Time) string {
	category := t.CategoryOf(item, now)

	status := "ACTIVE"
	switch category {
	case entities.CategoryOverdue:
		status = "OVERDUE"
	case entities.CategoryUpcoming:
		status = "UPCOMING"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] Action Item Reminder\n", status)
	fmt.Fprintf(&b, "Task: %s\n", item.Task)
	fmt.Fprintf(&b, "Owner: %s\n", item.Owner)
	fmt.Fprintf(&b, "Deadline: %s\n", t.deadlineLine(item, category, now, "(OVERDUE by %d days)", "(Due in %d days)"))

	if p := item.PriorityText(); p != "" {
		fmt.Fprintf(&b, "Priority: %s\n", p)
	}

	return b.String()
}

// deadlineLine renders the deadline with channel-specific urgency wording
// appended for overdue and upcoming items. Missing deadlines read "TBD".
func (t *Tracker) deadlineLine(item entities.ActionItem, category entities.DeadlineCategory, now time.Time, overdueFmt, upcomingFmt string) string {
	if !item.HasDeadline() {
		return "TBD"
	}

	resolved, ok := t.ParseDeadline(item.DeadlineText(), now)
	if !ok {
		return item.DeadlineText()
	}

	switch category {
	case entities.CategoryOverdue:
		return fmt.Sprintf("%s %s", item.DeadlineText(), fmt.Sprintf(overdueFmt, -daysUntil(resolved, now)))
	case entities.CategoryUpcoming:
		return fmt.Sprintf("%s %s", item.DeadlineText(), fmt.Sprintf(upcomingFmt, daysUntil(resolved, now)))
	default:
		return item.DeadlineText()
	}
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
