package followup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/johnquangdev/minutes-agent/internal/domain/entities"
	"github.com/johnquangdev/minutes-agent/internal/usecase/actionitem"
)

// upcomingWindowDays is how far ahead a deadline counts as "upcoming".
const upcomingWindowDays = 3

var relativeDaysRe = regexp.MustCompile(`in\s+(\d+)\s+days?`)

var weekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Tracker classifies action items against a reference time and renders
// reminder notifications. The reference time is always passed in
// explicitly so results stay deterministic within one invocation.
type Tracker struct{}

// NewTracker creates a Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// ParseDeadline resolves a heterogeneous deadline string to a calendar
// date. Precedence: ISO date, MM/DD/YYYY, weekday name (next future
// occurrence, never today), "in N days" relative to now. Unparseable
// strings report ok=false.
func (t *Tracker) ParseDeadline(deadline string, now time.Time) (time.Time, bool) {
	if deadline == "" {
		return time.Time{}, false
	}

	if d, err := time.Parse("2006-01-02", deadline); err == nil {
		return d, true
	}
	if d, err := time.Parse("01/02/2006", deadline); err == nil {
		return d, true
	}

	lower := strings.ToLower(deadline)
	for _, day := range weekdayNames {
		if strings.Contains(lower, day) {
			if d, ok := actionitem.NextWeekday(now, day); ok {
				return d, true
			}
		}
	}

	if m := relativeDaysRe.FindStringSubmatch(lower); m != nil {
		days, err := strconv.Atoi(m[1])
		if err == nil {
			return now.AddDate(0, 0, days), true
		}
	}

	return time.Time{}, false
}

// Categorize partitions action items into overdue / upcoming / on_track /
// no_deadline relative to now. The partition is exhaustive and disjoint.
// An item whose deadline text cannot be parsed to a date lands in
// on_track: the field is non-empty, so it is not no_deadline, and date
// arithmetic for overdue/upcoming needs a resolved date.
func (t *Tracker) Categorize(items []entities.ActionItem, now time.Time) *entities.CategorizedItems {
	out := &entities.CategorizedItems{
		Overdue:    []entities.ActionItem{},
		Upcoming:   []entities.ActionItem{},
		OnTrack:    []entities.ActionItem{},
		NoDeadline: []entities.ActionItem{},
	}

	for _, item := range items {
		switch t.CategoryOf(item, now) {
		case entities.CategoryOverdue:
			out.Overdue = append(out.Overdue, item)
		case entities.CategoryUpcoming:
			out.Upcoming = append(out.Upcoming, item)
		case entities.CategoryOnTrack:
			out.OnTrack = append(out.OnTrack, item)
		default:
			out.NoDeadline = append(out.NoDeadline, item)
		}
	}

	return out
}

// CategoryOf derives the deadline category of a single item. Categories
// are recomputed on demand, never cached, since "now" changes.
func (t *Tracker) CategoryOf(item entities.ActionItem, now time.Time) entities.DeadlineCategory {
	if !item.HasDeadline() {
		return entities.CategoryNoDeadline
	}

	resolved, ok := t.ParseDeadline(item.DeadlineText(), now)
	if !ok {
		return entities.CategoryOnTrack
	}

	days := daysUntil(resolved, now)
	switch {
	case days < 0:
		return entities.CategoryOverdue
	case days <= upcomingWindowDays:
		return entities.CategoryUpcoming
	default:
		return entities.CategoryOnTrack
	}
}

// NextSteps derives follow-up statements from the categorized items, in a
// fixed order, emitting only the non-empty ones. High-priority counting
// is independent of deadline category.
func (t *Tracker) NextSteps(items []entities.ActionItem, now time.Time) []string {
	steps := []string{}
	cats := t.Categorize(items, now)

	if n := len(cats.Overdue); n > 0 {
		steps = append(steps, fmt.Sprintf("Follow up on %d overdue action item(s)", n))
	}
	if n := len(cats.Upcoming); n > 0 {
		steps = append(steps, fmt.Sprintf("Review %d action item(s) with upcoming deadlines", n))
	}

	highPriority := 0
	for _, item := range items {
		if item.PriorityText() == entities.PriorityHigh {
			highPriority++
		}
	}
	if highPriority > 0 {
		steps = append(steps, fmt.Sprintf("Prioritize %d high-priority action item(s)", highPriority))
	}

	if n := len(cats.NoDeadline); n > 0 {
		steps = append(steps, fmt.Sprintf("Assign deadlines to %d action item(s)", n))
	}

	return steps
}

// daysUntil counts whole calendar days from now to the resolved date,
// ignoring time of day on both sides.
func daysUntil(resolved, now time.Time) int {
	r := truncateDay(resolved)
	n := truncateDay(now)
	return int(r.Sub(n).Hours() / 24)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
