package presenter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/johnquangdev/minutes-agent/internal/domain/entities"
)

// Display-only defaults for absent action item fields. The stored item is
// never mutated.
const (
	displayDeadlineTBD     = "TBD"
	displayPriorityDefault = entities.PriorityMedium
)

// RenderJSON serializes the minutes with the stable key set consumed by
// external renderers: title, date, participants, summary, decisions,
// action_items, next_steps.
func RenderJSON(mom *entities.MinutesOfMeeting) (string, error) {
	b, err := json.MarshalIndent(mom, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render minutes as JSON: %w", err)
	}
	return string(b), nil
}

// RenderMarkdown formats the minutes as a markdown document with the
// action items as a pipe table.
func RenderMarkdown(mom *entities.MinutesOfMeeting) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", mom.Title)
	if mom.Date != "" {
		fmt.Fprintf(&b, "**Date:** %s\n\n", mom.Date)
	}
	if len(mom.Participants) > 0 {
		fmt.Fprintf(&b, "**Participants:** %s\n\n", strings.Join(mom.Participants, ", "))
	}

	if len(mom.Summary) > 0 {
		b.WriteString("## Summary\n\n")
		for _, point := range mom.Summary {
			fmt.Fprintf(&b, "- %s\n", point)
		}
		b.WriteString("\n")
	}

	if len(mom.Decisions) > 0 {
		b.WriteString("## Decisions Made\n\n")
		for _, decision := range mom.Decisions {
			fmt.Fprintf(&b, "- %s\n", decision)
		}
		b.WriteString("\n")
	}

	if len(mom.ActionItems) > 0 {
		b.WriteString("## Action Items\n\n")
		b.WriteString("| Task | Owner | Deadline | Priority |\n")
		b.WriteString("|------|-------|----------|----------|\n")
		for _, item := range mom.ActionItems {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				item.Task, item.Owner, displayDeadline(item), displayPriority(item))
		}
		b.WriteString("\n")
	}

	if len(mom.NextSteps) > 0 {
		b.WriteString("## Next Steps / Follow-ups\n\n")
		for _, step := range mom.NextSteps {
			fmt.Fprintf(&b, "- %s\n", step)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderText formats the minutes as plain text for terminal output, with
// the action items drawn as a table.
func RenderText(mom *entities.MinutesOfMeeting) string {
	rule := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n%s\n\n", rule, mom.Title, rule)

	if mom.Date != "" {
		fmt.Fprintf(&b, "Date: %s\n\n", mom.Date)
	}
	if len(mom.Participants) > 0 {
		fmt.Fprintf(&b, "Participants: %s\n\n", strings.Join(mom.Participants, ", "))
	}

	writeSection := func(heading string, lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintf(&b, "%s:\n%s\n", heading, thin)
		for _, line := range lines {
			fmt.Fprintf(&b, "  • %s\n", line)
		}
		b.WriteString("\n")
	}

	writeSection("SUMMARY", mom.Summary)
	writeSection("DECISIONS MADE", mom.Decisions)

	if len(mom.ActionItems) > 0 {
		fmt.Fprintf(&b, "ACTION ITEMS:\n%s\n", thin)
		b.WriteString(renderActionTable(mom.ActionItems))
		b.WriteString("\n\n")
	}

	writeSection("NEXT STEPS / FOLLOW-UPS", mom.NextSteps)

	return b.String()
}

func renderActionTable(items []entities.ActionItem) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Task", "Owner", "Deadline", "Priority"})

	for _, item := range items {
		tw.AppendRow(table.Row{item.Task, item.Owner, displayDeadline(item), displayPriority(item)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, WidthMax: 60},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft},
	})

	return tw.Render()
}

func displayDeadline(item entities.ActionItem) string {
	if !item.HasDeadline() {
		return displayDeadlineTBD
	}
	return item.DeadlineText()
}

func displayPriority(item entities.ActionItem) string {
	if p := item.PriorityText(); p != "" {
		return p
	}
	return displayPriorityDefault
}
