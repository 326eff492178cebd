package entities

// Action item priority levels
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// OwnerUnassigned is recorded when no owner can be inferred for a task.
const OwnerUnassigned = "Unassigned"

// TaskNotFound is recorded when stripping owner/deadline/trigger phrases
// leaves nothing usable as a task description.
const TaskNotFound = "Task description not found"

// ActionItem represents a single action item extracted from a meeting.
// Deadline is either an ISO date or the raw deadline phrase when it could
// not be resolved to a date; nil means no deadline was mentioned at all.
type ActionItem struct {
	Task     string  `json:"task"`
	Owner    string  `json:"owner"`
	Deadline *string `json:"deadline"`
	Priority *string `json:"priority"`
}

// HasDeadline reports whether any deadline text was captured for the item.
func (a ActionItem) HasDeadline() bool {
	return a.Deadline != nil && *a.Deadline != ""
}

// DeadlineText returns the stored deadline string, or "" when absent.
func (a ActionItem) DeadlineText() string {
	if a.Deadline == nil {
		return ""
	}
	return *a.Deadline
}

// PriorityText returns the stored priority, or "" when absent.
func (a ActionItem) PriorityText() string {
	if a.Priority == nil {
		return ""
	}
	return *a.Priority
}

// MinutesOfMeeting is the structured output record assembled once per
// pipeline run. It is a value object: nothing mutates it after assembly.
type MinutesOfMeeting struct {
	Title        string       `json:"title"`
	Date         string       `json:"date"`
	Participants []string     `json:"participants"`
	Summary      []string     `json:"summary"`
	Decisions    []string     `json:"decisions"`
	ActionItems  []ActionItem `json:"action_items"`
	NextSteps    []string     `json:"next_steps"`
}

// NewMinutesOfMeeting creates a minutes record with all collections
// initialized, so JSON output renders [] rather than null.
func NewMinutesOfMeeting(title string) *MinutesOfMeeting {
	return &MinutesOfMeeting{
		Title:        title,
		Participants: []string{},
		Summary:      []string{},
		Decisions:    []string{},
		ActionItems:  []ActionItem{},
		NextSteps:    []string{},
	}
}
