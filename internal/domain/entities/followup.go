package entities

// DeadlineCategory classifies an action item relative to a reference time.
// It is derived on demand and never stored, since "now" moves.
type DeadlineCategory string

const (
	CategoryOverdue    DeadlineCategory = "overdue"
	CategoryUpcoming   DeadlineCategory = "upcoming"
	CategoryOnTrack    DeadlineCategory = "on_track"
	CategoryNoDeadline DeadlineCategory = "no_deadline"
)

// Reminder delivery channels. Rendering is simulated text output only.
const (
	ChannelSlack = "slack"
	ChannelEmail = "email"
	ChannelText  = "text"
)

// CategorizedItems partitions action items by deadline urgency. Every item
// appears in exactly one bucket.
type CategorizedItems struct {
	Overdue    []ActionItem `json:"overdue"`
	Upcoming   []ActionItem `json:"upcoming"`
	OnTrack    []ActionItem `json:"on_track"`
	NoDeadline []ActionItem `json:"no_deadline"`
}

// Total returns the number of items across all buckets.
func (c *CategorizedItems) Total() int {
	return len(c.Overdue) + len(c.Upcoming) + len(c.OnTrack) + len(c.NoDeadline)
}
