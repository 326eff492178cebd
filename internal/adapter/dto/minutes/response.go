package minutes

import (
	"github.com/johnquangdev/minutes-agent/internal/domain/entities"
)

// CategoryCounts summarizes the deadline-urgency partition.
type CategoryCounts struct {
	Overdue    int `json:"overdue"`
	Upcoming   int `json:"upcoming"`
	OnTrack    int `json:"on_track"`
	NoDeadline int `json:"no_deadline"`
}

// GenerateResponse is returned for a successful pipeline run.
type GenerateResponse struct {
	RunID      string                     `json:"run_id"`
	Minutes    *entities.MinutesOfMeeting `json:"minutes"`
	Categories CategoryCounts             `json:"categories"`
	Reminders  []string                   `json:"reminders,omitempty"`
}
