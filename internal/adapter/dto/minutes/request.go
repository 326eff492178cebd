package minutes

// GenerateRequest is the payload for generating Minutes of Meeting from a
// raw transcript.
type GenerateRequest struct {
	Transcript    string `json:"transcript" validate:"required"`
	Title         string `json:"title,omitempty"`
	Format        string `json:"format,omitempty" validate:"omitempty,oneof=ami enron auto"`
	Channel       string `json:"channel,omitempty" validate:"omitempty,oneof=slack email text"`
	BulletCount   int    `json:"bullet_count,omitempty" validate:"omitempty,min=1,max=20"`
	WithReminders bool   `json:"with_reminders,omitempty"`
}
