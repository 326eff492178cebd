package entities

// Transcript format hints accepted by the segmenter.
const (
	FormatAuto  = "auto"
	FormatAMI   = "ami"
	FormatEnron = "enron"
)

// SpeakerUnknown labels text that appears before any speaker marker.
const SpeakerUnknown = "Unknown"

// Turn represents a single speaker segment/turn in a conversation
type Turn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// SegmentedTranscript is the normalized form of a raw transcript.
// FullText is the space-joined concatenation of all turn texts in order;
// Participants is sorted and unique.
type SegmentedTranscript struct {
	FullText     string   `json:"full_text"`
	Turns        []Turn   `json:"turns"`
	Participants []string `json:"participants"`
	Subject      string   `json:"subject,omitempty"`
	InferredDate string   `json:"inferred_date,omitempty"`
}

// NumTurns returns the number of speaker turns
func (s *SegmentedTranscript) NumTurns() int {
	return len(s.Turns)
}
