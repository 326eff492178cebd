package segment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/johnquangdev/minutes-agent/internal/domain/entities"
)

// Segmenter normalizes raw meeting transcripts into speaker turns.
//
// It handles labeled-turn transcripts (AMI meeting corpus style), email
// threads (Enron corpus style) and falls back to a generic best-effort
// segmentation. Segmentation never fails: missing structure degrades to
// empty collections, not errors.
type Segmenter struct {
	speakerRes   []*regexp.Regexp
	timestampRes []*regexp.Regexp
	bracketRe    *regexp.Regexp
	parenRe      *regexp.Regexp
	hspaceRe     *regexp.Regexp
	blankRe      *regexp.Regexp
	nameLineRe   *regexp.Regexp
	dateRes      []*regexp.Regexp

	amiHintRe     *regexp.Regexp
	emailHintRe   *regexp.Regexp
	fromRe        *regexp.Regexp
	subjectRe     *regexp.Regexp
	separatorRe   *regexp.Regexp
	multiSpeakers []*regexp.Regexp
}

// NewSegmenter creates a Segmenter with all pattern tables compiled.
// Pattern order inside each table is a priority list: first match wins.
func NewSegmenter() *Segmenter {
	speakerPatterns := []string{
		`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*):\s*`, // "John Smith: "
		`^Speaker\s+(\d+):\s*`,                  // "Speaker 1: "
		`^\[([A-Z]+)\]:\s*`,                     // "[JOHN]: "
		`^<([^>]+)>\s*`,                         // "<John> "
	}

	s := &Segmenter{
		timestampRes: []*regexp.Regexp{
			regexp.MustCompile(`\[\d{2}:\d{2}:\d{2}\]`), // [00:15:30]
			regexp.MustCompile(`\d{2}:\d{2}:\d{2}`),     // 00:15:30
			regexp.MustCompile(`\(\d{2}:\d{2}\)`),       // (00:15)
		},
		bracketRe:  regexp.MustCompile(`\[[^\]\n]*\]`),
		parenRe:    regexp.MustCompile(`\([^)\n]*\)`),
		hspaceRe:   regexp.MustCompile(`[ \t]+`),
		blankRe:    regexp.MustCompile(`\n\s*\n`),
		nameLineRe: regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
		dateRes: []*regexp.Regexp{
			regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),        // 2024-01-15
			regexp.MustCompile(`\d{2}/\d{2}/\d{4}`),        // 01/15/2024
			regexp.MustCompile(`\w+\s+\d{1,2},?\s+\d{4}`),  // January 15, 2024
		},
		amiHintRe:   regexp.MustCompile(`(?m)^(?:[A-Z]:\s|Speaker\s+\d+:)`),
		emailHintRe: regexp.MustCompile(`(?i)From:\s|Subject:`),
		fromRe:      regexp.MustCompile(`(?i)From:[ \t]*([^\n]+)`),
		subjectRe:   regexp.MustCompile(`(?i)Subject:[ \t]*([^\n]+)`),
		separatorRe: regexp.MustCompile(`-----`),
	}

	for _, p := range speakerPatterns {
		s.speakerRes = append(s.speakerRes, regexp.MustCompile(p))
		s.multiSpeakers = append(s.multiSpeakers, regexp.MustCompile("(?m)"+p))
	}

	return s
}

// Segment normalizes a raw transcript. formatHint is one of the
// entities.Format* constants; anything else behaves like FormatAuto.
func (s *Segmenter) Segment(raw string, formatHint string) *entities.SegmentedTranscript {
	var seg *entities.SegmentedTranscript

	switch formatHint {
	case entities.FormatAMI:
		seg = s.segmentLabeled(raw)
	case entities.FormatEnron:
		seg = s.segmentEmailThread(raw)
	default:
		seg = s.segmentAuto(raw)
	}

	seg.InferredDate = s.ExtractDate(raw)
	return seg
}

// segmentAuto detects the transcript format and dispatches. The check
// order is a fixed priority: labeled-turn markers beat email markers.
func (s *Segmenter) segmentAuto(raw string) *entities.SegmentedTranscript {
	if s.amiHintRe.MatchString(raw) {
		return s.segmentLabeled(raw)
	}
	if s.emailHintRe.MatchString(raw) {
		return s.segmentEmailThread(raw)
	}
	return s.segmentLabeled(raw)
}

// segmentLabeled handles labeled-turn transcripts and serves as the
// generic fallback: text before the first speaker marker accumulates
// under the Unknown speaker.
func (s *Segmenter) segmentLabeled(raw string) *entities.SegmentedTranscript {
	cleaned := s.CleanText(raw)
	turns := s.segmentTurns(cleaned)

	fullText := joinTurns(turns)
	if len(turns) == 0 {
		fullText = cleaned
	}

	return &entities.SegmentedTranscript{
		FullText:     fullText,
		Turns:        turns,
		Participants: s.extractSpeakers(cleaned),
	}
}

// CleanText strips timestamps and bracketed/parenthetical annotations
// (non-verbal cues), collapses horizontal whitespace runs and squeezes
// blank-line runs down to a single blank line. Lossy and irreversible:
// annotations are discarded, not preserved.
func (s *Segmenter) CleanText(text string) string {
	for _, re := range s.timestampRes {
		text = re.ReplaceAllString(text, "")
	}

	text = s.bracketRe.ReplaceAllString(text, "")
	text = s.parenRe.ReplaceAllString(text, "")
	text = s.hspaceRe.ReplaceAllString(text, " ")

	// Two passes: the first normalizes "\n \n \n" shapes, the second
	// squeezes what is left into exactly one blank line.
	text = s.blankRe.ReplaceAllString(text, "\n\n")
	text = s.blankRe.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// segmentTurns scans lines, opening a new turn whenever a line prefix
// matches one of the speaker patterns and treating everything else as a
// continuation of the current turn.
func (s *Segmenter) segmentTurns(cleaned string) []entities.Turn {
	var (
		turns       []entities.Turn
		currentText []string
	)
	currentSpeaker := entities.SpeakerUnknown

	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		matched := false
		for _, re := range s.speakerRes {
			loc := re.FindStringSubmatchIndex(line)
			if loc == nil {
				continue
			}

			if len(currentText) > 0 {
				turns = append(turns, entities.Turn{
					Speaker: currentSpeaker,
					Text:    strings.Join(currentText, " "),
				})
			}

			currentSpeaker = line[loc[2]:loc[3]]
			remaining := strings.TrimSpace(line[loc[1]:])
			if remaining != "" {
				currentText = []string{remaining}
			} else {
				currentText = nil
			}

			matched = true
			break
		}

		if !matched {
			currentText = append(currentText, line)
		}
	}

	if len(currentText) > 0 {
		turns = append(turns, entities.Turn{
			Speaker: currentSpeaker,
			Text:    strings.Join(currentText, " "),
		})
	}

	return turns
}

// extractSpeakers collects unique speaker names: every speaker-pattern
// match across the text, plus a heuristic scan of the first 50 lines for
// capitalized names at line start (untagged transcripts).
func (s *Segmenter) extractSpeakers(cleaned string) []string {
	seen := make(map[string]struct{})

	for _, re := range s.multiSpeakers {
		for _, m := range re.FindAllStringSubmatch(cleaned, -1) {
			seen[m[1]] = struct{}{}
		}
	}

	lines := strings.Split(cleaned, "\n")
	if len(lines) > 50 {
		lines = lines[:50]
	}
	for _, line := range lines {
		if m := s.nameLineRe.FindStringSubmatch(line); m != nil {
			seen[m[1]] = struct{}{}
		}
	}

	speakers := make([]string, 0, len(seen))
	for name := range seen {
		speakers = append(speakers, name)
	}
	sort.Strings(speakers)

	return speakers
}

// segmentEmailThread treats an email thread as a meeting: each message is
// one turn, the sender is the speaker and the subject line becomes the
// meeting topic.
func (s *Segmenter) segmentEmailThread(raw string) *entities.SegmentedTranscript {
	subject := "Email Discussion"
	if m := s.subjectRe.FindStringSubmatch(raw); m != nil {
		subject = strings.TrimSpace(m[1])
	}

	var turns []entities.Turn
	seen := make(map[string]struct{})

	locs := s.fromRe.FindAllStringIndex(raw, -1)
	for i, loc := range locs {
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		block := raw[loc[0]:end]

		sender := ""
		if m := s.fromRe.FindStringSubmatch(block); m != nil {
			sender = strings.TrimSpace(m[1])
		}
		if sender == "" {
			continue
		}

		// A message needs a Subject header followed by a blank line;
		// blocks without one are treated as quoted noise and skipped.
		subjLoc := s.subjectRe.FindStringIndex(block)
		if subjLoc == nil {
			continue
		}
		bodyStart := strings.Index(block[subjLoc[1]:], "\n\n")
		if bodyStart < 0 {
			continue
		}
		body := block[subjLoc[1]+bodyStart+2:]
		if sep := s.separatorRe.FindStringIndex(body); sep != nil {
			body = body[:sep[0]]
		}

		seen[sender] = struct{}{}
		turns = append(turns, entities.Turn{
			Speaker: sender,
			Text:    s.CleanText(body),
		})
	}

	participants := make([]string, 0, len(seen))
	for sender := range seen {
		participants = append(participants, sender)
	}
	sort.Strings(participants)

	return &entities.SegmentedTranscript{
		FullText:     joinTurns(turns),
		Turns:        turns,
		Participants: participants,
		Subject:      subject,
	}
}

// ExtractDate returns the first date-looking substring found in the text,
// unnormalized, or "" when none is present. Pattern order: ISO, then
// MM/DD/YYYY, then "Month D, YYYY".
func (s *Segmenter) ExtractDate(text string) string {
	for _, re := range s.dateRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func joinTurns(turns []entities.Turn) string {
	parts := make([]string, 0, len(turns))
	for _, t := range turns {
		parts = append(parts, t.Text)
	}
	return strings.Join(parts, " ")
}
