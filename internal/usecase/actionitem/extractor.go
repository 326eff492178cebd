package actionitem

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/johnquangdev/minutes-agent/internal/domain/entities"
)

// deadlineKind tells the extractor how to resolve a deadline capture.
type deadlineKind int

const (
	deadlineRaw      deadlineKind = iota // keep the matched phrase as-is
	deadlineAbsolute                     // already a calendar date
	deadlineWeekday                      // weekday name, roll to next occurrence
	deadlineRelative                     // "in N days" offset from now
)

// deadlineMatcher pairs a pattern with its resolution handler kind.
// The table is evaluated in order; first match wins.
type deadlineMatcher struct {
	re   *regexp.Regexp
	kind deadlineKind
}

var weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// priorityTiers is checked high first; the first tier with a hit wins.
var priorityTiers = []struct {
	level    string
	keywords []string
}{
	{entities.PriorityHigh, []string{"urgent", "critical", "immediate", "asap", "priority"}},
	{entities.PriorityMedium, []string{"important", "soon"}},
	{entities.PriorityLow, []string{"eventually", "later", "when possible"}},
}

// Extractor finds action items in transcript text: the task, its owner,
// an optional deadline and an optional priority, all via ordered
// first-match-wins pattern tables.
type Extractor struct {
	actionRes    []*regexp.Regexp
	imperativeRe *regexp.Regexp
	ownerRes     []*regexp.Regexp
	deadlines    []deadlineMatcher
	sentenceRe   *regexp.Regexp
	spaceRe      *regexp.Regexp
	leadTrimRe   *regexp.Regexp
}

// NewExtractor compiles the extraction pattern tables.
func NewExtractor() *Extractor {
	actionPhrases := []string{
		`need\s+to\s+`,
		`(?:will|'ll)\s+`, // "'ll" so contracted futures ("I'll send it") still trigger
		`should\s+`,
		`must\s+`,
		`action\s+item`,
		`task\s+is\s+to`,
		`assigned\s+to`,
		`responsible\s+for`,
		`follow\s+up`,
		`next\s+steps?\s+are`,
	}

	ownerPatterns := []string{
		`(\w+)\s+will\s+`,
		`assigned\s+to\s+(\w+)`,
		`(\w+)\s+is\s+responsible`,
		`(\w+)\s+should\s+`,
		`(\w+)\s+needs?\s+to\s+`,
	}

	e := &Extractor{
		imperativeRe: regexp.MustCompile(`(?i)^(?:please\s+)?(?:let'?s\s+)?(?:we\s+)?(?:should|must|need|will)\s+`),
		sentenceRe:   regexp.MustCompile(`[.!?]+`),
		spaceRe:      regexp.MustCompile(`\s+`),
		leadTrimRe:   regexp.MustCompile(`^[,\s]+`),
		deadlines: []deadlineMatcher{
			{regexp.MustCompile(`(?i)by\s+(\w+\s+\d{1,2}(?:st|nd|rd|th)?)`), deadlineRaw},
			{regexp.MustCompile(`(?i)by\s+(\w+day)`), deadlineWeekday},
			{regexp.MustCompile(`(?i)deadline\s+is\s+(\w+\s+\d{1,2})`), deadlineRaw},
			{regexp.MustCompile(`(?i)due\s+(\w+\s+\d{1,2})`), deadlineRaw},
			{regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`), deadlineAbsolute},
			{regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`), deadlineAbsolute},
			{regexp.MustCompile(`(?i)in\s+(\d+)\s+days?`), deadlineRelative},
			{regexp.MustCompile(`(?i)next\s+(\w+day)`), deadlineWeekday},
			{regexp.MustCompile(`(?i)this\s+(\w+day)`), deadlineWeekday},
		},
	}

	for _, p := range actionPhrases {
		e.actionRes = append(e.actionRes, regexp.MustCompile(`(?i)`+p))
	}
	for _, p := range ownerPatterns {
		e.ownerRes = append(e.ownerRes, regexp.MustCompile(`(?i)`+p))
	}

	return e
}

// Extract returns the deduplicated action items found in the transcript.
// turns, when supplied, give precise speaker context for owner defaults;
// participants anchor owner-name validation. now is the reference time for
// resolving relative deadlines. Running Extract twice on identical input
// yields identical output.
func (e *Extractor) Extract(text string, turns []entities.Turn, participants []string, now time.Time) []entities.ActionItem {
	var items []entities.ActionItem

	if len(turns) > 0 {
		for _, turn := range turns {
			for _, sentence := range e.sentenceRe.Split(turn.Text, -1) {
				sentence = strings.TrimSpace(sentence)
				if !e.IsActionSentence(sentence) {
					continue
				}
				items = append(items, e.buildItem(sentence, turn.Speaker, participants, now))
			}
		}
	} else {
		for _, sentence := range e.sentenceRe.Split(text, -1) {
			sentence = strings.TrimSpace(sentence)
			if len(sentence) <= 10 || !e.IsActionSentence(sentence) {
				continue
			}
			items = append(items, e.buildItem(sentence, "", participants, now))
		}
	}

	return dedupe(items)
}

// IsActionSentence is the sentence-level gate: an action-trigger phrase
// anywhere, or an imperative lead, qualifies the sentence.
func (e *Extractor) IsActionSentence(sentence string) bool {
	if sentence == "" {
		return false
	}
	for _, re := range e.actionRes {
		if re.MatchString(sentence) {
			return true
		}
	}
	return e.imperativeRe.MatchString(sentence)
}

func (e *Extractor) buildItem(sentence, speaker string, participants []string, now time.Time) entities.ActionItem {
	item := entities.ActionItem{
		Task:  e.extractTask(sentence),
		Owner: e.extractOwner(sentence, speaker, participants),
	}
	if deadline := e.ExtractDeadline(sentence, now); deadline != "" {
		item.Deadline = &deadline
	}
	if priority := e.extractPriority(sentence); priority != "" {
		item.Priority = &priority
	}
	return item
}

// ExtractDeadline walks the deadline matcher table and resolves the first
// match according to its kind. Relative phrases become absolute ISO dates
// against now; weekday names roll to the next future occurrence, never
// today; anything unresolvable comes back as the raw matched phrase.
func (e *Extractor) ExtractDeadline(sentence string, now time.Time) string {
	for _, dm := range e.deadlines {
		m := dm.re.FindStringSubmatch(sentence)
		if m == nil {
			continue
		}
		captured := m[1]

		switch dm.kind {
		case deadlineAbsolute:
			return captured
		case deadlineRelative:
			var days int
			fmt.Sscanf(captured, "%d", &days)
			return now.AddDate(0, 0, days).Format("2006-01-02")
		case deadlineWeekday:
			if resolved, ok := NextWeekday(now, captured); ok {
				return resolved.Format("2006-01-02")
			}
			return captured
		default:
			return captured
		}
	}
	return ""
}

// NextWeekday resolves a weekday name to its next future occurrence after
// now. When now already falls on that weekday the result is a week out:
// a deadline "by Friday" spoken on a Friday never means today.
func NextWeekday(now time.Time, name string) (time.Time, bool) {
	idx := -1
	lower := strings.ToLower(name)
	for i, day := range weekdays {
		if day == lower {
			idx = i
			break
		}
	}
	if idx < 0 {
		return time.Time{}, false
	}

	// weekdays is Monday-first; convert Go's Sunday-first numbering.
	current := (int(now.Weekday()) + 6) % 7
	ahead := (idx - current + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return now.AddDate(0, 0, ahead), true
}

// extractOwner tries the ordered owner-capture patterns, validating the
// captured name against the participant list (substring match, either
// direction, canonical spelling preferred). Fallback order: current
// speaker, first participant, Unassigned.
func (e *Extractor) extractOwner(sentence, speaker string, participants []string) string {
	for _, re := range e.ownerRes {
		m := re.FindStringSubmatch(sentence)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		lower := strings.ToLower(candidate)

		for _, p := range participants {
			pl := strings.ToLower(p)
			if strings.Contains(pl, lower) || strings.Contains(lower, pl) {
				return p
			}
		}
		return capitalize(candidate)
	}

	if speaker != "" && speaker != entities.SpeakerUnknown {
		return speaker
	}
	if len(participants) > 0 {
		return participants[0]
	}
	return entities.OwnerUnassigned
}

// extractPriority scans the keyword tiers, high first.
func (e *Extractor) extractPriority(sentence string) string {
	lower := strings.ToLower(sentence)
	for _, tier := range priorityTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(lower, kw) {
				return tier.level
			}
		}
	}
	return ""
}

// extractTask strips owner matches, deadline matches and the first
// action-trigger occurrence out of the sentence, leaving the task text.
func (e *Extractor) extractTask(sentence string) string {
	task := sentence
	for _, re := range e.ownerRes {
		task = re.ReplaceAllString(task, "")
	}
	for _, dm := range e.deadlines {
		task = dm.re.ReplaceAllString(task, "")
	}
	for _, re := range e.actionRes {
		task = replaceFirst(re, task)
	}

	task = e.spaceRe.ReplaceAllString(task, " ")
	task = e.leadTrimRe.ReplaceAllString(task, "")
	task = strings.TrimSpace(task)

	if task == "" {
		return entities.TaskNotFound
	}
	return capitalize(task)
}

// dedupe keeps the first occurrence of each task (case-insensitive) and
// drops trivially short descriptions.
func dedupe(items []entities.ActionItem) []entities.ActionItem {
	unique := []entities.ActionItem{}
	seen := make(map[string]struct{})

	for _, item := range items {
		key := strings.ToLower(item.Task)
		if _, dup := seen[key]; dup || len(item.Task) <= 10 {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, item)
	}

	return unique
}

func replaceFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	// splice with a space so removing mid-word triggers ("'ll") cannot
	// glue the surrounding words together; the caller collapses runs.
	return s[:loc[0]] + " " + s[loc[1]:]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
