package summarize

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// External is the injectable summarization capability. Implementations may
// call out to an LLM provider; the summarizer treats any failure as
// absence and falls back to extractive scoring for the affected chunk.
type External interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// chunkSize is the window length for external summarization calls.
const chunkSize = 1024

const maxDecisions = 10

// maxChunkRetries bounds attempts against the external capability per
// chunk before falling back to extractive scoring for that chunk.
const maxChunkRetries = 2

// decisionVocabulary boosts sentences during extractive scoring.
var decisionVocabulary = []string{
	"decide", "decided", "decision", "agree", "agreed",
	"action", "task", "deadline", "will", "should", "must",
}

// decisionKeywords drives the keyword-sentence scan in ExtractDecisions.
var decisionKeywords = []string{
	"decided", "decision", "agree", "agreed", "consensus",
	"conclusion", "final", "approved", "approve",
}

// Summarizer produces summary bullets and decision statements from
// normalized transcript text. The extractive path is always available;
// an External capability, when supplied, condenses the text first.
type Summarizer struct {
	external    External
	logger      *zap.Logger
	sentenceRe  *regexp.Regexp
	wordRe      *regexp.Regexp
	decisionRes []*regexp.Regexp
}

// NewSummarizer creates a Summarizer. external may be nil, in which case
// only the rule-based extractive strategy is used.
func NewSummarizer(external External, logger *zap.Logger) *Summarizer {
	decisionPatterns := []string{
		`(?i)we\s+(?:have\s+)?decided\s+to\s+(.+?)(?:\.|$)`,
		`(?i)decision\s+is\s+to\s+(.+?)(?:\.|$)`,
		`(?i)we\s+agree\s+to\s+(.+?)(?:\.|$)`,
		`(?i)consensus\s+is\s+to\s+(.+?)(?:\.|$)`,
		`(?i)let'?s\s+(.+?)(?:\.|$)`,
	}

	s := &Summarizer{
		external:   external,
		logger:     logger,
		sentenceRe: regexp.MustCompile(`[.!?]+`),
		wordRe:     regexp.MustCompile(`\w+`),
	}
	for _, p := range decisionPatterns {
		s.decisionRes = append(s.decisionRes, regexp.MustCompile(p))
	}

	return s
}

// SummarizeBullets produces up to targetCount summary statements. When an
// external capability is wired in, the text is summarized in chunks and
// failed chunks individually fall back to extractive scoring; the whole
// call never fails.
func (s *Summarizer) SummarizeBullets(ctx context.Context, text string, targetCount int) []string {
	if targetCount <= 0 {
		return []string{}
	}

	if s.external == nil {
		return s.ExtractKeySentences(text, targetCount)
	}

	condensed := s.summarizeExternal(ctx, text)
	bullets := s.splitSentences(condensed)
	if len(bullets) > targetCount {
		bullets = bullets[:targetCount]
	}
	return bullets
}

// summarizeExternal summarizes the text chunk by chunk, concatenating the
// per-chunk results in order.
func (s *Summarizer) summarizeExternal(ctx context.Context, text string) string {
	var parts []string

	for start := 0; start < len(text); start += chunkSize {
		end := start + chunkSize
		if end > len(text) {
			end = len(text)
		}
		chunk := text[start:end]

		condensed, err := s.summarizeChunk(ctx, chunk)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("external summarizer failed, falling back to extractive",
					zap.Int("chunk_start", start),
					zap.Error(err),
				)
			}
			parts = append(parts, strings.Join(s.ExtractKeySentences(chunk, 2), ". "))
			continue
		}
		parts = append(parts, condensed)
	}

	return strings.Join(parts, " ")
}

// summarizeChunk calls the external capability with bounded retries.
func (s *Summarizer) summarizeChunk(ctx context.Context, chunk string) (string, error) {
	var condensed string

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 2 * time.Second
	bo.MaxElapsedTime = 10 * time.Second

	call := func() error {
		out, err := s.external.Summarize(ctx, chunk)
		if err != nil {
			return err
		}
		condensed = out
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.WithContext(bo, ctx), maxChunkRetries)
	if err := backoff.Retry(call, policy); err != nil {
		return "", err
	}
	return condensed, nil
}

// ExtractKeySentences is the rule-based extractive strategy: sentences are
// scored on position, length, corpus term frequency and decision
// vocabulary, and the top targetCount are re-emitted in original order.
// Short inputs pass through untouched.
func (s *Summarizer) ExtractKeySentences(text string, targetCount int) []string {
	sentences := s.splitSentences(text)
	if len(sentences) <= targetCount {
		return sentences
	}

	wordFreq := make(map[string]int)
	for _, word := range s.wordRe.FindAllString(strings.ToLower(text), -1) {
		if len(word) > 3 {
			wordFreq[word]++
		}
	}

	type scored struct {
		idx   int
		score float64
	}
	ranked := make([]scored, len(sentences))

	total := float64(len(sentences))
	for i, sentence := range sentences {
		var score float64

		// Openings and wrap-ups carry the most signal.
		if float64(i) < total*0.2 || float64(i) > total*0.8 {
			score += 2
		}

		words := len(strings.Fields(sentence))
		if words >= 10 && words <= 30 {
			score += 2
		}

		lower := strings.ToLower(sentence)
		for _, word := range s.wordRe.FindAllString(lower, -1) {
			if len(word) > 3 {
				score += float64(wordFreq[word]) * 0.1
			}
		}

		for _, kw := range decisionVocabulary {
			if strings.Contains(lower, kw) {
				score += 3
			}
		}

		ranked[i] = scored{idx: i, score: score}
	}

	// Stable sort keeps ties in original order.
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	selected := make([]int, 0, targetCount)
	for _, r := range ranked[:targetCount] {
		selected = append(selected, r.idx)
	}
	sort.Ints(selected)

	result := make([]string, 0, targetCount)
	for _, idx := range selected {
		result = append(result, sentences[idx])
	}
	return result
}

// ExtractDecisions mines decision statements: explicit decision-phrase
// matches first, then whole sentences containing a decision keyword,
// deduplicated and capped at 10 in discovery order.
func (s *Summarizer) ExtractDecisions(text string) []string {
	decisions := []string{}

	for _, re := range s.decisionRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			clause := strings.TrimSpace(m[1])
			if len(clause) > 10 && !containsDecision(decisions, clause) {
				decisions = append(decisions, capitalize(clause))
			}
		}
	}

	for _, sentence := range s.splitAll(text) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= 15 {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, kw := range decisionKeywords {
			if strings.Contains(lower, kw) {
				if !containsDecision(decisions, sentence) {
					decisions = append(decisions, capitalize(sentence))
				}
				break
			}
		}
	}

	if len(decisions) > maxDecisions {
		decisions = decisions[:maxDecisions]
	}
	return decisions
}

// splitSentences splits on sentence boundaries and discards fragments of
// 20 characters or fewer.
func (s *Summarizer) splitSentences(text string) []string {
	var out []string
	for _, part := range s.sentenceRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		if len(part) > 20 {
			out = append(out, part)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// splitAll splits on sentence boundaries without a length filter.
func (s *Summarizer) splitAll(text string) []string {
	return s.sentenceRe.Split(text, -1)
}

// containsDecision reports whether the candidate duplicates an already
// collected decision: exact case-insensitive matches, and sentences that
// merely restate a previously captured clause, both count as duplicates.
func containsDecision(decisions []string, candidate string) bool {
	lower := strings.ToLower(candidate)
	for _, d := range decisions {
		dl := strings.ToLower(d)
		if dl == lower || strings.Contains(lower, dl) || strings.Contains(dl, lower) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
