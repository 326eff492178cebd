package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/minutes-agent/internal/domain/entities"
	"github.com/johnquangdev/minutes-agent/internal/usecase/actionitem"
	"github.com/johnquangdev/minutes-agent/internal/usecase/followup"
	"github.com/johnquangdev/minutes-agent/internal/usecase/segment"
	"github.com/johnquangdev/minutes-agent/internal/usecase/summarize"
)

const (
	defaultBulletCount = 6
	titleMaxLen        = 50
)

// Options tunes a single pipeline run. The zero value is usable: auto
// format detection, default bullet count, slack reminders, current time.
type Options struct {
	Title       string
	FormatHint  string
	BulletCount int
	Channel     string
	// Now is the reference time for deadline resolution and
	// categorization. It is sampled once per run and threaded through
	// every stage so results are deterministic within one invocation.
	Now time.Time
}

// Result bundles everything one run produced.
type Result struct {
	RunID      uuid.UUID                  `json:"run_id"`
	Minutes    *entities.MinutesOfMeeting `json:"minutes"`
	Categories *entities.CategorizedItems `json:"categories"`
	Reminders  []string                   `json:"reminders"`
}

// Pipeline wires segmentation, summarization, action-item extraction and
// follow-up tracking into one transcript-to-minutes run. It holds no
// mutable state between runs and is safe to invoke concurrently across
// independent transcripts.
type Pipeline struct {
	segmenter  *segment.Segmenter
	summarizer *summarize.Summarizer
	extractor  *actionitem.Extractor
	tracker    *followup.Tracker
	logger     *zap.Logger
}

// New constructs a Pipeline. external may be nil to run fully rule-based;
// logger may be nil to run silently.
func New(external summarize.External, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		segmenter:  segment.NewSegmenter(),
		summarizer: summarize.NewSummarizer(external, logger),
		extractor:  actionitem.NewExtractor(),
		tracker:    followup.NewTracker(),
		logger:     logger,
	}
}

// Run processes a raw transcript into Minutes of Meeting. It is total:
// malformed or empty input degrades to empty collections, never an error.
func (p *Pipeline) Run(ctx context.Context, transcript string, opts Options) *entities.MinutesOfMeeting {
	mom, _ := p.run(ctx, transcript, opts)
	return mom
}

// RunWithReminders processes a transcript and additionally categorizes
// the action items and renders reminder notifications for the channel in
// opts.
func (p *Pipeline) RunWithReminders(ctx context.Context, transcript string, opts Options) *Result {
	opts = withDefaults(opts)

	mom, runID := p.run(ctx, transcript, opts)
	return &Result{
		RunID:      runID,
		Minutes:    mom,
		Categories: p.tracker.Categorize(mom.ActionItems, opts.Now),
		Reminders:  p.tracker.GenerateAllReminders(mom.ActionItems, opts.Channel, opts.Now),
	}
}

func (p *Pipeline) run(ctx context.Context, transcript string, opts Options) (*entities.MinutesOfMeeting, uuid.UUID) {
	opts = withDefaults(opts)
	runID := uuid.New()

	if p.logger != nil {
		p.logger.Info("pipeline.run.start",
			zap.String("run_id", runID.String()),
			zap.String("format_hint", opts.FormatHint),
			zap.Int("transcript_len", len(transcript)),
		)
	}

	seg := p.segmenter.Segment(transcript, opts.FormatHint)
	if p.logger != nil {
		p.logger.Info("pipeline.segmented",
			zap.String("run_id", runID.String()),
			zap.Int("turns", seg.NumTurns()),
			zap.Int("participants", len(seg.Participants)),
		)
	}

	summary := p.summarizer.SummarizeBullets(ctx, seg.FullText, opts.BulletCount)
	decisions := p.summarizer.ExtractDecisions(seg.FullText)

	items := p.extractor.Extract(seg.FullText, seg.Turns, seg.Participants, opts.Now)
	if p.logger != nil {
		p.logger.Info("pipeline.extracted",
			zap.String("run_id", runID.String()),
			zap.Int("summary_bullets", len(summary)),
			zap.Int("decisions", len(decisions)),
			zap.Int("action_items", len(items)),
		)
	}

	nextSteps := p.tracker.NextSteps(items, opts.Now)

	mom := entities.NewMinutesOfMeeting(p.inferTitle(opts.Title, seg))
	mom.Date = p.inferDate(seg, opts.Now)
	mom.Participants = seg.Participants
	mom.Summary = summary
	mom.Decisions = decisions
	mom.ActionItems = items
	mom.NextSteps = nextSteps

	if p.logger != nil {
		p.logger.Info("pipeline.run.done",
			zap.String("run_id", runID.String()),
			zap.String("title", mom.Title),
		)
	}

	return mom, runID
}

// inferTitle prefers an explicit title, then the email subject, then the
// opening sentence of the transcript clipped to 50 characters.
func (p *Pipeline) inferTitle(explicit string, seg *entities.SegmentedTranscript) string {
	if explicit != "" {
		return explicit
	}
	if seg.Subject != "" {
		return seg.Subject
	}

	first := seg.FullText
	if idx := strings.Index(first, "."); idx >= 0 {
		first = first[:idx]
	}
	if len(first) > titleMaxLen {
		return first[:titleMaxLen] + "..."
	}
	if first == "" {
		return "Meeting Discussion"
	}
	return first
}

// inferDate uses a date found in the transcript, else the reference day.
func (p *Pipeline) inferDate(seg *entities.SegmentedTranscript, now time.Time) string {
	if seg.InferredDate != "" {
		return seg.InferredDate
	}
	return now.Format("2006-01-02")
}

func withDefaults(opts Options) Options {
	if opts.FormatHint == "" {
		opts.FormatHint = entities.FormatAuto
	}
	if opts.BulletCount <= 0 {
		opts.BulletCount = defaultBulletCount
	}
	if opts.Channel == "" {
		opts.Channel = entities.ChannelSlack
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	return opts
}
