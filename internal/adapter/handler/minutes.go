package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/minutes-agent/errors"
	dto "github.com/johnquangdev/minutes-agent/internal/adapter/dto/minutes"
	"github.com/johnquangdev/minutes-agent/internal/adapter/presenter"
	"github.com/johnquangdev/minutes-agent/internal/usecase/pipeline"
)

// MinutesHandler exposes the transcript-to-minutes pipeline over HTTP
type MinutesHandler struct {
	pipe   *pipeline.Pipeline
	logger *zap.Logger
}

// NewMinutesHandler creates a new minutes handler
func NewMinutesHandler(pipe *pipeline.Pipeline, logger *zap.Logger) *MinutesHandler {
	return &MinutesHandler{pipe: pipe, logger: logger}
}

// Generate runs the extraction pipeline on a raw transcript
// @Summary      Generate Minutes of Meeting
// @Description  Converts a raw meeting transcript into structured minutes with action items, deadline categories and optional reminder notifications
// @Tags         Minutes
// @Accept       json
// @Produce      json
// @Param        request  body      minutes.GenerateRequest  true  "Raw transcript and options"
// @Success      200      {object}  map[string]interface{}   "Generated minutes"
// @Failure      400      {object}  map[string]interface{}   "Missing or invalid transcript"
// @Router       /minutes [post]
func (h *MinutesHandler) Generate(c echo.Context) error {
	var req dto.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if strings.TrimSpace(req.Transcript) == "" {
		return HandleError(h.logger, c, errors.ErrEmptyTranscript())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result := h.pipe.RunWithReminders(c.Request().Context(), req.Transcript, pipeline.Options{
		Title:       req.Title,
		FormatHint:  req.Format,
		BulletCount: req.BulletCount,
		Channel:     req.Channel,
	})

	resp := dto.GenerateResponse{
		RunID:   result.RunID.String(),
		Minutes: result.Minutes,
		Categories: dto.CategoryCounts{
			Overdue:    len(result.Categories.Overdue),
			Upcoming:   len(result.Categories.Upcoming),
			OnTrack:    len(result.Categories.OnTrack),
			NoDeadline: len(result.Categories.NoDeadline),
		},
	}
	if req.WithReminders {
		resp.Reminders = result.Reminders
	}

	return HandleSuccess(h.logger, c, resp)
}

// Render returns the minutes for a transcript in a textual format
// @Summary      Render Minutes of Meeting
// @Description  Runs the pipeline and returns the minutes rendered as markdown or plain text
// @Tags         Minutes
// @Accept       json
// @Produce      plain
// @Param        format   query     string                   false  "Render format: markdown or text"
// @Param        request  body      minutes.GenerateRequest  true   "Raw transcript and options"
// @Success      200      {string}  string                   "Rendered minutes"
// @Failure      400      {object}  map[string]interface{}   "Missing or invalid transcript"
// @Router       /minutes/render [post]
func (h *MinutesHandler) Render(c echo.Context) error {
	var req dto.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if strings.TrimSpace(req.Transcript) == "" {
		return HandleError(h.logger, c, errors.ErrEmptyTranscript())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	mom := h.pipe.Run(c.Request().Context(), req.Transcript, pipeline.Options{
		Title:       req.Title,
		FormatHint:  req.Format,
		BulletCount: req.BulletCount,
	})

	switch c.QueryParam("format") {
	case "markdown":
		return c.String(200, presenter.RenderMarkdown(mom))
	default:
		return c.String(200, presenter.RenderText(mom))
	}
}
