package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/minutes-agent/internal/usecase/pipeline"
	pkgvalidator "github.com/johnquangdev/minutes-agent/pkg/validator"
)

func newTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = pkgvalidator.New()

	req := httptest.NewRequest(http.MethodPost, "/v1/minutes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/minutes")

	return c, rec
}

func newHandler() *MinutesHandler {
	return NewMinutesHandler(pipeline.New(nil, nil), nil)
}

func TestGenerate_Success(t *testing.T) {
	body := `{"transcript":"John: We should finalize the budget by Friday.","with_reminders":true}`
	c, rec := newTestContext(t, body)

	if err := newHandler().Generate(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if envelope.Code != 200 || envelope.Message != "success" {
		t.Errorf("unexpected envelope code=%d message=%q", envelope.Code, envelope.Message)
	}

	var data struct {
		RunID     string          `json:"run_id"`
		Minutes   json.RawMessage `json:"minutes"`
		Reminders []string        `json:"reminders"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if data.RunID == "" {
		t.Error("expected a run id")
	}
	if len(data.Minutes) == 0 {
		t.Error("expected minutes in response")
	}
	if len(data.Reminders) == 0 {
		t.Error("expected reminders when with_reminders is set")
	}
}

func TestGenerate_RemindersOmittedByDefault(t *testing.T) {
	body := `{"transcript":"John: We should finalize the budget by Friday."}`
	c, rec := newTestContext(t, body)

	if err := newHandler().Generate(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if strings.Contains(rec.Body.String(), `"reminders"`) {
		t.Fatalf("expected reminders omitted: %s", rec.Body.String())
	}
}

func TestGenerate_EmptyTranscript(t *testing.T) {
	c, rec := newTestContext(t, `{"transcript":"   "}`)

	if err := newHandler().Generate(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if envelope.Code != 2001 {
		t.Errorf("expected empty-transcript code 2001 got %d", envelope.Code)
	}
}

func TestGenerate_InvalidFormatHint(t *testing.T) {
	body := `{"transcript":"John: We should finalize the budget.","format":"xml"}`
	c, rec := newTestContext(t, body)

	if err := newHandler().Generate(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGenerate_MalformedBody(t *testing.T) {
	c, rec := newTestContext(t, `{not json`)

	if err := newHandler().Generate(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestRender_Markdown(t *testing.T) {
	e := echo.New()
	e.Validator = pkgvalidator.New()

	body := `{"transcript":"John: We should finalize the budget by Friday.","title":"Budget Sync"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/minutes/render?format=markdown", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/minutes/render")

	if err := newHandler().Render(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !strings.HasPrefix(rec.Body.String(), "# Budget Sync") {
		t.Fatalf("expected markdown output, got: %s", rec.Body.String())
	}
}

func TestRender_DefaultsToText(t *testing.T) {
	e := echo.New()
	e.Validator = pkgvalidator.New()

	body := `{"transcript":"John: We should finalize the budget by Friday.","title":"Budget Sync"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/minutes/render", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/minutes/render")

	if err := newHandler().Render(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Budget Sync") || strings.Contains(rec.Body.String(), "# Budget Sync") {
		t.Fatalf("expected plain text output, got: %s", rec.Body.String())
	}
}
