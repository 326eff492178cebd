package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Pipeline.BulletCount != 6 {
		t.Errorf("expected default bullet count 6 got %d", cfg.Pipeline.BulletCount)
	}
	if cfg.Pipeline.ReminderChannel != "slack" {
		t.Errorf("expected default channel slack got %q", cfg.Pipeline.ReminderChannel)
	}
	if cfg.Groq.BaseURL != "https://api.groq.com" {
		t.Errorf("unexpected default groq url %q", cfg.Groq.BaseURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SUMMARY_BULLETS", "4")
	t.Setenv("REMINDER_CHANNEL", "email")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Pipeline.BulletCount != 4 {
		t.Errorf("expected bullet count 4 got %d", cfg.Pipeline.BulletCount)
	}
	if cfg.Pipeline.ReminderChannel != "email" {
		t.Errorf("expected channel email got %q", cfg.Pipeline.ReminderChannel)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090 got %q", cfg.Server.Port)
	}
}

func TestLoad_RejectsInvalidChannel(t *testing.T) {
	t.Setenv("REMINDER_CHANNEL", "pager")

	if _, err := Load(); err == nil {
		t.Fatal("expected invalid channel to fail validation")
	}
}

func TestLoad_RejectsOutOfRangeBulletCount(t *testing.T) {
	t.Setenv("SUMMARY_BULLETS", "50")

	if _, err := Load(); err == nil {
		t.Fatal("expected out-of-range bullet count to fail validation")
	}
}
