package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WorkDuration() != 25*time.Minute {
		t.Errorf("work duration = %v", cfg.WorkDuration())
	}
	if cfg.BreakDuration() != 5*time.Minute {
		t.Errorf("break duration = %v", cfg.BreakDuration())
	}
	if !cfg.Notifications {
		t.Error("notifications should default on")
	}
	if cfg.DataDir == "" {
		t.Error("data dir should never be empty")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("FOKUS_WORK_MINUTES", "50")
	t.Setenv("FOKUS_NOTIFICATIONS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WorkDuration() != 50*time.Minute {
		t.Errorf("work duration = %v", cfg.WorkDuration())
	}
	if cfg.Notifications {
		t.Error("notifications should be off")
	}
}

func TestRejectsNonPositiveDurations(t *testing.T) {
	t.Setenv("FOKUS_WORK_MINUTES", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero work_minutes")
	}
}
