package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"SEARCH_DEPTH", "AI_DIFFICULTY", "THINKING_DELAY_MS", "SIM_GAMES_PER_MATCHUP",
		"SIM_MATCHUPS", "SIM_WORKERS", "SESSION_FINISHED_TTL_MINUTES", "SESSION_IDLE_TTL_MINUTES",
		"SESSION_CLEANUP_INTERVAL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.SearchDepth != 5 {
		t.Fatalf("expected default depth 5, got %d", cfg.SearchDepth)
	}
	if cfg.ThinkingDelay != 500*time.Millisecond {
		t.Fatalf("expected 500ms thinking delay, got %v", cfg.ThinkingDelay)
	}
	if cfg.SimGames != 30 || cfg.SimMatchups != "3v1,5v1,5v3" || cfg.SimWorkers != 1 {
		t.Fatalf("unexpected simulation defaults: %+v", cfg)
	}
	if cfg.SessionFinishedTTL != time.Hour || cfg.SessionIdleTTL != 24*time.Hour {
		t.Fatalf("unexpected session TTLs: %+v", cfg)
	}
	if AppConfig != cfg {
		t.Fatalf("AppConfig not updated")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SEARCH_DEPTH", "0")
	t.Setenv("AI_DIFFICULTY", "HARD")
	t.Setenv("THINKING_DELAY_MS", "0")
	t.Setenv("SIM_WORKERS", "-3")
	t.Setenv("SESSION_CLEANUP_INTERVAL", "90s")

	cfg := LoadConfig()
	if cfg.SearchDepth != 1 {
		t.Fatalf("expected depth clamped to 1, got %d", cfg.SearchDepth)
	}
	if cfg.Difficulty != "hard" {
		t.Fatalf("expected lowercased difficulty, got %q", cfg.Difficulty)
	}
	if cfg.ThinkingDelay != 0 {
		t.Fatalf("expected no delay, got %v", cfg.ThinkingDelay)
	}
	if cfg.SimWorkers != 1 {
		t.Fatalf("expected workers clamped to 1, got %d", cfg.SimWorkers)
	}
	if cfg.CleanupInterval != 90*time.Second {
		t.Fatalf("expected 90s cleanup interval, got %v", cfg.CleanupInterval)
	}
}

func TestGetEnvAsIntInvalid(t *testing.T) {
	t.Setenv("SOME_INT", "seven")
	if got := GetEnvAsInt("SOME_INT", 7); got != 7 {
		t.Fatalf("expected default for invalid value, got %d", got)
	}
	t.Setenv("SOME_DURATION", "soon")
	if got := GetEnvAsDuration("SOME_DURATION", time.Minute); got != time.Minute {
		t.Fatalf("expected default for invalid duration, got %v", got)
	}
}
