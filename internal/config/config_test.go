package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "ENV", "LOG_LEVEL", "DATABASE_DSN", "API_TOKEN_SECRET", "API_TOKEN_EXPIRY",
		"GENERATOR_SEED", "GENERATOR_MIN_LENGTH", "GENERATOR_MAX_LENGTH", "GENERATOR_DEFAULT_LENGTH",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
	if cfg.GeneratorSeed != nil {
		t.Errorf("GeneratorSeed = %v, want nil", *cfg.GeneratorSeed)
	}
	if cfg.GeneratorMinLength != 8 || cfg.GeneratorMaxLength != 32 || cfg.GeneratorDefaultLength != 16 {
		t.Errorf("generator lengths = %d/%d/%d, want 8/32/16",
			cfg.GeneratorMinLength, cfg.GeneratorMaxLength, cfg.GeneratorDefaultLength)
	}
	if cfg.APITokenExpiry != 24*time.Hour {
		t.Errorf("APITokenExpiry = %v, want 24h", cfg.APITokenExpiry)
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true for development")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "Production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GENERATOR_SEED", "42")
	t.Setenv("GENERATOR_MIN_LENGTH", "4")
	t.Setenv("GENERATOR_MAX_LENGTH", "64")
	t.Setenv("GENERATOR_DEFAULT_LENGTH", "20")
	t.Setenv("API_TOKEN_EXPIRY", "90m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
	if cfg.GeneratorSeed == nil || *cfg.GeneratorSeed != 42 {
		t.Errorf("GeneratorSeed = %v, want 42", cfg.GeneratorSeed)
	}
	if cfg.GeneratorMaxLength != 64 || cfg.GeneratorDefaultLength != 20 {
		t.Errorf("generator lengths = %d/%d, want 64/20", cfg.GeneratorMaxLength, cfg.GeneratorDefaultLength)
	}
	if cfg.APITokenExpiry != 90*time.Minute {
		t.Errorf("APITokenExpiry = %v, want 90m", cfg.APITokenExpiry)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad seed", key: "GENERATOR_SEED", val: "-1"},
		{name: "bad min length", key: "GENERATOR_MIN_LENGTH", val: "zero"},
		{name: "min above max", key: "GENERATOR_MIN_LENGTH", val: "40"},
		{name: "bad log level", key: "LOG_LEVEL", val: "loud"},
		{name: "bad expiry", key: "API_TOKEN_EXPIRY", val: "tomorrow"},
		{name: "zero rps", key: "RATE_LIMIT_RPS", val: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q expected error", tt.key, tt.val)
			}
		})
	}
}
