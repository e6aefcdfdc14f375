package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port     string
	Env      string
	LogLevel slog.Level

	// DatabaseDSN points at a MySQL database holding extra common passwords.
	// Empty disables the lookup.
	DatabaseDSN string

	// APITokenSecret enables bearer token auth on /api/v1 when set.
	APITokenSecret string
	APITokenExpiry time.Duration

	// GeneratorSeed makes generated passwords reproducible. Nil means unseeded.
	GeneratorSeed          *uint64
	GeneratorMinLength     int
	GeneratorMaxLength     int
	GeneratorDefaultLength int

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() (Config, error) {
	var errs []error

	cfg := Config{
		Port:                   getEnv("PORT", "8080"),
		Env:                    getEnv("ENV", "development"),
		DatabaseDSN:            os.Getenv("DATABASE_DSN"),
		APITokenSecret:         os.Getenv("API_TOKEN_SECRET"),
		APITokenExpiry:         getDuration("API_TOKEN_EXPIRY", 24*time.Hour, &errs),
		GeneratorMinLength:     getInt("GENERATOR_MIN_LENGTH", 8, &errs),
		GeneratorMaxLength:     getInt("GENERATOR_MAX_LENGTH", 32, &errs),
		GeneratorDefaultLength: getInt("GENERATOR_DEFAULT_LENGTH", 16, &errs),
		RateLimitRPS:           getFloat("RATE_LIMIT_RPS", 10, &errs),
		RateLimitBurst:         getInt("RATE_LIMIT_BURST", 20, &errs),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	if v := os.Getenv("GENERATOR_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("GENERATOR_SEED: %w", err))
		} else {
			cfg.GeneratorSeed = &seed
		}
	}

	if cfg.GeneratorMinLength < 1 ||
		cfg.GeneratorMaxLength < cfg.GeneratorMinLength ||
		cfg.GeneratorDefaultLength < cfg.GeneratorMinLength ||
		cfg.GeneratorDefaultLength > cfg.GeneratorMaxLength {
		errs = append(errs, fmt.Errorf("generator lengths: need 1 <= min (%d) <= default (%d) <= max (%d)",
			cfg.GeneratorMinLength, cfg.GeneratorDefaultLength, cfg.GeneratorMaxLength))
	}

	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst < 1 {
		errs = append(errs, errors.New("rate limit: RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}

	if cfg.IsProduction() && cfg.GeneratorSeed != nil {
		slog.Warn("GENERATOR_SEED is set in production; generated passwords are reproducible")
	}

	return cfg, errors.Join(errs...)
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64, errs *[]error) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return f
}

func getDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}
