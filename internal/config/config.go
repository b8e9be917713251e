package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// ModelConfig selects the Gemini variants per task.
type ModelConfig struct {
	// Maps must support the Google Maps grounding tool.
	Maps    string
	Pitch   string
	Timeout time.Duration
}

// PipelineConfig tunes the acquisition and pitch loops.
type PipelineConfig struct {
	BatchSize       int
	BatchDelay      time.Duration
	PitchDelay      time.Duration
	PhoneRegion     string
	DefaultLocation string
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string
	Format string
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL     string
	Port            string
	GeminiAPIKey    string
	Models          ModelConfig
	Pipeline        PipelineConfig
	Log             LogConfig
	RateLimitSearch RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Port:         getEnv("PORT", "8080"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Models: ModelConfig{
			Maps:    getEnv("MAPS_MODEL", "gemini-2.5-flash"),
			Pitch:   getEnv("PITCH_MODEL", "gemini-3-flash-preview"),
			Timeout: parseDuration(getEnv("MODEL_TIMEOUT", "90s"), 90*time.Second),
		},
		Pipeline: PipelineConfig{
			BatchDelay:      parseDuration(getEnv("LEAD_BATCH_DELAY", "2s"), 2*time.Second),
			PitchDelay:      parseDuration(getEnv("PITCH_DELAY", "300ms"), 300*time.Millisecond),
			PhoneRegion:     strings.ToUpper(getEnv("PHONE_REGION", "GB")),
			DefaultLocation: getEnv("DEFAULT_LOCATION", "London"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	batchSize, err := strconv.Atoi(getEnv("LEAD_BATCH_SIZE", "15"))
	if err != nil || batchSize <= 0 {
		return nil, fmt.Errorf("invalid LEAD_BATCH_SIZE value: %q", os.Getenv("LEAD_BATCH_SIZE"))
	}
	cfg.Pipeline.BatchSize = batchSize

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_SEARCH", "5/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SEARCH value: %w", err)
	}
	cfg.RateLimitSearch = rl

	return cfg, nil
}

// NewLogger builds a zap logger from the log settings.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if strings.EqualFold(cfg.Format, "console") {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zapCfg.Level.SetLevel(level)

	return zapCfg.Build()
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

// parseDuration accepts Go durations and falls back when input is malformed
// or negative. Zero is kept so delays can be disabled.
func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
