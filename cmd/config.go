package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ordermanagement/internal/jobs"
)

const (
	defaultHTTPPort       = "8080"
	defaultBackendURL     = "https://localhost:7197/api"
	defaultBackendTimeout = 10 * time.Second
	defaultSessionIdleTTL = 30 * time.Minute
	defaultAppEnv         = "development"
	defaultLogLevel       = "info"
)

type Config struct {
	HTTPPort              string
	BackendURL            string
	BackendTimeout        time.Duration
	AppEnv                string
	LogLevel              string
	SessionIdleTTL        time.Duration
	SessionReaperSchedule string
}

// NewConfig reads the configuration through getenv, falling back to defaults
// for unset keys. Malformed durations are reported together.
func NewConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:              valueOr(getenv("HTTP_PORT"), defaultHTTPPort),
		BackendURL:            valueOr(getenv("BACKEND_URL"), defaultBackendURL),
		AppEnv:                valueOr(getenv("APP_ENV"), defaultAppEnv),
		LogLevel:              valueOr(getenv("LOG_LEVEL"), defaultLogLevel),
		SessionReaperSchedule: valueOr(getenv("SESSION_REAPER_SCHEDULE"), jobs.DefaultSessionReaperSchedule),
	}

	var timeoutErr, ttlErr error
	cfg.BackendTimeout, timeoutErr = durationOr(getenv, "BACKEND_TIMEOUT", defaultBackendTimeout)
	cfg.SessionIdleTTL, ttlErr = durationOr(getenv, "SESSION_IDLE_TTL", defaultSessionIdleTTL)

	if err := errors.Join(timeoutErr, ttlErr); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func valueOr(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

func durationOr(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return def, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, raw)
	}
	return d, nil
}
