package cmd

import (
	"log/slog"
	"testing"
	"time"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, "dev", config.Env)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, slog.LevelInfo, config.LogLevel)
	assert.Equal(t, HandoffBackendMemory, config.HandoffBackend)
	assert.Equal(t, 24*time.Hour, config.HandoffTTL)
	assert.InDelta(t, 20.0, config.HTTPRateLimit, 0.001)
	assert.Equal(t, "5432", config.DB.Port)
	assert.Empty(t, config.BoardResetSchedule)
	assert.Empty(t, config.CORSOrigins)
}

func TestLoadConfig_Values(t *testing.T) {
	config, err := LoadConfig(envOf(map[string]string{
		"APP_ENV":              "prod",
		"HTTP_PORT":            "9090",
		"LOG_LEVEL":            "debug",
		"SEED_PATH":            "/etc/dispatch/seed.json",
		"HANDOFF_BACKEND":      "Redis",
		"HANDOFF_TTL":          "90m",
		"REDIS_ADDR":           "localhost:6379",
		"REDIS_DB":             "3",
		"BOARD_RESET_SCHEDULE": " @daily ",
		"CORS_ORIGINS":         "http://localhost:3000, https://board.example.com,",
		"HTTP_RATE_LIMIT":      "2.5",
	}))
	require.NoError(t, err)

	assert.Equal(t, "prod", config.Env)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, slog.LevelDebug, config.LogLevel)
	assert.Equal(t, "/etc/dispatch/seed.json", config.SeedPath)
	assert.Equal(t, HandoffBackendRedis, config.HandoffBackend)
	assert.Equal(t, 90*time.Minute, config.HandoffTTL)
	assert.Equal(t, 3, config.RedisDB)
	assert.Equal(t, "@daily", config.BoardResetSchedule)
	assert.Equal(t, []string{"http://localhost:3000", "https://board.example.com"}, config.CORSOrigins)
	assert.InDelta(t, 2.5, config.HTTPRateLimit, 0.001)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{name: "unknown env", env: map[string]string{"APP_ENV": "staging"}, wantErr: errs.ErrValueIsInvalid},
		{name: "unknown backend", env: map[string]string{"HANDOFF_BACKEND": "sqlite"}, wantErr: errs.ErrValueIsInvalid},
		{name: "redis without address", env: map[string]string{"HANDOFF_BACKEND": "redis"}, wantErr: errs.ErrValueIsRequired},
		{name: "postgres without host", env: map[string]string{"HANDOFF_BACKEND": "postgres", "DB_NAME": "dispatch"}, wantErr: errs.ErrValueIsRequired},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}, wantErr: errs.ErrValueIsInvalid},
		{name: "bad ttl", env: map[string]string{"HANDOFF_TTL": "a day"}, wantErr: errs.ErrValueIsInvalid},
		{name: "negative rate limit", env: map[string]string{"HTTP_RATE_LIMIT": "-1"}, wantErr: errs.ErrValueIsInvalid},
		{name: "bad redis db", env: map[string]string{"REDIS_DB": "first"}, wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(envOf(tt.env))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
