package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/pkg/errs"
)

// Hand-off backends selectable with HANDOFF_BACKEND.
const (
	HandoffBackendMemory   = "memory"
	HandoffBackendRedis    = "redis"
	HandoffBackendPostgres = "postgres"
)

const (
	defaultHTTPPort   = "8080"
	defaultEnv        = "dev"
	defaultHandoffTTL = 24 * time.Hour
	defaultRateLimit  = 20
)

type Config struct {
	Env                string
	HTTPPort           string
	LogLevel           slog.Level
	SeedPath           string
	HandoffBackend     string
	HandoffTTL         time.Duration
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	DB                 postgres.Config
	BoardResetSchedule string
	CORSOrigins        []string
	HTTPRateLimit      float64
}

// LoadConfig reads the configuration through getenv and applies defaults.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		Env:                orDefault(getenv("APP_ENV"), defaultEnv),
		HTTPPort:           orDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		SeedPath:           getenv("SEED_PATH"),
		HandoffBackend:     strings.ToLower(orDefault(getenv("HANDOFF_BACKEND"), HandoffBackendMemory)),
		HandoffTTL:         defaultHandoffTTL,
		RedisAddr:          getenv("REDIS_ADDR"),
		RedisPassword:      getenv("REDIS_PASSWORD"),
		BoardResetSchedule: strings.TrimSpace(getenv("BOARD_RESET_SCHEDULE")),
		CORSOrigins:        splitList(getenv("CORS_ORIGINS")),
		HTTPRateLimit:      defaultRateLimit,
		DB: postgres.Config{
			Host:     getenv("DB_HOST"),
			Port:     orDefault(getenv("DB_PORT"), "5432"),
			User:     getenv("DB_USER"),
			Password: getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME"),
			SSLMode:  getenv("DB_SSLMODE"),
		},
	}

	var errList []error

	if raw := getenv("LOG_LEVEL"); raw != "" {
		if err := config.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
		}
	}

	if raw := getenv("HANDOFF_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl < 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("HANDOFF_TTL", err))
		}
		config.HandoffTTL = ttl
	}

	if raw := getenv("REDIS_DB"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil || db < 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("REDIS_DB", err))
		}
		config.RedisDB = db
	}

	if raw := getenv("HTTP_RATE_LIMIT"); raw != "" {
		limit, err := strconv.ParseFloat(raw, 64)
		if err != nil || limit < 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("HTTP_RATE_LIMIT", err))
		}
		config.HTTPRateLimit = limit
	}

	errList = append(errList, config.validate())

	if err := errors.Join(errList...); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return config, nil
}

func (c Config) validate() error {
	var errList []error

	switch c.Env {
	case "dev", "test", "prod":
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("APP_ENV",
			fmt.Errorf("%q is not one of dev, test, prod", c.Env)))
	}

	switch c.HandoffBackend {
	case HandoffBackendMemory:
	case HandoffBackendRedis:
		if c.RedisAddr == "" {
			errList = append(errList, errs.NewValueIsRequiredError("REDIS_ADDR"))
		}
	case HandoffBackendPostgres:
		if c.DB.Host == "" {
			errList = append(errList, errs.NewValueIsRequiredError("DB_HOST"))
		}
		if c.DB.Name == "" {
			errList = append(errList, errs.NewValueIsRequiredError("DB_NAME"))
		}
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("HANDOFF_BACKEND",
			fmt.Errorf("%q is not one of memory, redis, postgres", c.HandoffBackend)))
	}

	return errors.Join(errList...)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
