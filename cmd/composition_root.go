package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/handoffrepo"
	"dispatch/internal/adapters/out/redisstore"
	"dispatch/internal/adapters/out/seed"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
)

type CompositionRoot struct {
	config  Config
	logger  *slog.Logger
	seed    *seed.Loader
	store   *memory.BoardStore
	handoff ports.HandoffChannel
	clock   clock.Clock
	closers []func() error
}

// NewCompositionRoot loads the seed board and connects the configured hand-off backend.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config: config,
		logger: logger,
		seed:   seed.NewLoader(config.SeedPath, logger),
		clock:  clock.NewSystem(),
	}

	initial, err := c.seed.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	c.store = memory.NewBoardStore(initial)

	if c.handoff, err = c.openHandoff(ctx); err != nil {
		return nil, errors.Join(err, c.Close())
	}

	logger.InfoContext(ctx, "Composition root ready",
		"env", config.Env,
		"handoff_backend", config.HandoffBackend,
		"integrity_policy", commands.IntegrityPolicyForEnv(config.Env).String(),
	)
	return c, nil
}

func (c *CompositionRoot) openHandoff(ctx context.Context) (ports.HandoffChannel, error) {
	switch c.config.HandoffBackend {
	case HandoffBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     c.config.RedisAddr,
			Password: c.config.RedisPassword,
			DB:       c.config.RedisDB,
		})
		c.closers = append(c.closers, client.Close)

		channel := redisstore.NewHandoffChannel(client, redisstore.WithTTL(c.config.HandoffTTL))
		if err := channel.Ping(ctx); err != nil {
			return nil, err
		}
		return channel, nil

	case HandoffBackendPostgres:
		db, err := postgres.Open(ctx, c.config.DB.DSN())
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, func() error { return postgres.Close(db) })

		if err = postgres.Migrate(db); err != nil {
			return nil, err
		}
		return handoffrepo.NewGormHandoffRepository(db), nil

	default:
		return memory.NewHandoffChannel(), nil
	}
}

// Close releases the hand-off backend connections.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) CreateReassignOrderCommandHandler() commands.ReassignOrderCommandHandler {
	return commands.NewReassignOrderCommandHandler(
		c.store,
		services.NewReassignmentEngine(),
		commands.IntegrityPolicyForEnv(c.config.Env),
		c.logger,
	)
}

func (c *CompositionRoot) CreateResetBoardCommandHandler() commands.ResetBoardCommandHandler {
	return commands.NewResetBoardCommandHandler(c.seed, c.store, c.logger)
}

func (c *CompositionRoot) CreatePublishDailyReportCommandHandler() commands.PublishDailyReportCommandHandler {
	return commands.NewPublishDailyReportCommandHandler(c.store, c.handoff, c.clock)
}

func (c *CompositionRoot) CreatePublishInstructionCommandHandler() commands.PublishInstructionCommandHandler {
	return commands.NewPublishInstructionCommandHandler(c.store, c.handoff, c.clock)
}

func (c *CompositionRoot) CreateGetBoardQueryHandler() queries.GetBoardQueryHandler {
	return queries.NewGetBoardQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetDailyReportQueryHandler() queries.GetDailyReportQueryHandler {
	return queries.NewGetDailyReportQueryHandler(c.handoff, c.logger)
}

func (c *CompositionRoot) CreateGetInstructionQueryHandler() queries.GetInstructionQueryHandler {
	return queries.NewGetInstructionQueryHandler(c.handoff, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateResetBoardCommandHandler(), c.config.BoardResetSchedule, c.logger)
}

// CreateHTTPServer wires every handler into the echo server.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreateReassignOrderCommandHandler(),
		c.CreateResetBoardCommandHandler(),
		c.CreatePublishDailyReportCommandHandler(),
		c.CreatePublishInstructionCommandHandler(),
		c.CreateGetBoardQueryHandler(),
		c.CreateGetDailyReportQueryHandler(),
		c.CreateGetInstructionQueryHandler(),
	)

	return httpin.NewHTTPServer(httpin.ServerConfig{
		Env:         c.config.Env,
		RateLimit:   c.config.HTTPRateLimit,
		CORSOrigins: c.config.CORSOrigins,
		EchoLevel:   echoLevel(c.config.LogLevel),
	}, server, c.logger)
}

func echoLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
