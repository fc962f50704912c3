package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BoardResetJob restores the seed board on a cron schedule.
type BoardResetJob struct {
	handler  commands.ResetBoardCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBoardResetJob creates a reset job. The schedule uses six fields with
// seconds ("0 0 5 * * *") or a descriptor ("@daily", "@every 30m").
func NewBoardResetJob(handler commands.ResetBoardCommandHandler, schedule string, logger *slog.Logger) *BoardResetJob {
	return &BoardResetJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "board_reset_job"),
	}
}

// Start registers the reset on the schedule and starts the scheduler.
func (j *BoardResetJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board reset job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running reset to finish.
func (j *BoardResetJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Board reset job stopped")
}

func (j *BoardResetJob) run() {
	ctx := context.Background()
	if _, err := j.handler.Handle(ctx, commands.NewResetBoardCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Board reset job failed", "error", err)
	}
}
