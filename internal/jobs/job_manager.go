package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"dispatch/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Jobs without a schedule are not created.
type JobManager struct {
	boardResetJob *BoardResetJob
	logger        *slog.Logger
}

// NewJobManager creates the job manager. An empty resetSchedule disables the
// board reset job.
func NewJobManager(
	resetBoardHandler commands.ResetBoardCommandHandler,
	resetSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}

	if schedule := strings.TrimSpace(resetSchedule); schedule != "" {
		jm.boardResetJob = NewBoardResetJob(resetBoardHandler, schedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.boardResetJob == nil {
		jm.logger.InfoContext(context.Background(), "Board reset job disabled")
		return nil
	}

	if err := jm.boardResetJob.Start(); err != nil {
		return fmt.Errorf("failed to start board reset job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.boardResetJob != nil {
		jm.boardResetJob.Stop()
	}
}
