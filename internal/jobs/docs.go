// Package jobs provides scheduled background tasks for the dispatch board.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(resetBoardHandler, config.BoardResetSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatalf("start jobs: %v", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// BoardResetJob restores the seed board on BOARD_RESET_SCHEDULE, for demo
// installations that should not drift from the seed. The job is disabled when
// the schedule is empty.
//
// # Error Handling
//
// A failed reset is logged and the current board stays in place; the next tick
// tries again. An invalid schedule fails StartAll.
package jobs
