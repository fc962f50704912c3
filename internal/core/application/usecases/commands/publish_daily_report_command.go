package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrPublishDailyReportCommandIsNotConstructed = errors.New(
	"PublishDailyReportCommand must be created via NewPublishDailyReportCommand constructor",
)

// PublishDailyReportCommand snapshots every day of the board into the
// daily report hand-off slot.
type PublishDailyReportCommand struct {
	guard guard.ConstructorGuard
}

func NewPublishDailyReportCommand() PublishDailyReportCommand {
	return PublishDailyReportCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PublishDailyReportCommand) Validate() error {
	return c.guard.Validate(ErrPublishDailyReportCommandIsNotConstructed)
}
