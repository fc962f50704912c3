package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrPublishInstructionCommandIsNotConstructed = errors.New(
	"PublishInstructionCommand must be created via NewPublishInstructionCommand constructor",
)

// PublishInstructionCommand snapshots one route into the instruction hand-off slot.
//
// Example:
//
//	cmd, err := NewPublishInstructionCommand("2024-11-18", "route-03-1118")
type PublishInstructionCommand struct { //nolint:recvcheck //using for validation
	dayID   string
	routeID string

	guard guard.ConstructorGuard
}

func NewPublishInstructionCommand(dayID, routeID string) (PublishInstructionCommand, error) {
	cmd := PublishInstructionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDayID(dayID),
		cmd.setRouteID(routeID),
	); err != nil {
		return PublishInstructionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PublishInstructionCommand) Validate() error {
	return c.guard.Validate(ErrPublishInstructionCommandIsNotConstructed)
}

func (c PublishInstructionCommand) DayID() string {
	return c.dayID
}

func (c PublishInstructionCommand) RouteID() string {
	return c.routeID
}

func (c *PublishInstructionCommand) setDayID(dayID string) error {
	if dayID == "" {
		return errs.NewValueIsRequiredError("dayId")
	}

	c.dayID = dayID
	return nil
}

func (c *PublishInstructionCommand) setRouteID(routeID string) error {
	if routeID == "" {
		return errs.NewValueIsRequiredError("routeId")
	}

	c.routeID = routeID
	return nil
}
