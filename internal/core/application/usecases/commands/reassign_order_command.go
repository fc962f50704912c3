package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrReassignOrderCommandIsNotConstructed = errors.New(
	"ReassignOrderCommand must be created via NewReassignOrderCommand constructor",
)

// ReassignOrderCommand carries one drop outcome from the board UI.
//
// Example:
//
//	dst, _ := kernel.ParseLocation("2024-11-18::route-03-1118")
//	cmd, err := NewReassignOrderCommand("unassigned-001", kernel.Pool(), &dst, 0)
//	if err != nil {
//	    return err
//	}
//	next, err := handler.Handle(ctx, cmd)
type ReassignOrderCommand struct { //nolint:recvcheck //using for validation
	itemID           string
	source           kernel.Location
	destination      *kernel.Location
	destinationIndex int

	guard guard.ConstructorGuard
}

// NewReassignOrderCommand validates the drop outcome. A nil destination is a
// legal abandoned drop. The index is not range-checked; the engine clamps it.
func NewReassignOrderCommand(
	itemID string,
	source kernel.Location,
	destination *kernel.Location,
	destinationIndex int,
) (ReassignOrderCommand, error) {
	cmd := ReassignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setSource(source),
		cmd.setDestination(destination),
	); err != nil {
		return ReassignOrderCommand{}, err
	}

	cmd.destinationIndex = destinationIndex
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignOrderCommand) Validate() error {
	return c.guard.Validate(ErrReassignOrderCommandIsNotConstructed)
}

func (c ReassignOrderCommand) ItemID() string {
	return c.itemID
}

func (c ReassignOrderCommand) Source() kernel.Location {
	return c.source
}

// Destination returns the drop target, or false for an abandoned drop.
func (c ReassignOrderCommand) Destination() (kernel.Location, bool) {
	if c.destination == nil {
		return kernel.Location{}, false
	}
	return *c.destination, true
}

func (c ReassignOrderCommand) DestinationIndex() int {
	return c.destinationIndex
}

// Event converts the command to the engine's input.
func (c ReassignOrderCommand) Event() services.DragEvent {
	var dst *kernel.Location
	if c.destination != nil {
		d := *c.destination
		dst = &d
	}
	return services.DragEvent{
		ItemID:           c.itemID,
		Source:           c.source,
		Destination:      dst,
		DestinationIndex: c.destinationIndex,
	}
}

func (c *ReassignOrderCommand) setItemID(itemID string) error {
	if itemID == "" {
		return errs.NewValueIsRequiredError("draggableId")
	}

	c.itemID = itemID
	return nil
}

func (c *ReassignOrderCommand) setSource(source kernel.Location) error {
	if err := source.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("source", err)
	}

	c.source = source
	return nil
}

func (c *ReassignOrderCommand) setDestination(destination *kernel.Location) error {
	if destination == nil {
		return nil
	}
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("destination", err)
	}

	d := *destination
	c.destination = &d
	return nil
}
