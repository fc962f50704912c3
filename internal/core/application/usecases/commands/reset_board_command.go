package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrResetBoardCommandIsNotConstructed = errors.New(
	"ResetBoardCommand must be created via NewResetBoardCommand constructor",
)

// ResetBoardCommand restores the board to its seed state.
type ResetBoardCommand struct {
	guard guard.ConstructorGuard
}

func NewResetBoardCommand() ResetBoardCommand {
	return ResetBoardCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ResetBoardCommand) Validate() error {
	return c.guard.Validate(ErrResetBoardCommandIsNotConstructed)
}
