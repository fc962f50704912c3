package commands

import (
	"context"
	"fmt"
	"log/slog"

	"dispatch/internal/core/domain/model/board"
	"dispatch/internal/core/ports"
)

// ResetBoardCommandHandler reloads the seed and replaces the stored board with it.
// A seed that fails validation leaves the current board in place.
type ResetBoardCommandHandler struct {
	seed   ports.SeedSource
	store  BoardReplacer
	logger *slog.Logger
}

func NewResetBoardCommandHandler(seed ports.SeedSource, store BoardReplacer, logger *slog.Logger) ResetBoardCommandHandler {
	return ResetBoardCommandHandler{
		seed:   seed,
		store:  store,
		logger: logger.With("component", "reset_board"),
	}
}

func (h ResetBoardCommandHandler) Handle(ctx context.Context, command ResetBoardCommand) (*board.Board, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	b, err := h.seed.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}

	if err = h.store.Replace(ctx, b); err != nil {
		return nil, err
	}

	stats := b.Stats()
	h.logger.InfoContext(ctx, "Board reset",
		"assigned", stats.AssignedOrders,
		"unassigned", stats.UnassignedOrders,
	)
	return b, nil
}
