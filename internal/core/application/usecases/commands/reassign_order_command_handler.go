package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/board"
	"dispatch/internal/core/domain/services"
)

// ReassignOrderCommandHandler applies drop outcomes to the board store.
//
// The engine runs inside the store's update, so drops are applied one at a time
// and each one sees the result of the previous. An integrity error leaves the
// board untouched; the policy then decides whether it reaches the caller.
//
// Example:
//
//	handler := NewReassignOrderCommandHandler(store, services.NewReassignmentEngine(),
//	    IntegrityPolicyForEnv(cfg.AppEnv), logger)
//	next, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrIntegrity) {
//	    // only with SurfaceIntegrityErrors
//	}
type ReassignOrderCommandHandler struct {
	store  BoardUpdater
	engine Reassigner
	policy IntegrityPolicy
	logger *slog.Logger
}

func NewReassignOrderCommandHandler(
	store BoardUpdater,
	engine Reassigner,
	policy IntegrityPolicy,
	logger *slog.Logger,
) ReassignOrderCommandHandler {
	return ReassignOrderCommandHandler{
		store:  store,
		engine: engine,
		policy: policy,
		logger: logger.With("component", "reassign_order"),
	}
}

// Handle returns the board after the drop. For an abandoned drop or a drop onto
// the item's own position that is the current board.
func (h ReassignOrderCommandHandler) Handle(ctx context.Context, command ReassignOrderCommand) (*board.Board, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	event := command.Event()
	next, err := h.store.Update(ctx, func(current *board.Board) (*board.Board, error) {
		return h.engine.Apply(current, event)
	})
	if err == nil {
		return next, nil
	}

	var integrityErr *services.IntegrityError
	if h.policy == DropIntegrityErrors && errors.As(err, &integrityErr) {
		h.logger.ErrorContext(ctx, "Drop ignored, board does not match the event",
			"item_id", integrityErr.ItemID,
			"location", integrityErr.Location.String(),
			"reason", integrityErr.Reason,
		)
		return h.store.Get(ctx)
	}

	return nil, err
}
