package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch/internal/core/application/documents"
	"dispatch/internal/pkg/clock"
	"dispatch/internal/pkg/errs"
)

// PublishInstructionCommandHandler writes one route and its day under
// documents.InstructionDataKey. The day must contain the route.
type PublishInstructionCommandHandler struct {
	store   BoardReader
	handoff HandoffWriter
	clock   clock.Clock
}

func NewPublishInstructionCommandHandler(store BoardReader, handoff HandoffWriter, clk clock.Clock) PublishInstructionCommandHandler {
	return PublishInstructionCommandHandler{
		store:   store,
		handoff: handoff,
		clock:   clk,
	}
}

// Handle returns errs.ErrObjectNotFound when the day or the route is not on the board.
func (h PublishInstructionCommandHandler) Handle(ctx context.Context, command PublishInstructionCommand) (Published, error) {
	if err := command.Validate(); err != nil {
		return Published{}, err
	}

	b, err := h.store.Get(ctx)
	if err != nil {
		return Published{}, err
	}

	day, _, ok := b.Day(command.DayID())
	if !ok {
		return Published{}, errs.NewObjectNotFoundError("dayId", command.DayID())
	}
	r, _, ok := day.Route(command.RouteID())
	if !ok {
		return Published{}, errs.NewObjectNotFoundError("routeId", command.RouteID())
	}

	at := h.clock.Now()
	payload, err := json.Marshal(documents.NewInstructionDocument(day, r, at))
	if err != nil {
		return Published{}, fmt.Errorf("encode instruction: %w", err)
	}

	if err = h.handoff.Put(ctx, documents.InstructionDataKey, payload); err != nil {
		return Published{}, fmt.Errorf("publish instruction: %w", err)
	}

	return Published{Key: documents.InstructionDataKey, GeneratedAt: at}, nil
}
