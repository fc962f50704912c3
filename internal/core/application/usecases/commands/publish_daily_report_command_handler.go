package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/core/application/documents"
	"dispatch/internal/pkg/clock"
)

// Published describes a hand-off write.
type Published struct {
	Key         string
	GeneratedAt time.Time
}

// PublishDailyReportCommandHandler writes the report document under
// documents.ReportDataKey, replacing whatever was published before.
//
// Example:
//
//	handler := NewPublishDailyReportCommandHandler(store, handoff, clock.NewSystem())
//	published, err := handler.Handle(ctx, NewPublishDailyReportCommand())
//	// the print view now reads published.Key
type PublishDailyReportCommandHandler struct {
	store   BoardReader
	handoff HandoffWriter
	clock   clock.Clock
}

func NewPublishDailyReportCommandHandler(store BoardReader, handoff HandoffWriter, clk clock.Clock) PublishDailyReportCommandHandler {
	return PublishDailyReportCommandHandler{
		store:   store,
		handoff: handoff,
		clock:   clk,
	}
}

func (h PublishDailyReportCommandHandler) Handle(ctx context.Context, command PublishDailyReportCommand) (Published, error) {
	if err := command.Validate(); err != nil {
		return Published{}, err
	}

	b, err := h.store.Get(ctx)
	if err != nil {
		return Published{}, err
	}

	at := h.clock.Now()
	payload, err := json.Marshal(documents.NewReportDocument(b.Days(), at))
	if err != nil {
		return Published{}, fmt.Errorf("encode report: %w", err)
	}

	if err = h.handoff.Put(ctx, documents.ReportDataKey, payload); err != nil {
		return Published{}, fmt.Errorf("publish report: %w", err)
	}

	return Published{Key: documents.ReportDataKey, GeneratedAt: at}, nil
}
