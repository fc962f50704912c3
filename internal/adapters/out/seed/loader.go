// Package seed loads the initial dispatch board from a JSON document, either the
// one embedded in the binary or a file named by SEED_PATH.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"dispatch/internal/core/application/documents"
	"dispatch/internal/core/domain/model/board"
	"dispatch/internal/core/domain/model/order"
)

//go:embed seed.json
var embeddedSeed []byte

// Document is the seed file format.
type Document struct {
	Days             []documents.DayDocument             `json:"days"`
	UnassignedOrders []documents.UnassignedOrderDocument `json:"unassignedOrders"`
}

// Loader implements ports.SeedSource.
type Loader struct {
	path   string
	logger *slog.Logger
}

// NewLoader returns a loader reading path, or the embedded seed when path is empty.
func NewLoader(path string, logger *slog.Logger) *Loader {
	return &Loader{
		path:   path,
		logger: logger.With("component", "seed_loader"),
	}
}

// Load reads and validates the seed. Each call returns a new board.
func (l *Loader) Load(ctx context.Context) (*board.Board, error) {
	raw := embeddedSeed
	source := "embedded"
	if l.path != "" {
		data, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("read seed %s: %w", l.path, err)
		}
		raw, source = data, l.path
	}

	b, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", source, err)
	}

	stats := b.Stats()
	l.logger.DebugContext(ctx, "Seed loaded",
		"source", source,
		"days", stats.Days,
		"routes", stats.Routes,
		"assigned", stats.AssignedOrders,
		"unassigned", stats.UnassignedOrders,
	)
	return b, nil
}

// Parse decodes a seed document and applies load-time validation: orders need an
// identity and a positive weight, quantities must be positive, capacities must not
// be negative, routes need a positive max capacity and no order may appear twice.
func Parse(raw []byte) (*board.Board, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	days := make([]*board.DayColumn, len(doc.Days))
	for i, dd := range doc.Days {
		d, err := dd.ToDomain()
		if err != nil {
			return nil, err
		}
		days[i] = d
	}

	pool := make([]*order.UnassignedOrder, len(doc.UnassignedOrders))
	for i, ud := range doc.UnassignedOrders {
		u, err := ud.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("unassignedOrders[%d]: %w", i, err)
		}
		pool[i] = u
	}

	return board.NewBoard(days, pool)
}
