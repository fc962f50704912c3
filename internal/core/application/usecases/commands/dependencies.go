// Package commands contains business operations that modify the board or publish
// hand-off documents. Every command is built by a constructor that validates its
// input; every handler validates the command again before touching any port.
package commands

import (
	"context"

	"dispatch/internal/core/domain/model/board"
	"dispatch/internal/core/domain/services"
)

// Narrow views of the ports, so that each handler depends only on what it calls.
type (
	// BoardReader returns the current board snapshot.
	BoardReader interface {
		Get(ctx context.Context) (*board.Board, error)
	}

	// BoardUpdater applies a serialized update to the board.
	BoardUpdater interface {
		BoardReader
		Update(ctx context.Context, fn func(current *board.Board) (*board.Board, error)) (*board.Board, error)
	}

	// BoardReplacer swaps the whole board.
	BoardReplacer interface {
		Replace(ctx context.Context, b *board.Board) error
	}

	// HandoffWriter publishes a payload under a hand-off key.
	HandoffWriter interface {
		Put(ctx context.Context, key string, payload []byte) error
	}

	// Reassigner turns a drag event into the next board.
	Reassigner interface {
		Apply(current *board.Board, event services.DragEvent) (*board.Board, error)
	}
)
