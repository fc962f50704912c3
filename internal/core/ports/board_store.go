package ports

import (
	"context"

	"dispatch/internal/core/domain/model/board"
)

// BoardStore owns the single board of the process and is its sole mutator.
// Updates are serialized: each update function sees the result of the previous one.
type BoardStore interface {
	// Get returns the current board snapshot. Snapshots are immutable and may be
	// read concurrently with updates.
	Get(ctx context.Context) (*board.Board, error)

	// Update applies fn to the current board and stores its result. If fn returns
	// an error the stored board is left unchanged and the error is returned.
	Update(ctx context.Context, fn func(current *board.Board) (*board.Board, error)) (*board.Board, error)

	// Replace stores b unconditionally, e.g. when the board is reset to its seed.
	Replace(ctx context.Context, b *board.Board) error
}
