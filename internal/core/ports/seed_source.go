package ports

import (
	"context"

	"dispatch/internal/core/domain/model/board"
)

// SeedSource provides the initial board. Every call returns a freshly validated board.
type SeedSource interface {
	Load(ctx context.Context) (*board.Board, error)
}
