package memory

import (
	"context"
	"errors"
	"sync"

	"dispatch/internal/core/domain/model/board"
)

// ErrBoardStoreIsEmpty is returned when the store is read before a board was stored.
var ErrBoardStoreIsEmpty = errors.New("board store is empty")

// BoardStore keeps the current board snapshot behind a mutex. Updates run one
// at a time; readers get the last committed snapshot without waiting for them.
type BoardStore struct {
	mu      sync.RWMutex
	update  sync.Mutex
	current *board.Board
}

// NewBoardStore returns a store holding initial, which may be nil.
func NewBoardStore(initial *board.Board) *BoardStore {
	return &BoardStore{current: initial}
}

// Get returns the current snapshot.
func (s *BoardStore) Get(ctx context.Context) (*board.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrBoardStoreIsEmpty
	}
	return s.current, nil
}

// Update applies fn to the current snapshot and stores its result.
// The stored board is left unchanged when fn fails.
func (s *BoardStore) Update(ctx context.Context, fn func(current *board.Board) (*board.Board, error)) (*board.Board, error) {
	s.update.Lock()
	defer s.update.Unlock()

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	if err = next.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	return next, nil
}

// Replace stores b unconditionally.
func (s *BoardStore) Replace(ctx context.Context, b *board.Board) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}

	s.update.Lock()
	defer s.update.Unlock()

	s.mu.Lock()
	s.current = b
	s.mu.Unlock()
	return nil
}
