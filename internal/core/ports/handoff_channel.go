package ports

import (
	"context"
	"errors"
)

// ErrHandoffSlotEmpty is returned by HandoffChannel.Get when nothing has been written to the key.
var ErrHandoffSlotEmpty = errors.New("hand-off slot is empty")

// HandoffChannel is a key-value slot used to pass a snapshot of the board to a
// separately opened print view. Each Put overwrites the previous value of the key.
type HandoffChannel interface {
	// Put stores payload under key.
	Put(ctx context.Context, key string, payload []byte) error

	// Get returns the last payload stored under key, or ErrHandoffSlotEmpty.
	Get(ctx context.Context, key string) ([]byte, error)
}
