package memory

import (
	"context"
	"slices"
	"sync"

	"dispatch/internal/core/ports"
)

// HandoffChannel is an in-process key-value slot store.
type HandoffChannel struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewHandoffChannel() *HandoffChannel {
	return &HandoffChannel{slots: make(map[string][]byte)}
}

func (h *HandoffChannel) Put(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.slots[key] = slices.Clone(payload)
	return nil
}

func (h *HandoffChannel) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	payload, ok := h.slots[key]
	if !ok {
		return nil, ports.ErrHandoffSlotEmpty
	}
	return slices.Clone(payload), nil
}
