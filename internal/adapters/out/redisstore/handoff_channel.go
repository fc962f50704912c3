// Package redisstore keeps hand-off slots in Redis so that a print view served
// by another replica can read what this one published.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a published slot survives when no TTL is configured.
const DefaultTTL = 24 * time.Hour

// HandoffChannel implements ports.HandoffChannel on a Redis string per key.
type HandoffChannel struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// Option configures a HandoffChannel.
type Option func(*HandoffChannel)

// WithPrefix namespaces every key, e.g. "dispatch:".
func WithPrefix(prefix string) Option {
	return func(h *HandoffChannel) {
		h.prefix = prefix
	}
}

// WithTTL sets the slot expiry. Zero keeps slots forever.
func WithTTL(ttl time.Duration) Option {
	return func(h *HandoffChannel) {
		h.ttl = ttl
	}
}

// NewHandoffChannel wraps an existing client. The caller owns the client.
func NewHandoffChannel(client redis.UniversalClient, opts ...Option) *HandoffChannel {
	h := &HandoffChannel{
		client: client,
		ttl:    DefaultTTL,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Put overwrites the slot and resets its expiry.
func (h *HandoffChannel) Put(ctx context.Context, key string, payload []byte) error {
	if err := h.client.Set(ctx, h.prefix+key, payload, h.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Get returns ports.ErrHandoffSlotEmpty for a missing or expired slot.
func (h *HandoffChannel) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := h.client.Get(ctx, h.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrHandoffSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return payload, nil
}

// Ping checks connectivity; the composition root calls it before serving.
func (h *HandoffChannel) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}
