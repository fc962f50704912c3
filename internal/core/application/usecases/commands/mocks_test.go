package commands_test

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/board"

	"github.com/stretchr/testify/mock"
)

type MockBoardStore struct{ mock.Mock }

func (m *MockBoardStore) Get(ctx context.Context) (*board.Board, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*board.Board), args.Error(1)
}

// Update feeds the board returned by the expectation to fn, like a store holding it would.
func (m *MockBoardStore) Update(
	ctx context.Context,
	fn func(current *board.Board) (*board.Board, error),
) (*board.Board, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return fn(args.Get(0).(*board.Board))
}

func (m *MockBoardStore) Replace(ctx context.Context, b *board.Board) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

type MockHandoffWriter struct{ mock.Mock }

func (m *MockHandoffWriter) Put(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}

type MockSeedSource struct{ mock.Mock }

func (m *MockSeedSource) Load(ctx context.Context) (*board.Board, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*board.Board), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
