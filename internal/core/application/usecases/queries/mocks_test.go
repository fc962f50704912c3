package queries_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/board"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2024, 11, 18, 7, 0, 0, 0, time.UTC)

type MockBoardReader struct{ mock.Mock }

func (m *MockBoardReader) Get(ctx context.Context) (*board.Board, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*board.Board), args.Error(1)
}

type MockHandoffReader struct{ mock.Mock }

func (m *MockHandoffReader) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
