// Package queries contains read operations over the board and the hand-off slots.
// Query handlers return read models with JSON tags, ready to be served as they are.
package queries

import (
	"context"

	"dispatch/internal/core/domain/model/board"
)

type (
	// BoardReader returns the current board snapshot.
	BoardReader interface {
		Get(ctx context.Context) (*board.Board, error)
	}

	// HandoffReader reads a hand-off slot. A missing slot is ports.ErrHandoffSlotEmpty.
	HandoffReader interface {
		Get(ctx context.Context, key string) ([]byte, error)
	}
)

// Placeholder messages shown by the print views when there is nothing to print.
const (
	NoReportDataMessage      = "レポートデータがありません"
	NoReportDataHint         = "配車ボードから「配達日報プレビュー」ボタンを押してください"
	NoInstructionDataMessage = "指示書データがありません"
	NoInstructionDataHint    = "配車ボードから指示書アイコンをクリックしてください"
)
