package commands_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/board/boardtest"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func reassign(t *testing.T, itemID string, src kernel.Location, dst string, index int) commands.ReassignOrderCommand {
	t.Helper()
	loc, err := kernel.ParseLocation(dst)
	require.NoError(t, err)
	cmd, err := commands.NewReassignOrderCommand(itemID, src, &loc, index)
	require.NoError(t, err)
	return cmd
}

func TestReassignOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	current := boardtest.Standard(t)

	store := new(MockBoardStore)
	store.On("Update", ctx).Return(current, nil).Once()

	h := commands.NewReassignOrderCommandHandler(store, services.NewReassignmentEngine(),
		commands.SurfaceIntegrityErrors, discardLogger())
	next, err := h.Handle(ctx, reassign(t, "p1", kernel.Pool(), "d2::r3", 0))

	require.NoError(t, err)
	r3, ok := next.RouteAt(mustLocation(t, "d2::r3"))
	require.True(t, ok)
	assert.Equal(t, []string{"p1"}, boardtest.RouteOrderIDs(r3))
	assert.Equal(t, []string{"p2"}, boardtest.PoolIDs(next))
	store.AssertExpectations(t)
}

func TestReassignOrderCommandHandler_Handle_AbandonedDrop(t *testing.T) {
	ctx := t.Context()
	current := boardtest.Standard(t)

	store := new(MockBoardStore)
	store.On("Update", ctx).Return(current, nil).Once()

	cmd, err := commands.NewReassignOrderCommand("p1", kernel.Pool(), nil, 0)
	require.NoError(t, err)

	h := commands.NewReassignOrderCommandHandler(store, services.NewReassignmentEngine(),
		commands.SurfaceIntegrityErrors, discardLogger())
	next, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, current, next)
	store.AssertExpectations(t)
}

func TestReassignOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	store := new(MockBoardStore)
	h := commands.NewReassignOrderCommandHandler(store, services.NewReassignmentEngine(),
		commands.SurfaceIntegrityErrors, discardLogger())

	_, err := h.Handle(t.Context(), commands.ReassignOrderCommand{})

	require.ErrorIs(t, err, commands.ErrReassignOrderCommandIsNotConstructed)
	store.AssertNotCalled(t, "Update", mock.Anything)
}

func TestReassignOrderCommandHandler_Handle_IntegritySurfaced(t *testing.T) {
	ctx := t.Context()

	store := new(MockBoardStore)
	store.On("Update", ctx).Return(boardtest.Standard(t), nil).Once()

	h := commands.NewReassignOrderCommandHandler(store, services.NewReassignmentEngine(),
		commands.SurfaceIntegrityErrors, discardLogger())
	_, err := h.Handle(ctx, reassign(t, "ghost", kernel.Pool(), "d1::r1", 0))

	var integrityErr *services.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, "ghost", integrityErr.ItemID)
	store.AssertNotCalled(t, "Get", mock.Anything)
	store.AssertExpectations(t)
}

func TestReassignOrderCommandHandler_Handle_IntegrityDropped(t *testing.T) {
	ctx := t.Context()
	current := boardtest.Standard(t)

	store := new(MockBoardStore)
	mock.InOrder(
		store.On("Update", ctx).Return(current, nil).Once(),
		store.On("Get", ctx).Return(current, nil).Once(),
	)

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	h := commands.NewReassignOrderCommandHandler(store, services.NewReassignmentEngine(),
		commands.DropIntegrityErrors, logger)
	next, err := h.Handle(ctx, reassign(t, "a", mustLocation(t, "d1::r1"), "d9::r9", 0))

	require.NoError(t, err)
	assert.Same(t, current, next)
	assert.Contains(t, logs.String(), `"level":"ERROR"`)
	assert.Contains(t, logs.String(), `"location":"d9::r9"`)
	store.AssertExpectations(t)
}

func TestReassignOrderCommandHandler_Handle_StoreErrorIsNotDropped(t *testing.T) {
	ctx := t.Context()
	storeErr := errors.New("store unavailable")

	store := new(MockBoardStore)
	store.On("Update", ctx).Return(nil, storeErr).Once()

	h := commands.NewReassignOrderCommandHandler(store, services.NewReassignmentEngine(),
		commands.DropIntegrityErrors, discardLogger())
	_, err := h.Handle(ctx, reassign(t, "a", mustLocation(t, "d1::r1"), "d1::r2", 0))

	require.ErrorIs(t, err, storeErr)
	store.AssertExpectations(t)
}

func TestIntegrityPolicyForEnv(t *testing.T) {
	assert.Equal(t, commands.DropIntegrityErrors, commands.IntegrityPolicyForEnv("prod"))
	assert.Equal(t, commands.SurfaceIntegrityErrors, commands.IntegrityPolicyForEnv("dev"))
	assert.Equal(t, commands.SurfaceIntegrityErrors, commands.IntegrityPolicyForEnv("test"))
	assert.Equal(t, commands.SurfaceIntegrityErrors, commands.IntegrityPolicyForEnv(""))
	assert.Equal(t, "drop", commands.DropIntegrityErrors.String())
}

func mustLocation(t *testing.T, s string) kernel.Location {
	t.Helper()
	loc, err := kernel.ParseLocation(s)
	require.NoError(t, err)
	return loc
}
