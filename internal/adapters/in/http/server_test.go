package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/adapters/out/seed"
	"dispatch/internal/core/application/documents"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/board/boardtest"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var publishedAt = time.Date(2024, 11, 18, 8, 0, 0, 0, time.UTC)

type testEnv struct {
	e       *echo.Echo
	store   *memory.BoardStore
	handoff *memory.HandoffChannel
}

func newTestEnv(t *testing.T, conf ServerConfig, policy commands.IntegrityPolicy) testEnv {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	store := memory.NewBoardStore(boardtest.Standard(t))
	handoff := memory.NewHandoffChannel()
	clk := clock.NewFixed(publishedAt)

	server := NewServer(
		commands.NewReassignOrderCommandHandler(store, services.NewReassignmentEngine(), policy, logger),
		commands.NewResetBoardCommandHandler(seed.NewLoader("", logger), store, logger),
		commands.NewPublishDailyReportCommandHandler(store, handoff, clk),
		commands.NewPublishInstructionCommandHandler(store, handoff, clk),
		queries.NewGetBoardQueryHandler(store),
		queries.NewGetDailyReportQueryHandler(handoff, logger),
		queries.NewGetInstructionQueryHandler(handoff, logger),
	)

	e, err := NewHTTPServer(conf, server, logger)
	require.NoError(t, err)

	return testEnv{e: e, store: store, handoff: handoff}
}

func testConfig() ServerConfig {
	return ServerConfig{Env: "test", EchoLevel: log.OFF}
}

func (env testEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)

	rec := env.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestGetBoard(t *testing.T) {
	env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)

	rec := env.do(t, http.MethodGet, "/api/v1/board", "")
	require.Equal(t, http.StatusOK, rec.Code)

	view := decode[queries.BoardView](t, rec)
	require.Len(t, view.Days, 2)
	assert.Equal(t, "d1", view.Days[0].ID)
	assert.Equal(t, "d1::r1", view.Days[0].Routes[0].DroppableID)
	assert.InDelta(t, 1800.0, view.Days[0].Routes[0].Weight, 0.001)
	assert.Equal(t, "unassigned", view.DroppableID)
	require.Len(t, view.UnassignedOrders, 2)
	assert.Equal(t, "p1", view.UnassignedOrders[0].ID)
	assert.Equal(t, 4, view.Stats.AssignedOrders)
	assert.Equal(t, 2, view.Stats.UnassignedOrders)
}

func TestReassignOrder(t *testing.T) {
	t.Run("pool to route", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)

		rec := env.do(t, http.MethodPost, "/api/v1/board/reassignments",
			`{"source":"unassigned","destination":"d2::r3","draggableId":"p1","destinationIndex":0}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		view := decode[queries.BoardView](t, rec)
		require.Len(t, view.UnassignedOrders, 1)
		assert.Equal(t, "p2", view.UnassignedOrders[0].ID)
		require.Len(t, view.Days[1].Routes[0].Orders, 1)
		assert.Equal(t, "p1", view.Days[1].Routes[0].Orders[0].ID)

		stored, err := env.store.Get(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []string{"p2"}, boardtest.PoolIDs(stored))
	})

	t.Run("reorder inside a route", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)

		rec := env.do(t, http.MethodPost, "/api/v1/board/reassignments",
			`{"source":"d1::r1","destination":"d1::r1","draggableId":"a","destinationIndex":2}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		stored, err := env.store.Get(t.Context())
		require.NoError(t, err)
		slot, err := kernel.NewRouteSlot("d1", "r1")
		require.NoError(t, err)
		r1, ok := stored.RouteAt(slot)
		require.True(t, ok)
		assert.Equal(t, []string{"b", "c", "a"}, boardtest.RouteOrderIDs(r1))
	})

	t.Run("abandoned drop keeps the board", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)
		before, err := env.store.Get(t.Context())
		require.NoError(t, err)

		rec := env.do(t, http.MethodPost, "/api/v1/board/reassignments",
			`{"source":"d1::r1","destination":null,"draggableId":"a","destinationIndex":0}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		after, err := env.store.Get(t.Context())
		require.NoError(t, err)
		assert.Same(t, before, after)
	})

	t.Run("integrity error is surfaced outside prod", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)
		before, err := env.store.Get(t.Context())
		require.NoError(t, err)

		rec := env.do(t, http.MethodPost, "/api/v1/board/reassignments",
			`{"source":"d1::r1","destination":"d9::r9","draggableId":"a","destinationIndex":0}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, CodeIntegrity, decode[Error](t, rec).Code)

		after, err := env.store.Get(t.Context())
		require.NoError(t, err)
		assert.Same(t, before, after)
	})

	t.Run("integrity error is dropped in prod", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), commands.DropIntegrityErrors)

		rec := env.do(t, http.MethodPost, "/api/v1/board/reassignments",
			`{"source":"d1::r1","destination":"d2::r3","draggableId":"ghost","destinationIndex":0}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		view := decode[queries.BoardView](t, rec)
		assert.Len(t, view.Days[0].Routes[0].Orders, 3)
		assert.Empty(t, view.Days[1].Routes[0].Orders)
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "missing draggableId", body: `{"source":"unassigned","destination":"d2::r3","destinationIndex":0}`},
		{name: "missing destinationIndex", body: `{"source":"unassigned","destination":"d2::r3","draggableId":"p1"}`},
		{name: "malformed source", body: `{"source":"d1-r1","destination":"d2::r3","draggableId":"a","destinationIndex":0}`},
		{name: "malformed destination", body: `{"source":"d1::r1","destination":"::r3","draggableId":"a","destinationIndex":0}`},
		{name: "empty source", body: `{"source":"","destination":"d2::r3","draggableId":"a","destinationIndex":0}`},
		{name: "index is not a number", body: `{"source":"d1::r1","destination":"d2::r3","draggableId":"a","destinationIndex":"first"}`},
		{name: "not json", body: `source=d1::r1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)

			rec := env.do(t, http.MethodPost, "/api/v1/board/reassignments", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, CodeValidation, decode[Error](t, rec).Code)
		})
	}
}

func TestResetBoard(t *testing.T) {
	env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)

	rec := env.do(t, http.MethodPost, "/api/v1/board/reset", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	view := decode[queries.BoardView](t, rec)
	assert.Len(t, view.Days, 5)
	assert.Len(t, view.UnassignedOrders, 5)

	stored, err := env.store.Get(t.Context())
	require.NoError(t, err)
	assert.Len(t, stored.Days(), 5)
}

func TestDailyReport(t *testing.T) {
	t.Run("no data before publishing", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)

		rec := env.do(t, http.MethodGet, "/api/v1/reports/daily", "")
		require.Equal(t, http.StatusOK, rec.Code)

		view := decode[queries.DailyReportView](t, rec)
		assert.False(t, view.Available)
		assert.Equal(t, queries.NoReportDataMessage, view.Message)
	})

	t.Run("publish then read", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)

		rec := env.do(t, http.MethodPost, "/api/v1/reports/daily", "")
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

		published := decode[PublishedResponse](t, rec)
		assert.Equal(t, documents.ReportDataKey, published.Key)
		assert.Equal(t, "2024-11-18T08:00:00.000Z", published.GeneratedAt)

		rec = env.do(t, http.MethodGet, "/api/v1/reports/daily?day=0", "")
		require.Equal(t, http.StatusOK, rec.Code)

		view := decode[queries.DailyReportView](t, rec)
		require.True(t, view.Available)
		assert.Equal(t, published.GeneratedAt, view.GeneratedAt)
		require.NotNil(t, view.Report)
		assert.Equal(t, "d1", view.Report.DayID)
		assert.Equal(t, 2, view.Report.RouteCount)
	})

	t.Run("out of range day", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)
		require.Equal(t, http.StatusAccepted, env.do(t, http.MethodPost, "/api/v1/reports/daily", "").Code)

		rec := env.do(t, http.MethodGet, "/api/v1/reports/daily?day=7", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decode[queries.DailyReportView](t, rec).Available)
	})

	t.Run("malformed hand-off", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)
		require.NoError(t, env.handoff.Put(t.Context(), documents.ReportDataKey, []byte("{not json")))

		rec := env.do(t, http.MethodGet, "/api/v1/reports/daily", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decode[queries.DailyReportView](t, rec).Available)
	})

	t.Run("day is not a number", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)

		rec := env.do(t, http.MethodGet, "/api/v1/reports/daily?day=first", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeValidation, decode[Error](t, rec).Code)
	})
}

func TestInstruction(t *testing.T) {
	t.Run("publish then read", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)

		rec := env.do(t, http.MethodPost, "/api/v1/days/d1/routes/r1/instruction", "")
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
		assert.Equal(t, documents.InstructionDataKey, decode[PublishedResponse](t, rec).Key)

		rec = env.do(t, http.MethodGet, "/api/v1/reports/instruction/r1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		view := decode[queries.InstructionView](t, rec)
		require.True(t, view.Available)
		require.NotNil(t, view.Instruction)
		assert.Equal(t, "r1", view.Instruction.RouteID)
		assert.Equal(t, "d1", view.Instruction.DayID)
		assert.Equal(t, 3, view.Instruction.OrderCount)
	})

	t.Run("published for another route", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)
		require.Equal(t, http.StatusAccepted, env.do(t, http.MethodPost, "/api/v1/days/d1/routes/r1/instruction", "").Code)

		rec := env.do(t, http.MethodGet, "/api/v1/reports/instruction/r2", "")
		require.Equal(t, http.StatusOK, rec.Code)

		view := decode[queries.InstructionView](t, rec)
		assert.False(t, view.Available)
		assert.Equal(t, queries.NoInstructionDataMessage, view.Message)
	})

	t.Run("unknown route", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)

		rec := env.do(t, http.MethodPost, "/api/v1/days/d1/routes/r9/instruction", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, CodeNotFound, decode[Error](t, rec).Code)
		_, err := env.handoff.Get(t.Context(), documents.InstructionDataKey)
		assert.Error(t, err)
	})
}

func TestUnknownPath(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		status int
		code   string
	}{
		{name: "unknown resource", method: http.MethodGet, target: "/api/v1/drivers", status: http.StatusNotFound, code: CodeNotFound},
		{name: "unknown nested resource", method: http.MethodGet, target: "/api/v1/board/columns/d1", status: http.StatusNotFound, code: CodeNotFound},
		{name: "api root", method: http.MethodGet, target: "/api/v1", status: http.StatusNotFound, code: CodeNotFound},
		{name: "undescribed method", method: http.MethodDelete, target: "/api/v1/board", status: http.StatusMethodNotAllowed, code: CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)

			rec := env.do(t, tt.method, tt.target, "")

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.code, decode[Error](t, rec).Code)
		})
	}
}

func TestSwagger(t *testing.T) {
	env := newTestEnv(t, testConfig(), commands.SurfaceIntegrityErrors)

	rec := env.do(t, http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dispatch Board API")
	assert.Contains(t, rec.Body.String(), "/api/v1/board/reassignments")
}

func TestRateLimiter(t *testing.T) {
	t.Run("limits outside test env", func(t *testing.T) {
		env := newTestEnv(t, ServerConfig{Env: "dev", RateLimit: 1, EchoLevel: log.OFF}, commands.SurfaceIntegrityErrors)

		first := env.do(t, http.MethodGet, "/api/v1/board", "")
		second := env.do(t, http.MethodGet, "/api/v1/board", "")

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Equal(t, CodeRateLimited, decode[Error](t, second).Code)
	})

	t.Run("rate below one per second admits the first request", func(t *testing.T) {
		env := newTestEnv(t, ServerConfig{Env: "dev", RateLimit: 0.5, EchoLevel: log.OFF}, commands.SurfaceIntegrityErrors)

		first := env.do(t, http.MethodGet, "/api/v1/board", "")
		second := env.do(t, http.MethodGet, "/api/v1/board", "")

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
	})

	t.Run("disabled in test env", func(t *testing.T) {
		env := newTestEnv(t, ServerConfig{Env: "test", RateLimit: 1, EchoLevel: log.OFF}, commands.SurfaceIntegrityErrors)

		for range 5 {
			assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/v1/board", "").Code)
		}
	})
}

func TestBurstFor(t *testing.T) {
	assert.Equal(t, 1, burstFor(0.5))
	assert.Equal(t, 1, burstFor(1))
	assert.Equal(t, 3, burstFor(2.5))
	assert.Equal(t, 20, burstFor(20))
}

func TestCustomValidator(t *testing.T) {
	cv := NewCustomValidator()
	index := 0

	assert.NoError(t, cv.Validate(ReassignmentRequest{Source: "unassigned", DraggableID: "p1", DestinationIndex: &index}))
	assert.Error(t, cv.Validate(ReassignmentRequest{Source: "unassigned", DraggableID: "p1"}))
	assert.Error(t, cv.Validate(ReassignmentRequest{DraggableID: "p1", DestinationIndex: &index}))
}
