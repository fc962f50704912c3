package queries_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"dispatch/internal/core/application/documents"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/board/boardtest"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishedReport(t *testing.T) []byte {
	t.Helper()
	return mustJSON(t, documents.NewReportDocument(boardtest.Standard(t).Days(), generatedAt))
}

func TestGetDailyReportQueryHandler_Handle_FirstDay(t *testing.T) {
	ctx := t.Context()
	handoff := new(MockHandoffReader)
	handoff.On("Get", ctx, documents.ReportDataKey).Return(publishedReport(t), nil).Once()

	view, err := queries.NewGetDailyReportQueryHandler(handoff, discardLogger()).
		Handle(ctx, queries.NewGetDailyReportQuery(0))

	require.NoError(t, err)
	assert.True(t, view.Available)
	assert.Equal(t, "2024-11-18T07:00:00.000Z", view.GeneratedAt)
	assert.Equal(t, []queries.ReportDayOption{
		{Index: 0, ID: "d1", DateLabel: "11月18日 (月)"},
		{Index: 1, ID: "d2", DateLabel: "11月19日 (火)"},
	}, view.Days)

	require.NotNil(t, view.Report)
	assert.Equal(t, "25年11月18日 月曜日", view.Report.FormattedDate)
	assert.Equal(t, 2, view.Report.RouteCount)

	rows := view.Report.Rows
	require.Len(t, rows, 6)
	kinds := make([]string, len(rows))
	for i, r := range rows {
		kinds[i] = r.Kind
	}
	assert.Equal(t, []string{"order", "order", "order", "subtotal", "order", "subtotal"}, kinds)

	assert.Equal(t, &queries.ReportGroupView{Index: 1, DriverName: "driver-r1", RowSpan: 3}, rows[0].Group)
	assert.Nil(t, rows[1].Group)
	assert.Equal(t, "r1", rows[1].RouteID)
	assert.Equal(t, queries.ReportRowView{Kind: "subtotal", RouteID: "r1", Quantity: 3, Capacity: 7500}, rows[3])
	assert.Equal(t, 2, rows[4].Group.Index)
	handoff.AssertExpectations(t)
}

func TestGetDailyReportQueryHandler_Handle_DayWithoutOrders(t *testing.T) {
	ctx := t.Context()
	handoff := new(MockHandoffReader)
	handoff.On("Get", ctx, documents.ReportDataKey).Return(publishedReport(t), nil).Once()

	view, err := queries.NewGetDailyReportQueryHandler(handoff, discardLogger()).
		Handle(ctx, queries.NewGetDailyReportQuery(1))

	require.NoError(t, err)
	assert.True(t, view.Available)
	assert.Equal(t, 1, view.SelectedDay)
	assert.Zero(t, view.Report.RouteCount)
	assert.Empty(t, view.Report.Rows)
}

func TestGetDailyReportQueryHandler_Handle_NoData(t *testing.T) {
	tests := []struct {
		name     string
		payload  []byte
		getErr   error
		dayIndex int
		wantDays int
		wantWarn bool
	}{
		{name: "nothing published", getErr: ports.ErrHandoffSlotEmpty},
		{name: "not json", payload: []byte(`{days:`), wantWarn: true},
		{name: "days missing", payload: []byte(`{"generatedAt":"2024-11-18T07:00:00.000Z"}`), wantWarn: true},
		{name: "index past the end", dayIndex: 2, wantDays: 2},
		{name: "negative index", dayIndex: -1, wantDays: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			payload := tt.payload
			if payload == nil && tt.getErr == nil {
				payload = publishedReport(t)
			}
			handoff := new(MockHandoffReader)
			handoff.On("Get", ctx, documents.ReportDataKey).Return(payload, tt.getErr).Once()

			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))

			view, err := queries.NewGetDailyReportQueryHandler(handoff, logger).
				Handle(ctx, queries.NewGetDailyReportQuery(tt.dayIndex))

			require.NoError(t, err)
			assert.False(t, view.Available)
			assert.Nil(t, view.Report)
			assert.Equal(t, queries.NoReportDataMessage, view.Message)
			assert.Len(t, view.Days, tt.wantDays)
			assert.Equal(t, tt.wantWarn, bytes.Contains(logs.Bytes(), []byte("level=WARN")))
		})
	}
}

func TestGetDailyReportQueryHandler_Handle_ReadError(t *testing.T) {
	ctx := t.Context()
	readErr := errors.New("connection refused")
	handoff := new(MockHandoffReader)
	handoff.On("Get", ctx, documents.ReportDataKey).Return(nil, readErr).Once()

	_, err := queries.NewGetDailyReportQueryHandler(handoff, discardLogger()).
		Handle(ctx, queries.NewGetDailyReportQuery(0))

	require.ErrorIs(t, err, readErr)
}
