package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/documents"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// DailyReportView is the read model of the daily report print view. When
// Available is false only Message, Hint and possibly Days are set.
type DailyReportView struct {
	Available   bool              `json:"available"`
	Message     string            `json:"message,omitempty"`
	Hint        string            `json:"hint,omitempty"`
	GeneratedAt string            `json:"generatedAt,omitempty"`
	Days        []ReportDayOption `json:"days,omitempty"`
	SelectedDay int               `json:"selectedDay"`
	Report      *DailyReportSheet `json:"report,omitempty"`
}

// ReportDayOption is an entry of the day selector.
type ReportDayOption struct {
	Index     int    `json:"index"`
	ID        string `json:"id"`
	DateLabel string `json:"dateLabel"`
}

// DailyReportSheet is the table of one day.
type DailyReportSheet struct {
	DayID         string          `json:"dayId"`
	DateLabel     string          `json:"dateLabel"`
	FormattedDate string          `json:"formattedDate"`
	RouteCount    int             `json:"routeCount"`
	Rows          []ReportRowView `json:"rows"`
}

// Row kinds of ReportRowView.
const (
	OrderRowKind    = "order"
	SubtotalRowKind = "subtotal"
)

// ReportRowView is either an order row or a subtotal row, told apart by Kind.
// On subtotal rows Quantity and Capacity are the route's totals.
type ReportRowView struct {
	Kind         string           `json:"kind"`
	RouteID      string           `json:"routeId"`
	Group        *ReportGroupView `json:"group,omitempty"`
	OrderID      string           `json:"orderId,omitempty"`
	DeliveryTime string           `json:"deliveryTime,omitempty"`
	OrderNumber  string           `json:"orderNumber,omitempty"`
	CustomerName string           `json:"customerName,omitempty"`
	Destination  string           `json:"destination,omitempty"`
	ProductName  string           `json:"productName,omitempty"`
	SealType     string           `json:"sealType,omitempty"`
	Quantity     int              `json:"quantity"`
	Capacity     float64          `json:"capacity"`
}

// ReportGroupView spans the route index and driver cells over RowSpan rows.
type ReportGroupView struct {
	Index      int    `json:"index"`
	DriverName string `json:"driverName"`
	RowSpan    int    `json:"rowSpan"`
}

// GetDailyReportQueryHandler reads documents.ReportDataKey. A missing slot, a
// malformed payload or a day index out of range all produce the "no data" view;
// malformed payloads are logged at warn level.
type GetDailyReportQueryHandler struct {
	handoff   HandoffReader
	projector services.DailyReportProjector
	logger    *slog.Logger
}

func NewGetDailyReportQueryHandler(handoff HandoffReader, logger *slog.Logger) GetDailyReportQueryHandler {
	return GetDailyReportQueryHandler{
		handoff:   handoff,
		projector: services.NewDailyReportProjector(),
		logger:    logger.With("component", "daily_report_query"),
	}
}

func (h GetDailyReportQueryHandler) Handle(ctx context.Context, query GetDailyReportQuery) (DailyReportView, error) {
	if err := query.Validate(); err != nil {
		return DailyReportView{}, err
	}

	raw, err := h.handoff.Get(ctx, documents.ReportDataKey)
	if errors.Is(err, ports.ErrHandoffSlotEmpty) {
		return noReportData(nil, query.DayIndex()), nil
	}
	if err != nil {
		return DailyReportView{}, fmt.Errorf("read report hand-off: %w", err)
	}

	report, err := documents.DecodeReport(raw)
	if err != nil {
		h.logger.WarnContext(ctx, "Ignoring unreadable report hand-off", "error", err)
		return noReportData(nil, query.DayIndex()), nil
	}

	options := make([]ReportDayOption, len(report.Days))
	for i, d := range report.Days {
		options[i] = ReportDayOption{Index: i, ID: d.ID(), DateLabel: d.DateLabel()}
	}

	idx := query.DayIndex()
	if idx < 0 || idx >= len(report.Days) {
		return noReportData(options, idx), nil
	}

	day := report.Days[idx]
	projected, err := h.projector.Project(day)
	if err != nil {
		h.logger.WarnContext(ctx, "Ignoring unprojectable report day", "day_id", day.ID(), "error", err)
		return noReportData(options, idx), nil
	}

	return DailyReportView{
		Available:   true,
		GeneratedAt: documents.FormatTimestamp(report.GeneratedAt),
		Days:        options,
		SelectedDay: idx,
		Report: &DailyReportSheet{
			DayID:         day.ID(),
			DateLabel:     day.DateLabel(),
			FormattedDate: day.ParsedDateLabel().DailyReportFormat(),
			RouteCount:    projected.RouteCount,
			Rows:          reportRows(projected.Rows),
		},
	}, nil
}

func noReportData(options []ReportDayOption, idx int) DailyReportView {
	return DailyReportView{
		Message:     NoReportDataMessage,
		Hint:        NoReportDataHint,
		Days:        options,
		SelectedDay: idx,
	}
}

func reportRows(rows []services.TableRow) []ReportRowView {
	views := make([]ReportRowView, 0, len(rows))
	var routeID string
	for _, row := range rows {
		switch r := row.(type) {
		case services.OrderRow:
			view := ReportRowView{
				Kind:         OrderRowKind,
				OrderID:      r.Order.ID(),
				DeliveryTime: r.Order.DeliveryTime(),
				OrderNumber:  r.Order.OrderNumber(),
				CustomerName: r.Order.CustomerName(),
				Destination:  r.Order.Destination(),
				ProductName:  r.Order.ProductName(),
				SealType:     r.Order.SealType(),
				Quantity:     r.Quantity,
				Capacity:     r.Capacity,
			}
			if r.Group != nil {
				routeID = r.Group.RouteID
				view.Group = &ReportGroupView{
					Index:      r.Group.Index,
					DriverName: r.Group.DriverName,
					RowSpan:    r.Group.RowSpan,
				}
			}
			view.RouteID = routeID
			views = append(views, view)
		case services.SubtotalRow:
			views = append(views, ReportRowView{
				Kind:     SubtotalRowKind,
				RouteID:  r.RouteID,
				Quantity: r.TotalQuantity,
				Capacity: r.TotalCapacity,
			})
		}
	}
	return views
}
