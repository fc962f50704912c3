package services

import (
	"dispatch/internal/core/domain/model/board"
	"dispatch/internal/core/domain/model/order"
)

// TableRow is one row of the daily delivery report: either an OrderRow or a SubtotalRow.
type TableRow interface {
	isTableRow()
}

// RouteGroup marks the first row of a route's group. The presentation layer merges
// the index and driver cells over RowSpan rows.
type RouteGroup struct {
	Index      int
	RouteID    string
	DriverName string
	RowSpan    int
}

// OrderRow prints one order. Quantity and Capacity carry their report defaults
// (1 and 0) when the order has none.
type OrderRow struct {
	Order    *order.Order
	Quantity int
	Capacity float64

	// Group is set on the first row of each route only.
	Group *RouteGroup
}

// SubtotalRow closes a route's group.
type SubtotalRow struct {
	RouteID       string
	TotalQuantity int
	TotalCapacity float64
}

func (OrderRow) isTableRow()    {}
func (SubtotalRow) isTableRow() {}

// DailyReport is the print-ready projection of one day.
type DailyReport struct {
	DayID     string
	DateLabel string
	Rows      []TableRow

	// RouteCount counts the non-empty routes only.
	RouteCount int
}

// DailyReportProjector flattens a day column into the rows of the daily delivery report.
//
// Business rules:
//   - Routes are visited in day order; a route without orders contributes no rows
//     and does not consume a route index
//   - Each non-empty route gets the next 1-based index, carried by its first OrderRow
//     together with the driver name and the route's order count as row span
//   - A SubtotalRow follows the last order of each route with the sums of quantity
//     (absent counts as 1) and capacity (absent counts as 0)
//
// No day-level grand total is computed.
type DailyReportProjector struct{}

// NewDailyReportProjector creates a new DailyReportProjector instance.
func NewDailyReportProjector() DailyReportProjector {
	return DailyReportProjector{}
}

// Project builds the report rows for a day.
func (p DailyReportProjector) Project(day *board.DayColumn) (DailyReport, error) {
	if err := day.Validate(); err != nil {
		return DailyReport{}, err
	}

	report := DailyReport{
		DayID:     day.ID(),
		DateLabel: day.DateLabel(),
		Rows:      []TableRow{},
	}

	for _, r := range day.Routes() {
		if r.IsEmpty() {
			continue
		}
		report.RouteCount++

		subtotal := SubtotalRow{RouteID: r.ID()}
		for i, o := range r.Orders() {
			row := OrderRow{
				Order:    o,
				Quantity: o.EffectiveQuantity(),
				Capacity: o.EffectiveCapacity(),
			}
			if i == 0 {
				row.Group = &RouteGroup{
					Index:      report.RouteCount,
					RouteID:    r.ID(),
					DriverName: r.DriverName(),
					RowSpan:    r.OrderCount(),
				}
			}
			subtotal.TotalQuantity += row.Quantity
			subtotal.TotalCapacity += row.Capacity
			report.Rows = append(report.Rows, row)
		}
		report.Rows = append(report.Rows, subtotal)
	}

	return report, nil
}
