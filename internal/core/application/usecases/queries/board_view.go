package queries

import (
	"dispatch/internal/core/application/documents"
	"dispatch/internal/core/domain/model/board"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
)

// BoardView is the read model of the whole dispatch board.
type BoardView struct {
	Days             []DayView                           `json:"days"`
	UnassignedOrders []documents.UnassignedOrderDocument `json:"unassignedOrders"`
	DroppableID      string                              `json:"droppableId"`
	PoolWeight       float64                             `json:"poolWeight"`
	Stats            StatsView                           `json:"stats"`
}

// DayView is one day column with its counters.
type DayView struct {
	ID         string      `json:"id"`
	DateLabel  string      `json:"dateLabel"`
	RouteCount int         `json:"routeCount"`
	OrderCount int         `json:"orderCount"`
	Routes     []RouteView `json:"routes"`
}

// RouteView is a route with its derived load metrics. LoadRatio is nil when the
// route's max capacity is degenerate.
type RouteView struct {
	documents.RouteDocument

	DroppableID string  `json:"droppableId"`
	OrderCount  int     `json:"orderCount"`
	Weight      float64 `json:"weight"`
	LoadRatio   *int    `json:"loadRatio"`
	LoadLevel   string  `json:"loadLevel"`
}

// StatsView is the header statistics bar.
type StatsView struct {
	AssignedOrders   int `json:"assignedOrders"`
	UnassignedOrders int `json:"unassignedOrders"`
	Routes           int `json:"routes"`
	Days             int `json:"days"`
}

// NewBoardView builds the read model of b.
func NewBoardView(b *board.Board) BoardView {
	days := b.Days()
	dayViews := make([]DayView, len(days))
	for i, d := range days {
		dayViews[i] = newDayView(d)
	}

	pool := b.Pool()
	poolDocs := make([]documents.UnassignedOrderDocument, len(pool))
	for i, u := range pool {
		poolDocs[i] = documents.FromUnassigned(u)
	}

	stats := b.Stats()
	return BoardView{
		Days:             dayViews,
		UnassignedOrders: poolDocs,
		DroppableID:      kernel.Pool().String(),
		PoolWeight:       stats.PoolWeight,
		Stats: StatsView{
			AssignedOrders:   stats.AssignedOrders,
			UnassignedOrders: stats.UnassignedOrders,
			Routes:           stats.Routes,
			Days:             stats.Days,
		},
	}
}

func newDayView(d *board.DayColumn) DayView {
	routes := d.Routes()
	views := make([]RouteView, len(routes))
	for i, r := range routes {
		views[i] = NewRouteView(d.ID(), r)
	}
	return DayView{
		ID:         d.ID(),
		DateLabel:  d.DateLabel(),
		RouteCount: d.RouteCount(),
		OrderCount: d.OrderCount(),
		Routes:     views,
	}
}

// NewRouteView builds the read model of a route on the given day.
func NewRouteView(dayID string, r *route.Route) RouteView {
	view := RouteView{
		RouteDocument: documents.FromRoute(r),
		OrderCount:    r.OrderCount(),
		Weight:        r.Weight(),
		LoadLevel:     r.LoadLevel().String(),
	}
	if loc, err := kernel.NewRouteSlot(dayID, r.ID()); err == nil {
		view.DroppableID = loc.String()
	}
	if ratio, ok := r.LoadRatio(); ok {
		view.LoadRatio = &ratio
	}
	return view
}
