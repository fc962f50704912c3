// Package boardtest builds small dispatch boards for tests.
package boardtest

import (
	"testing"

	"dispatch/internal/core/domain/model/board"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"

	"github.com/stretchr/testify/require"
)

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

func FloatPtr(v float64) *float64 {
	return &v
}

// Order builds an order with quantity 1 and the given weight and capacity.
func Order(tb testing.TB, id string, weight float64, capacity float64) *order.Order {
	tb.Helper()
	o, err := order.NewOrder(id, order.Details{
		OrderNumber:  "no-" + id,
		CustomerName: "customer-" + id,
		Destination:  "dest-" + id,
		ProductName:  "product-" + id,
		SealType:     "X",
		DeliveryTime: "09:00",
	}, order.Cargo{Weight: weight, Quantity: IntPtr(1), Capacity: FloatPtr(capacity)})
	require.NoError(tb, err)
	return o
}

// Unassigned builds a pool entry with an optional requested date.
func Unassigned(tb testing.TB, id string, weight float64, requestedDate string) *order.UnassignedOrder {
	tb.Helper()
	u, err := order.NewUnassignedOrder(Order(tb, id, weight, 1000), requestedDate)
	require.NoError(tb, err)
	return u
}

// Route builds a route driven by "driver-<id>".
func Route(tb testing.TB, id string, maxCapacity float64, orders ...*order.Order) *route.Route {
	tb.Helper()
	r, err := route.NewRoute(id, "便 "+id, route.Vehicle{TruckInfo: "4t車", DriverName: "driver-" + id}, maxCapacity, orders)
	require.NoError(tb, err)
	return r
}

// Day builds a day column.
func Day(tb testing.TB, id string, dateLabel string, routes ...*route.Route) *board.DayColumn {
	tb.Helper()
	d, err := board.NewDayColumn(id, dateLabel, routes)
	require.NoError(tb, err)
	return d
}

// Board builds a board.
func Board(tb testing.TB, days []*board.DayColumn, pool ...*order.UnassignedOrder) *board.Board {
	tb.Helper()
	b, err := board.NewBoard(days, pool)
	require.NoError(tb, err)
	return b
}

// Standard builds a two-day board:
//
//	d1 (11月18日 (月)): r1 [a, b, c], r2 [d]
//	d2 (11月19日 (火)): r3 []
//	pool: p1 (requested "11月19日希望"), p2
func Standard(tb testing.TB) *board.Board {
	tb.Helper()
	return Board(tb,
		[]*board.DayColumn{
			Day(tb, "d1", "11月18日 (月)",
				Route(tb, "r1", 4000, Order(tb, "a", 800, 2500), Order(tb, "b", 600, 3200), Order(tb, "c", 400, 1800)),
				Route(tb, "r2", 10000, Order(tb, "d", 3500, 6400)),
			),
			Day(tb, "d2", "11月19日 (火)",
				Route(tb, "r3", 4000),
			),
		},
		Unassigned(tb, "p1", 1800, "11月19日希望"),
		Unassigned(tb, "p2", 1200, ""),
	)
}

// RouteOrderIDs lists the order identities of a route in delivery sequence.
func RouteOrderIDs(r *route.Route) []string {
	orders := r.Orders()
	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID()
	}
	return ids
}

// PoolIDs lists the identities in the pool in order.
func PoolIDs(b *board.Board) []string {
	pool := b.Pool()
	ids := make([]string, len(pool))
	for i, u := range pool {
		ids[i] = u.ID()
	}
	return ids
}
