package board

import (
	"errors"
	"fmt"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrBoardIsNotConstructed is returned when a Board was not created through NewBoard.
	ErrBoardIsNotConstructed = errors.New("Board must be created via NewBoard constructor")

	// ErrDuplicateOrderIdentity is returned when an order identity appears in more than one place.
	ErrDuplicateOrderIdentity = errors.New("order identity appears more than once on the board")
)

// Stats are the board-wide counters shown in the header stats bar.
type Stats struct {
	AssignedOrders   int
	UnassignedOrders int
	Routes           int
	Days             int
	PoolWeight       float64
}

// Board is the root aggregate of dispatch state.
//
// Board follows these invariants:
//   - Day identities are unique
//   - Each order identity appears in at most one route or in the pool, never both
//
// Board is immutable. Reassignments produce a new Board through WithRouteOrders and
// WithPool, which keep every untouched day, route and the pool identical by pointer.
type Board struct {
	days          []*DayColumn
	pool          []*order.UnassignedOrder
	isConstructed bool
}

// NewBoard creates a validated board from ordered days and the unassigned pool.
//
// Returns an error wrapping ErrDuplicateOrderIdentity if any order identity appears twice.
//
// Example:
//
//	b, err := board.NewBoard(days, pool)
//	if errors.Is(err, board.ErrDuplicateOrderIdentity) {
//	    // Seed data places the same order twice
//	}
func NewBoard(days []*DayColumn, pool []*order.UnassignedOrder) (*Board, error) {
	b := &Board{
		days:          slices.Clone(days),
		pool:          slices.Clone(pool),
		isConstructed: true,
	}
	if b.days == nil {
		b.days = []*DayColumn{}
	}
	if b.pool == nil {
		b.pool = []*order.UnassignedOrder{}
	}

	if err := b.validateIdentities(); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the Board was properly constructed.
func (b *Board) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBoardIsNotConstructed
	}
	return nil
}

// Days returns the ordered day columns. The slice is a copy; the days are shared.
func (b *Board) Days() []*DayColumn {
	return slices.Clone(b.days)
}

// Pool returns the unassigned orders. The slice is a copy; the orders are shared.
func (b *Board) Pool() []*order.UnassignedOrder {
	return slices.Clone(b.pool)
}

// Day finds a day column by identity and returns it with its position.
func (b *Board) Day(dayID string) (*DayColumn, int, bool) {
	i := slices.IndexFunc(b.days, func(d *DayColumn) bool {
		return d.ID() == dayID
	})
	if i < 0 {
		return nil, -1, false
	}
	return b.days[i], i, true
}

// RouteAt resolves a route slot location to its route.
func (b *Board) RouteAt(loc kernel.Location) (*route.Route, bool) {
	if !loc.IsRouteSlot() {
		return nil, false
	}
	day, _, ok := b.Day(loc.DayID())
	if !ok {
		return nil, false
	}
	r, _, ok := day.Route(loc.RouteID())
	return r, ok
}

// PoolIndexOf returns the position of an order in the pool, or -1.
func (b *Board) PoolIndexOf(orderID string) int {
	return slices.IndexFunc(b.pool, func(u *order.UnassignedOrder) bool {
		return u.ID() == orderID
	})
}

// OrderIDs returns every order identity on the board: routes first in board order, then the pool.
func (b *Board) OrderIDs() []string {
	ids := make([]string, 0, len(b.pool))
	for _, d := range b.days {
		for _, r := range d.routes {
			for _, o := range r.Orders() {
				ids = append(ids, o.ID())
			}
		}
	}
	for _, u := range b.pool {
		ids = append(ids, u.ID())
	}
	return ids
}

// Stats computes the header counters.
func (b *Board) Stats() Stats {
	s := Stats{
		UnassignedOrders: len(b.pool),
		Days:             len(b.days),
	}
	for _, d := range b.days {
		s.Routes += d.RouteCount()
		s.AssignedOrders += d.OrderCount()
	}
	for _, u := range b.pool {
		s.PoolWeight += u.Weight()
	}
	return s
}

// WithRouteOrders returns a board in which the route at loc has the given delivery
// sequence. Only the affected day and route are rebuilt.
func (b *Board) WithRouteOrders(loc kernel.Location, orders []*order.Order) (*Board, error) {
	if !loc.IsRouteSlot() {
		return nil, errs.NewValueIsInvalidErrorWithCause("location", fmt.Errorf("%q is not a route slot", loc))
	}

	day, dayIdx, ok := b.Day(loc.DayID())
	if !ok {
		return nil, errs.NewObjectNotFoundError("dayId", loc.DayID())
	}
	r, routeIdx, ok := day.Route(loc.RouteID())
	if !ok {
		return nil, errs.NewObjectNotFoundError("routeId", loc.RouteID())
	}

	next, err := r.WithOrders(orders)
	if err != nil {
		return nil, err
	}

	days := slices.Clone(b.days)
	days[dayIdx] = day.withRouteAt(routeIdx, next)

	return &Board{
		days:          days,
		pool:          b.pool,
		isConstructed: true,
	}, nil
}

// WithPool returns a board with a new unassigned pool. Every day is reused.
func (b *Board) WithPool(pool []*order.UnassignedOrder) (*Board, error) {
	for i, u := range pool {
		if err := u.Validate(); err != nil {
			return nil, fmt.Errorf("pool[%d]: %w", i, err)
		}
	}

	next := slices.Clone(pool)
	if next == nil {
		next = []*order.UnassignedOrder{}
	}

	return &Board{
		days:          b.days,
		pool:          next,
		isConstructed: true,
	}, nil
}

func (b *Board) validateIdentities() error {
	days := make(map[string]struct{}, len(b.days))
	for i, d := range b.days {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("days[%d]: %w", i, err)
		}
		if _, dup := days[d.ID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("days", fmt.Errorf("day %s appears more than once", d.ID()))
		}
		days[d.ID()] = struct{}{}
	}

	for i, u := range b.pool {
		if err := u.Validate(); err != nil {
			return fmt.Errorf("pool[%d]: %w", i, err)
		}
	}

	seen := make(map[string]struct{})
	for _, id := range b.OrderIDs() {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateOrderIdentity, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
