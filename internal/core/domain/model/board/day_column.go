package board

import (
	"errors"
	"fmt"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/errs"
)

// ErrDayColumnIsNotConstructed is returned when a DayColumn was not created through NewDayColumn.
var ErrDayColumnIsNotConstructed = errors.New("DayColumn must be created via NewDayColumn constructor")

// DayColumn is the set of routes planned for one calendar date.
// Route order is meaningful: it drives the row-index numbering of the daily report.
type DayColumn struct {
	id            string
	dateLabel     string
	routes        []*route.Route
	isConstructed bool
}

// NewDayColumn creates a validated day column.
//
// Parameters:
//   - id: Day identity, e.g. "2024-11-18" (required)
//   - dateLabel: Header text, e.g. "11月18日 (月)" (may be empty)
//   - routes: Ordered routes; route identities must be unique within the day
func NewDayColumn(id string, dateLabel string, routes []*route.Route) (*DayColumn, error) {
	if err := kernel.ValidateSlotIdentity("dayId", id); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(routes))
	for i, r := range routes {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("day %s routes[%d]: %w", id, i, err)
		}
		if _, dup := seen[r.ID()]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("routes",
				fmt.Errorf("route %s appears more than once in day %s", r.ID(), id))
		}
		seen[r.ID()] = struct{}{}
	}

	return &DayColumn{
		id:            id,
		dateLabel:     dateLabel,
		routes:        slices.Clone(routes),
		isConstructed: true,
	}, nil
}

// Validate ensures the DayColumn was properly constructed.
func (d *DayColumn) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDayColumnIsNotConstructed
	}
	return nil
}

// ID returns the day identity.
func (d *DayColumn) ID() string {
	return d.id
}

// DateLabel returns the header text as written.
func (d *DayColumn) DateLabel() string {
	return d.dateLabel
}

// ParsedDateLabel returns the header parsed for the print formats.
func (d *DayColumn) ParsedDateLabel() kernel.DateLabel {
	return kernel.ParseDateLabel(d.dateLabel)
}

// Routes returns the ordered routes. The slice is a copy; the routes are shared.
func (d *DayColumn) Routes() []*route.Route {
	return slices.Clone(d.routes)
}

// RouteCount returns the number of routes planned for the day.
func (d *DayColumn) RouteCount() int {
	return len(d.routes)
}

// OrderCount returns the number of orders across all routes of the day.
func (d *DayColumn) OrderCount() int {
	n := 0
	for _, r := range d.routes {
		n += r.OrderCount()
	}
	return n
}

// Route finds a route by identity and returns it with its position.
func (d *DayColumn) Route(routeID string) (*route.Route, int, bool) {
	i := slices.IndexFunc(d.routes, func(r *route.Route) bool {
		return r.ID() == routeID
	})
	if i < 0 {
		return nil, -1, false
	}
	return d.routes[i], i, true
}

// withRouteAt returns a copy of the day with the route at index i replaced.
// Every other route pointer is reused.
func (d *DayColumn) withRouteAt(i int, r *route.Route) *DayColumn {
	routes := slices.Clone(d.routes)
	routes[i] = r
	return &DayColumn{
		id:            d.id,
		dateLabel:     d.dateLabel,
		routes:        routes,
		isConstructed: true,
	}
}
