package route

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route was not created through
	// NewRoute or RestoreRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute constructor")

	// ErrDegenerateCapacity is returned when a route's max capacity is zero or negative.
	ErrDegenerateCapacity = errors.New("route max capacity must be greater than 0")

	// ErrDuplicateOrder is returned when the same order identity appears twice in a route.
	ErrDuplicateOrder = errors.New("order appears more than once")
)

// MaxLoadRatio caps LoadRatio so the percentage always fits an int.
const MaxLoadRatio = math.MaxInt32

// Vehicle describes the truck and crew of a route. Both fields are optional.
type Vehicle struct {
	TruckInfo  string
	DriverName string
}

// Route represents a single truck run for one day.
//
// Route follows these invariants:
//   - Must have a non-empty identity and display name
//   - Max capacity must be positive when created via NewRoute
//   - Each order identity appears at most once in the sequence
//
// Route is immutable. WithOrders returns a new Route sharing the untouched fields.
type Route struct {
	id          string
	name        string
	vehicle     Vehicle
	maxCapacity float64
	orders      []*order.Order

	isConstructed bool
}

// NewRoute creates a validated Route. This is the load-time constructor: a zero or
// negative max capacity is rejected with ErrDegenerateCapacity.
//
// Parameters:
//   - id: Route identity (required)
//   - name: Display name, e.g. "便 03 (昇竜)" (required)
//   - vehicle: Optional truck info and driver name
//   - maxCapacity: Maximum load in kilograms (must be positive)
//   - orders: Delivery sequence (may be empty)
//
// Returns:
//   - *Route: The created route if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	r, err := route.NewRoute("route-07-1118", "便 07 (関東便)",
//	    route.Vehicle{TruckInfo: "4t車", DriverName: "鈴木"}, 4000, orders)
//	if err != nil {
//	    // Handle validation error
//	}
func NewRoute(id string, name string, vehicle Vehicle, maxCapacity float64, orders []*order.Order) (*Route, error) {
	r, err := RestoreRoute(id, name, vehicle, maxCapacity, orders)
	if err != nil {
		return nil, err
	}

	if !(maxCapacity > 0) {
		return nil, fmt.Errorf("route %s: %w: got %v", id, ErrDegenerateCapacity, maxCapacity)
	}

	return r, nil
}

// RestoreRoute rebuilds a Route from a snapshot. Unlike NewRoute it accepts a
// degenerate max capacity, so a previously exported document can still be
// rendered; LoadRatio then reports no ratio.
func RestoreRoute(id string, name string, vehicle Vehicle, maxCapacity float64, orders []*order.Order) (*Route, error) {
	r := &Route{
		vehicle:       vehicle,
		maxCapacity:   maxCapacity,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setOrders(orders),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// ID returns the route identity.
func (r *Route) ID() string {
	return r.id
}

// Name returns the display name.
func (r *Route) Name() string {
	return r.name
}

// TruckInfo returns the truck description, or "" when absent.
func (r *Route) TruckInfo() string {
	return r.vehicle.TruckInfo
}

// DriverName returns the driver, or "" when absent.
func (r *Route) DriverName() string {
	return r.vehicle.DriverName
}

// Vehicle returns the truck and crew description.
func (r *Route) Vehicle() Vehicle {
	return r.vehicle
}

// MaxCapacity returns the maximum load in kilograms.
func (r *Route) MaxCapacity() float64 {
	return r.maxCapacity
}

// Orders returns the delivery sequence. The slice is a copy; the orders are shared.
func (r *Route) Orders() []*order.Order {
	return slices.Clone(r.orders)
}

// OrderCount returns the number of orders on the route.
func (r *Route) OrderCount() int {
	return len(r.orders)
}

// IsEmpty reports whether the route has no orders.
func (r *Route) IsEmpty() bool {
	return len(r.orders) == 0
}

// IndexOf returns the position of the order in the delivery sequence, or -1.
func (r *Route) IndexOf(orderID string) int {
	return slices.IndexFunc(r.orders, func(o *order.Order) bool {
		return o.ID() == orderID
	})
}

// Weight returns Σ weight × max(quantity, 1) over the delivery sequence.
func (r *Route) Weight() float64 {
	var total float64
	for _, o := range r.orders {
		total += o.LineWeight()
	}
	return total
}

// LoadRatio returns the load as an integer percentage of max capacity, rounded
// half away from zero and capped at MaxLoadRatio. ok is false when max capacity
// is zero or negative.
//
// Example:
//
//	// orders weighing 1500 and 1800 kg on a 4000 kg truck
//	ratio, ok := r.LoadRatio() // 83, true
func (r *Route) LoadRatio() (int, bool) {
	if !(r.maxCapacity > 0) {
		return 0, false
	}
	ratio := math.Round(r.Weight() / r.maxCapacity * 100)
	if ratio > MaxLoadRatio {
		return MaxLoadRatio, true
	}
	return int(ratio), true
}

// LoadLevel classifies the route's load ratio.
func (r *Route) LoadLevel() LoadLevel {
	ratio, ok := r.LoadRatio()
	if !ok {
		return Undefined
	}
	return LevelForRatio(ratio)
}

// WithOrders returns a copy of the route with a new delivery sequence.
// The receiver is left unchanged.
func (r *Route) WithOrders(orders []*order.Order) (*Route, error) {
	next := &Route{
		id:            r.id,
		name:          r.name,
		vehicle:       r.vehicle,
		maxCapacity:   r.maxCapacity,
		isConstructed: true,
	}

	if err := next.setOrders(orders); err != nil {
		return nil, err
	}

	return next, nil
}

func (r *Route) setID(id string) error {
	if err := kernel.ValidateSlotIdentity("routeId", id); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

// setOrders validates and stores a private copy of the delivery sequence.
func (r *Route) setOrders(orders []*order.Order) error {
	seen := make(map[string]struct{}, len(orders))
	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("orders[%d]: %w", i, err)
		}
		if _, dup := seen[o.ID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("orders", fmt.Errorf("%w: %s", ErrDuplicateOrder, o.ID()))
		}
		seen[o.ID()] = struct{}{}
	}

	r.orders = slices.Clone(orders)
	if r.orders == nil {
		r.orders = []*order.Order{}
	}
	return nil
}
