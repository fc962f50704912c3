package kernel

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// PoolDescriptor is the wire form of the unassigned pool location.
	PoolDescriptor = "unassigned"

	// SlotSeparator joins day and route identities in the wire form of a route slot.
	SlotSeparator = "::"
)

// ErrLocationIsNotConstructed is returned when a zero Location is used.
// Locations must be created using Pool, NewRouteSlot or ParseLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via Pool, NewRouteSlot or ParseLocation")

// LocationKind tells which variant a Location holds.
type LocationKind int

const (
	// UnknownLocation is the kind of a zero Location.
	UnknownLocation LocationKind = iota
	// PoolLocation refers to the unassigned order pool.
	PoolLocation
	// RouteSlotLocation refers to the order sequence of one route on one day.
	RouteSlotLocation
)

// Location identifies an order collection on the board. It is a closed sum type:
// either the unassigned pool, or a route slot addressed by the pair of its owning
// day and its own identity. The wire form ("unassigned" or "<dayId>::<routeId>")
// is only produced and consumed at the transport boundary via ParseLocation and String.
//
// Location is comparable, so two locations can be checked with ==.
//
// Example:
//
//	src := kernel.Pool()
//	dst, err := kernel.NewRouteSlot("2024-11-18", "route-03-1118")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(dst) // Output: 2024-11-18::route-03-1118
type Location struct { //nolint:recvcheck //using for validation
	kind    LocationKind
	dayID   string
	routeID string
	guard   guard.ConstructorGuard
}

// Pool returns the location of the unassigned order pool.
func Pool() Location {
	return Location{
		kind:  PoolLocation,
		guard: guard.NewConstructorGuard(),
	}
}

// NewRouteSlot creates the location of a route's order sequence.
//
// Parameters:
//   - dayID: identity of the day column owning the route (required)
//   - routeID: identity of the route (required)
//
// Neither identity may contain SlotSeparator, otherwise the wire form could not be
// parsed back into the same location.
//
// Returns:
//   - Location: a valid route slot
//   - error: validation error if an identity is empty or contains the separator
func NewRouteSlot(dayID string, routeID string) (Location, error) {
	loc := Location{
		kind:  RouteSlotLocation,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setDayID(dayID), loc.setRouteID(routeID)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// ParseLocation converts the wire form of a location descriptor into a Location.
//
// Accepted forms:
//   - "unassigned" for the pool
//   - "<dayId>::<routeId>" for a route slot
//
// Example:
//
//	loc, err := kernel.ParseLocation("2024-11-19::route-05-1119")
//	// loc.DayID() == "2024-11-19", loc.RouteID() == "route-05-1119"
func ParseLocation(descriptor string) (Location, error) {
	if descriptor == "" {
		return Location{}, errs.NewValueIsRequiredError("location")
	}

	if descriptor == PoolDescriptor {
		return Pool(), nil
	}

	dayID, routeID, found := strings.Cut(descriptor, SlotSeparator)
	if !found {
		return Location{}, errs.NewValueIsInvalidErrorWithCause("location",
			fmt.Errorf("%q is neither %q nor <dayId>%s<routeId>", descriptor, PoolDescriptor, SlotSeparator))
	}

	return NewRouteSlot(dayID, routeID)
}

// Validate checks that the Location was created through a constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Kind returns the variant held by the location.
func (l Location) Kind() LocationKind {
	return l.kind
}

// IsPool reports whether the location is the unassigned pool.
func (l Location) IsPool() bool {
	return l.kind == PoolLocation
}

// IsRouteSlot reports whether the location is a route slot.
func (l Location) IsRouteSlot() bool {
	return l.kind == RouteSlotLocation
}

// DayID returns the owning day of a route slot, or "" for the pool.
func (l Location) DayID() string {
	return l.dayID
}

// RouteID returns the route identity of a route slot, or "" for the pool.
func (l Location) RouteID() string {
	return l.routeID
}

// IsEqual compares two locations. Both must be properly constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// String returns the wire form of the location. A zero Location renders as "".
func (l Location) String() string {
	switch l.kind {
	case PoolLocation:
		return PoolDescriptor
	case RouteSlotLocation:
		return l.dayID + SlotSeparator + l.routeID
	case UnknownLocation:
		return ""
	}
	return ""
}

// setDayID sets the day identity with validation.
// Pointer receivers are used only by the private setters during construction.
func (l *Location) setDayID(dayID string) error {
	if err := ValidateSlotIdentity("dayId", dayID); err != nil {
		return err
	}

	l.dayID = dayID
	return nil
}

// setRouteID sets the route identity with validation.
func (l *Location) setRouteID(routeID string) error {
	if err := ValidateSlotIdentity("routeId", routeID); err != nil {
		return err
	}

	l.routeID = routeID
	return nil
}

// ValidateSlotIdentity checks a day or route identity that becomes part of a
// route slot descriptor: it must be non-empty and free of SlotSeparator.
func ValidateSlotIdentity(paramName string, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if strings.Contains(value, SlotSeparator) {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%q must not contain %q", value, SlotSeparator))
	}
	return nil
}
