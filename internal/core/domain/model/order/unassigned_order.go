package order

import (
	"errors"
)

// ErrUnassignedOrderIsNotConstructed is returned when an UnassignedOrder was not
// created via NewUnassignedOrder or Order.ToUnassigned.
var ErrUnassignedOrderIsNotConstructed = errors.New(
	"UnassignedOrder must be created via NewUnassignedOrder or Order.ToUnassigned")

// UnassignedOrder is an order waiting in the pool. It carries every Order field
// plus an optional requested-date label such as "11月19日希望".
type UnassignedOrder struct {
	order         *Order
	requestedDate string
	isConstructed bool
}

// NewUnassignedOrder wraps a valid order with an optional requested date ("" when absent).
func NewUnassignedOrder(o *Order, requestedDate string) (*UnassignedOrder, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &UnassignedOrder{
		order:         o,
		requestedDate: requestedDate,
		isConstructed: true,
	}, nil
}

// Validate ensures the UnassignedOrder was properly constructed.
func (u *UnassignedOrder) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUnassignedOrderIsNotConstructed
	}
	return u.order.Validate()
}

// ID returns the order's identity.
func (u *UnassignedOrder) ID() string {
	return u.order.ID()
}

// Weight returns the unit weight in kilograms.
func (u *UnassignedOrder) Weight() float64 {
	return u.order.Weight()
}

// RequestedDate returns the requested date and whether it is present.
func (u *UnassignedOrder) RequestedDate() (string, bool) {
	return u.requestedDate, u.requestedDate != ""
}

// ToOrder converts the pool entry into an Order for placement on a route.
// The requested date is dropped; every other field is carried unchanged.
func (u *UnassignedOrder) ToOrder() *Order {
	return u.order
}
