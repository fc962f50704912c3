package order

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// MaxMeasure bounds weight and capacity. It rejects infinities and values no
// truck could carry.
const MaxMeasure = 1e9

// Details holds the descriptive, print-only fields of an order.
// Every field is optional except CustomerName and OrderNumber, which the
// board and both print documents always show.
type Details struct {
	OrderNumber  string
	CustomerName string
	Destination  string
	ProductName  string
	SealType     string
	SpecialNote  string
	DeliveryTime string
}

// Cargo holds the measured part of an order.
//
// Weight is mandatory. Quantity and Capacity are optional and nil when absent.
type Cargo struct {
	Weight   float64
	Quantity *int
	Capacity *float64
}

// Order represents a delivery unit placed on a route.
//
// Order follows these invariants:
//   - Must have a non-empty identity, stable across relocations
//   - Weight must be positive (greater than 0)
//   - Quantity, when present, must be positive
//   - Capacity, when present, must not be negative
//   - Can only be created through NewOrder constructor
type Order struct {
	// id is the unique identity of the order on the board
	id string

	// details are the print fields shown on cards and reports
	details Details

	// weight is the unit weight in kilograms
	weight float64

	// quantity is nil when absent
	quantity *int

	// capacity is nil when absent
	capacity *float64

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way to create
// a valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identity of the order (must not be empty)
//   - details: Print fields (OrderNumber and CustomerName are required)
//   - cargo: Weight (must be positive), optional quantity and capacity
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	qty := 1
//	o, err := order.NewOrder("ord-001", order.Details{
//	    OrderNumber:  "303686",
//	    CustomerName: "大内須賀川",
//	}, order.Cargo{Weight: 800, Quantity: &qty})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id string, details Details, cargo Cargo) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.setWeight(cargo.Weight),
		o.setQuantity(cargo.Quantity),
		o.setCapacity(cargo.Capacity),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via NewOrder
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identities.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identity.
func (o *Order) ID() string {
	return o.id
}

// Details returns a copy of the order's print fields.
func (o *Order) Details() Details {
	return o.details
}

// OrderNumber returns the business-facing order code.
func (o *Order) OrderNumber() string {
	return o.details.OrderNumber
}

// CustomerName returns the customer the order is delivered to.
func (o *Order) CustomerName() string {
	return o.details.CustomerName
}

// Destination returns the delivery destination, or "" when absent.
func (o *Order) Destination() string {
	return o.details.Destination
}

// ProductName returns the product description, or "" when absent.
func (o *Order) ProductName() string {
	return o.details.ProductName
}

// SealType returns the seal type code, or "" when absent.
func (o *Order) SealType() string {
	return o.details.SealType
}

// SpecialNote returns the handling note, or "" when absent.
func (o *Order) SpecialNote() string {
	return o.details.SpecialNote
}

// DeliveryTime returns the delivery time label, or "" when absent.
func (o *Order) DeliveryTime() string {
	return o.details.DeliveryTime
}

// Weight returns the unit weight in kilograms.
func (o *Order) Weight() float64 {
	return o.weight
}

// Quantity returns the quantity and whether it was present.
func (o *Order) Quantity() (int, bool) {
	if o.quantity == nil {
		return 0, false
	}
	return *o.quantity, true
}

// EffectiveQuantity returns the quantity, or 1 when absent.
func (o *Order) EffectiveQuantity() int {
	if q, ok := o.Quantity(); ok {
		return q
	}
	return 1
}

// Capacity returns the capacity and whether it was present.
func (o *Order) Capacity() (float64, bool) {
	if o.capacity == nil {
		return 0, false
	}
	return *o.capacity, true
}

// EffectiveCapacity returns the capacity, or 0 when absent.
func (o *Order) EffectiveCapacity() float64 {
	c, _ := o.Capacity()
	return c
}

// Cargo returns a copy of the measured fields. The returned pointers are fresh
// allocations, so callers cannot alter the order through them.
func (o *Order) Cargo() Cargo {
	return Cargo{
		Weight:   o.weight,
		Quantity: copyPtr(o.quantity),
		Capacity: copyPtr(o.capacity),
	}
}

// LineWeight returns weight × max(quantity, 1), the order's contribution to a route's load.
func (o *Order) LineWeight() float64 {
	return o.weight * float64(max(o.EffectiveQuantity(), 1))
}

// ToUnassigned converts the order into a pool entry. The requested date is absent.
func (o *Order) ToUnassigned() *UnassignedOrder {
	return &UnassignedOrder{
		order:         o,
		isConstructed: true,
	}
}

// setID validates and sets the order's identity.
// This is a private method used only during construction.
func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

// setDetails validates and sets the print fields.
func (o *Order) setDetails(details Details) error {
	var err error
	if details.OrderNumber == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("orderNumber"))
	}
	if details.CustomerName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("customerName"))
	}
	if err != nil {
		return err
	}
	o.details = details
	return nil
}

// setWeight validates and sets the order's weight.
// Weight must be positive (greater than 0).
func (o *Order) setWeight(weight float64) error {
	if !(weight > 0 && weight <= MaxMeasure) {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not in (0, %v]", weight, MaxMeasure))
	}
	o.weight = weight
	return nil
}

// setQuantity validates and sets the optional quantity.
func (o *Order) setQuantity(quantity *int) error {
	if quantity != nil && *quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", *quantity))
	}
	o.quantity = copyPtr(quantity)
	return nil
}

// setCapacity validates and sets the optional capacity.
func (o *Order) setCapacity(capacity *float64) error {
	if capacity != nil && !(*capacity >= 0 && *capacity <= MaxMeasure) {
		return errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%v is not between 0 and %v", *capacity, MaxMeasure))
	}
	o.capacity = copyPtr(capacity)
	return nil
}

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
