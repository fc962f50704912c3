package services

import (
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
)

// DefaultInstructionFormRows is the number of order lines printed on an instruction sheet.
const DefaultInstructionFormRows = 8

// InstructionRow is one numbered line of a route instruction sheet.
type InstructionRow struct {
	No       int
	Order    *order.Order
	Quantity int
}

// Instruction is the print-ready projection of a single route.
type Instruction struct {
	RouteID     string
	RouteName   string
	TruckInfo   string
	DriverName  string
	Rows        []InstructionRow
	OrderCount  int
	TotalWeight float64
	MaxCapacity float64
	LoadRatio   int

	// HasLoadRatio is false when the route's max capacity is degenerate.
	HasLoadRatio bool
}

// PaddingRows returns how many blank lines a form of minRows lines needs after the orders.
func (i Instruction) PaddingRows(minRows int) int {
	return max(minRows-i.OrderCount, 0)
}

// InstructionProjector numbers a route's orders in delivery sequence. A single
// route is already one group, so there is no grouping or subtotal.
type InstructionProjector struct{}

// NewInstructionProjector creates a new InstructionProjector instance.
func NewInstructionProjector() InstructionProjector {
	return InstructionProjector{}
}

// Project builds the instruction sheet for a route.
func (p InstructionProjector) Project(r *route.Route) (Instruction, error) {
	if err := r.Validate(); err != nil {
		return Instruction{}, err
	}

	orders := r.Orders()
	rows := make([]InstructionRow, len(orders))
	for i, o := range orders {
		rows[i] = InstructionRow{
			No:       i + 1,
			Order:    o,
			Quantity: o.EffectiveQuantity(),
		}
	}

	ratio, ok := r.LoadRatio()
	return Instruction{
		RouteID:      r.ID(),
		RouteName:    r.Name(),
		TruckInfo:    r.TruckInfo(),
		DriverName:   r.DriverName(),
		Rows:         rows,
		OrderCount:   len(orders),
		TotalWeight:  r.Weight(),
		MaxCapacity:  r.MaxCapacity(),
		LoadRatio:    ratio,
		HasLoadRatio: ok,
	}, nil
}
