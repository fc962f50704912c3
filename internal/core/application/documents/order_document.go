package documents

import (
	"dispatch/internal/core/domain/model/order"
)

// OrderDocument is the wire form of an order.
type OrderDocument struct {
	ID           string  `json:"id"`
	OrderNumber  string  `json:"orderNumber"`
	CustomerName string  `json:"customerName"`
	Destination  string  `json:"destination,omitempty"`
	ProductName  string  `json:"productName,omitempty"`
	Weight       float64 `json:"weight"`
	Quantity     *int    `json:"quantity,omitempty"`
	SealType     string  `json:"sealType,omitempty"`
	Capacity     *float64 `json:"capacity,omitempty"`
	DeliveryTime string  `json:"deliveryTime,omitempty"`
	SpecialNote  string  `json:"specialNote,omitempty"`
}

// UnassignedOrderDocument is the wire form of a pool entry.
type UnassignedOrderDocument struct {
	OrderDocument
	RequestedDate string `json:"requestedDate,omitempty"`
}

// FromOrder maps an order to its wire form.
func FromOrder(o *order.Order) OrderDocument {
	d := o.Details()
	c := o.Cargo()
	return OrderDocument{
		ID:           o.ID(),
		OrderNumber:  d.OrderNumber,
		CustomerName: d.CustomerName,
		Destination:  d.Destination,
		ProductName:  d.ProductName,
		Weight:       c.Weight,
		Quantity:     c.Quantity,
		SealType:     d.SealType,
		Capacity:     c.Capacity,
		DeliveryTime: d.DeliveryTime,
		SpecialNote:  d.SpecialNote,
	}
}

// FromUnassigned maps a pool entry to its wire form.
func FromUnassigned(u *order.UnassignedOrder) UnassignedOrderDocument {
	date, _ := u.RequestedDate()
	return UnassignedOrderDocument{
		OrderDocument: FromOrder(u.ToOrder()),
		RequestedDate: date,
	}
}

// ToDomain validates the document and builds an order.
func (d OrderDocument) ToDomain() (*order.Order, error) {
	return order.NewOrder(d.ID, order.Details{
		OrderNumber:  d.OrderNumber,
		CustomerName: d.CustomerName,
		Destination:  d.Destination,
		ProductName:  d.ProductName,
		SealType:     d.SealType,
		SpecialNote:  d.SpecialNote,
		DeliveryTime: d.DeliveryTime,
	}, order.Cargo{
		Weight:   d.Weight,
		Quantity: d.Quantity,
		Capacity: d.Capacity,
	})
}

// ToDomain validates the document and builds a pool entry.
func (d UnassignedOrderDocument) ToDomain() (*order.UnassignedOrder, error) {
	o, err := d.OrderDocument.ToDomain()
	if err != nil {
		return nil, err
	}
	return order.NewUnassignedOrder(o, d.RequestedDate)
}
