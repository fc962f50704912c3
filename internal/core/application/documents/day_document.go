package documents

import (
	"fmt"

	"dispatch/internal/core/domain/model/board"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
)

// RouteDocument is the wire form of a route.
type RouteDocument struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	TruckInfo   string          `json:"truckInfo,omitempty"`
	DriverName  string          `json:"driverName,omitempty"`
	MaxCapacity float64         `json:"maxCapacity"`
	Orders      []OrderDocument `json:"orders"`
}

// DayDocument is the wire form of a day column.
type DayDocument struct {
	ID        string          `json:"id"`
	DateLabel string          `json:"dateLabel"`
	Routes    []RouteDocument `json:"routes"`
}

// FromRoute maps a route to its wire form.
func FromRoute(r *route.Route) RouteDocument {
	orders := r.Orders()
	docs := make([]OrderDocument, len(orders))
	for i, o := range orders {
		docs[i] = FromOrder(o)
	}
	return RouteDocument{
		ID:          r.ID(),
		Name:        r.Name(),
		TruckInfo:   r.TruckInfo(),
		DriverName:  r.DriverName(),
		MaxCapacity: r.MaxCapacity(),
		Orders:      docs,
	}
}

// FromDay maps a day column to its wire form.
func FromDay(d *board.DayColumn) DayDocument {
	routes := d.Routes()
	docs := make([]RouteDocument, len(routes))
	for i, r := range routes {
		docs[i] = FromRoute(r)
	}
	return DayDocument{
		ID:        d.ID(),
		DateLabel: d.DateLabel(),
		Routes:    docs,
	}
}

// ToDomain builds a route with load-time validation: a zero or negative
// max capacity is rejected.
func (d RouteDocument) ToDomain() (*route.Route, error) {
	orders, err := d.orders()
	if err != nil {
		return nil, err
	}
	return route.NewRoute(d.ID, d.Name, d.vehicle(), d.MaxCapacity, orders)
}

// Restore builds a route from a previously exported snapshot, tolerating a
// degenerate max capacity.
func (d RouteDocument) Restore() (*route.Route, error) {
	orders, err := d.orders()
	if err != nil {
		return nil, err
	}
	return route.RestoreRoute(d.ID, d.Name, d.vehicle(), d.MaxCapacity, orders)
}

func (d RouteDocument) vehicle() route.Vehicle {
	return route.Vehicle{TruckInfo: d.TruckInfo, DriverName: d.DriverName}
}

func (d RouteDocument) orders() ([]*order.Order, error) {
	orders := make([]*order.Order, len(d.Orders))
	for i, od := range d.Orders {
		o, err := od.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("route %s orders[%d]: %w", d.ID, i, err)
		}
		orders[i] = o
	}
	return orders, nil
}

// ToDomain builds a day column with load-time validation of its routes.
func (d DayDocument) ToDomain() (*board.DayColumn, error) {
	return d.build(RouteDocument.ToDomain)
}

// Restore builds a day column from a previously exported snapshot.
func (d DayDocument) Restore() (*board.DayColumn, error) {
	return d.build(RouteDocument.Restore)
}

func (d DayDocument) build(toRoute func(RouteDocument) (*route.Route, error)) (*board.DayColumn, error) {
	routes := make([]*route.Route, len(d.Routes))
	for i, rd := range d.Routes {
		r, err := toRoute(rd)
		if err != nil {
			return nil, fmt.Errorf("day %s routes[%d]: %w", d.ID, i, err)
		}
		routes[i] = r
	}
	return board.NewDayColumn(d.ID, d.DateLabel, routes)
}
