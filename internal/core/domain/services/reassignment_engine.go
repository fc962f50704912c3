package services

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/board"
	"dispatch/internal/core/domain/model/kernel"
)

// ErrIntegrity is the sentinel wrapped by every IntegrityError.
var ErrIntegrity = errors.New("board integrity violation")

// IntegrityError reports a reassignment that references a collection or an item
// the board does not have. It points at an upstream bug rather than a user error;
// the board is never modified when it is returned.
type IntegrityError struct {
	ItemID   string
	Location kernel.Location
	Reason   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: item %q at %q: %s", ErrIntegrity, e.ItemID, e.Location.String(), e.Reason)
}

func (e *IntegrityError) Unwrap() error {
	return ErrIntegrity
}

// DragEvent is the outcome of one drag-and-drop gesture.
//
// A nil Destination means the gesture was abandoned. DestinationIndex is the final
// position in the destination collection after the item has been removed from its
// source, matching list-splice semantics.
type DragEvent struct {
	ItemID           string
	Source           kernel.Location
	Destination      *kernel.Location
	DestinationIndex int
}

// ReassignmentEngine applies drag-and-drop outcomes to a board.
//
// Business rules:
//   - An abandoned gesture, or a drop back onto the item's own position, is a no-op
//     that returns the input board itself
//   - The item is removed from its source and inserted into its destination; the
//     relative order of every other item is preserved
//   - Moving into a route strips the requested date; moving into the pool leaves
//     it absent
//   - Only the source and destination collections are rebuilt; every other day,
//     route and the pool are reused by pointer
//   - Orders are never merged, split or edited; their identities are conserved
//
// Example usage:
//
//	engine := services.NewReassignmentEngine()
//	dst, _ := kernel.NewRouteSlot("2024-11-18", "route-03-1118")
//	next, err := engine.Apply(current, services.DragEvent{
//	    ItemID:           "unassigned-001",
//	    Source:           kernel.Pool(),
//	    Destination:      &dst,
//	    DestinationIndex: 0,
//	})
//	if errors.Is(err, services.ErrIntegrity) {
//	    // The event does not match the board
//	}
type ReassignmentEngine struct{}

// NewReassignmentEngine creates a new ReassignmentEngine instance.
func NewReassignmentEngine() ReassignmentEngine {
	return ReassignmentEngine{}
}

// Apply computes the board that results from a drag event.
//
// Parameters:
//   - current: The board to transform (must be valid)
//   - event: The drop outcome; Source and a non-nil Destination must be constructed locations
//
// Returns:
//   - *board.Board: The new board, or current itself for a no-op
//   - error: *IntegrityError when the source collection, the item within it or the
//     destination collection cannot be found; validation errors otherwise
func (e ReassignmentEngine) Apply(current *board.Board, event DragEvent) (*board.Board, error) {
	if err := current.Validate(); err != nil {
		return nil, err
	}

	if event.Destination == nil {
		return current, nil
	}

	src, dst := event.Source, *event.Destination
	if err := errors.Join(src.Validate(), dst.Validate()); err != nil {
		return nil, err
	}

	srcIdx, err := e.locate(current, src, event.ItemID)
	if err != nil {
		return nil, err
	}

	if src == dst && srcIdx == event.DestinationIndex {
		return current, nil
	}

	if err = e.ensureCollection(current, dst, event.ItemID); err != nil {
		return nil, err
	}

	switch {
	case src.IsPool() && dst.IsPool():
		return e.reorderPool(current, srcIdx, event.DestinationIndex)
	case src == dst:
		return e.reorderRoute(current, src, srcIdx, event.DestinationIndex)
	case src.IsPool():
		return e.poolToRoute(current, srcIdx, dst, event.DestinationIndex)
	case dst.IsPool():
		return e.routeToPool(current, src, srcIdx, event.DestinationIndex)
	default:
		return e.routeToRoute(current, src, srcIdx, dst, event.DestinationIndex)
	}
}

// locate resolves the source collection and finds the item in it.
func (e ReassignmentEngine) locate(b *board.Board, src kernel.Location, itemID string) (int, error) {
	if src.IsPool() {
		if i := b.PoolIndexOf(itemID); i >= 0 {
			return i, nil
		}
		return -1, &IntegrityError{ItemID: itemID, Location: src, Reason: "item is not in the pool"}
	}

	r, ok := b.RouteAt(src)
	if !ok {
		return -1, &IntegrityError{ItemID: itemID, Location: src, Reason: "source route does not exist"}
	}
	if i := r.IndexOf(itemID); i >= 0 {
		return i, nil
	}
	return -1, &IntegrityError{ItemID: itemID, Location: src, Reason: "item is not on the source route"}
}

// ensureCollection checks that the destination exists before anything is removed.
func (e ReassignmentEngine) ensureCollection(b *board.Board, dst kernel.Location, itemID string) error {
	if dst.IsPool() {
		return nil
	}
	if _, ok := b.RouteAt(dst); !ok {
		return &IntegrityError{ItemID: itemID, Location: dst, Reason: "destination route does not exist"}
	}
	return nil
}

func (e ReassignmentEngine) reorderPool(b *board.Board, from, to int) (*board.Board, error) {
	pool := b.Pool()
	item := pool[from]
	return b.WithPool(insertAt(removeAt(pool, from), to, item))
}

func (e ReassignmentEngine) reorderRoute(b *board.Board, slot kernel.Location, from, to int) (*board.Board, error) {
	r, _ := b.RouteAt(slot)
	orders := r.Orders()
	item := orders[from]
	return b.WithRouteOrders(slot, insertAt(removeAt(orders, from), to, item))
}

func (e ReassignmentEngine) poolToRoute(b *board.Board, from int, dst kernel.Location, to int) (*board.Board, error) {
	pool := b.Pool()
	placed := pool[from].ToOrder()

	next, err := b.WithPool(removeAt(pool, from))
	if err != nil {
		return nil, err
	}

	r, _ := next.RouteAt(dst)
	return next.WithRouteOrders(dst, insertAt(r.Orders(), to, placed))
}

func (e ReassignmentEngine) routeToPool(b *board.Board, src kernel.Location, from int, to int) (*board.Board, error) {
	r, _ := b.RouteAt(src)
	orders := r.Orders()
	returned := orders[from].ToUnassigned()

	next, err := b.WithRouteOrders(src, removeAt(orders, from))
	if err != nil {
		return nil, err
	}

	return next.WithPool(insertAt(next.Pool(), to, returned))
}

func (e ReassignmentEngine) routeToRoute(
	b *board.Board,
	src kernel.Location,
	from int,
	dst kernel.Location,
	to int,
) (*board.Board, error) {
	srcRoute, _ := b.RouteAt(src)
	orders := srcRoute.Orders()
	moved := orders[from]

	next, err := b.WithRouteOrders(src, removeAt(orders, from))
	if err != nil {
		return nil, err
	}

	dstRoute, _ := next.RouteAt(dst)
	return next.WithRouteOrders(dst, insertAt(dstRoute.Orders(), to, moved))
}

// removeAt returns a new slice without the element at i.
func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// insertAt returns a new slice with v inserted at i, clamped to [0, len(s)].
func insertAt[T any](s []T, i int, v T) []T {
	i = max(0, min(i, len(s)))
	out := make([]T, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, v)
	return append(out, s[i:]...)
}
