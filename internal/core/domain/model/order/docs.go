// Package order provides the delivery order records placed on the dispatch board.
//
// The package includes:
//   - Order: an order placed on a route, in delivery sequence
//   - UnassignedOrder: an order waiting in the pool, optionally carrying the
//     date window the customer asked for
//
// The two are distinct types. Order.ToUnassigned and UnassignedOrder.ToOrder
// are total conversions between them; placing an order on a route drops the
// requested date, and returning it to the pool leaves the requested date absent.
//
// Key business rules:
//   - Every order has a non-empty identity and a positive weight in kilograms
//   - Quantity, when present, is a positive integer; it counts as 1 when absent
//   - Capacity, when present, is not negative; it counts as 0 when absent
//
// Orders are immutable. The board relocates the same *Order values between
// collections and never edits them in place.
package order
