// Package board provides the root aggregate of the dispatch board: an ordered
// sequence of day columns, each with an ordered sequence of routes, plus the
// pool of unassigned orders.
//
// Key business rules:
//   - Day identities are unique on the board; route identities are unique within a day
//   - Every order identity appears at most once across all routes and the pool
//
// Board and DayColumn are immutable. The With* methods return new values and reuse
// every untouched day, route and pool slice, so a caller can detect what changed
// by pointer comparison.
package board
