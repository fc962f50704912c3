// Package route provides the Route entity, a single truck run, and the load
// metrics derived from its order sequence.
//
// The order sequence of a route is its delivery sequence: it drives the card
// order on the board and the row numbering of both print documents.
//
// Derived metrics are recomputed on every read and are linear in the number of
// orders:
//   - Weight: Σ weight × max(quantity, 1)
//   - LoadRatio: round(Weight / MaxCapacity × 100), half away from zero
//   - LoadLevel: Overweight above 100, NearCapacity above 80 up to 100, Normal otherwise
//
// A route whose max capacity is zero or negative is rejected by NewRoute. Routes
// restored from hand-off documents may still carry one; LoadRatio then reports
// no ratio instead of dividing by zero.
package route
