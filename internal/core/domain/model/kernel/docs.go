// Package kernel provides the value objects shared by the dispatch board model.
//
// The package includes:
//   - Location: where an order sits on the board, either the unassigned pool
//     or a route slot addressed by day and route identity
//   - DateLabel: a parsed day header such as "11月18日 (月)" with the print
//     formats used by the daily report and the route instruction sheet
//
// Both are immutable and safe to share between goroutines.
package kernel
