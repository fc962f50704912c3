// Package services provides the domain services of the dispatch board. They
// operate on whole boards, day columns and routes, and are pure: every call
// returns new values and leaves its inputs untouched.
//
// The package includes:
//   - ReassignmentEngine: applies one drag-and-drop outcome to a board
//   - DailyReportProjector: flattens a day into grouped, subtotalled report rows
//   - InstructionProjector: numbers a single route's orders for its instruction sheet
package services
