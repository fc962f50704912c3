// Package memory provides process-local implementations of the board store and
// the hand-off channel. The board lives here for the lifetime of the process.
package memory
