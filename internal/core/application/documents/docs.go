// Package documents defines the JSON documents exchanged through the hand-off
// channels and the mapping between them and the board model.
//
// Two slots are used:
//   - "dispatch-report-data": {days, generatedAt}, written when the daily report is requested
//   - "dispatch-instruction-data": {route, dayId, dateLabel, generatedAt}, written per route
//
// Field names follow the board's wire format (id, orderNumber, customerName, ...).
// Optional fields are omitted when absent.
//
// Decoding never panics. Missing, unparsable or schema-mismatched payloads are
// reported as ErrMalformedPersistedData so readers can fall back to a "no data" state.
package documents
