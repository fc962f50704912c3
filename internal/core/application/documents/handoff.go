package documents

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/board"
	"dispatch/internal/core/domain/model/route"
)

const (
	// ReportDataKey is the hand-off slot of the daily report.
	ReportDataKey = "dispatch-report-data"

	// InstructionDataKey is the hand-off slot of the route instruction sheet.
	InstructionDataKey = "dispatch-instruction-data"

	// TimestampLayout renders generatedAt as an ISO-8601 UTC timestamp with milliseconds.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// ErrMalformedPersistedData is returned when a hand-off payload cannot be decoded
// or does not match the expected document schema.
var ErrMalformedPersistedData = errors.New("malformed persisted data")

// ReportDocument is stored under ReportDataKey.
type ReportDocument struct {
	Days        []DayDocument `json:"days"`
	GeneratedAt string        `json:"generatedAt"`
}

// InstructionDocument is stored under InstructionDataKey.
type InstructionDocument struct {
	Route       *RouteDocument `json:"route"`
	DayID       string         `json:"dayId"`
	DateLabel   string         `json:"dateLabel"`
	GeneratedAt string         `json:"generatedAt"`
}

// Report is a decoded daily report hand-off.
type Report struct {
	Days        []*board.DayColumn
	GeneratedAt time.Time
}

// Instruction is a decoded route instruction hand-off.
type Instruction struct {
	Route       *route.Route
	DayID       string
	DateLabel   string
	GeneratedAt time.Time
}

// NewReportDocument snapshots the given days.
func NewReportDocument(days []*board.DayColumn, generatedAt time.Time) ReportDocument {
	docs := make([]DayDocument, len(days))
	for i, d := range days {
		docs[i] = FromDay(d)
	}
	return ReportDocument{
		Days:        docs,
		GeneratedAt: FormatTimestamp(generatedAt),
	}
}

// NewInstructionDocument snapshots one route. An empty dateLabel falls back to the day identity.
func NewInstructionDocument(day *board.DayColumn, r *route.Route, generatedAt time.Time) InstructionDocument {
	label := day.DateLabel()
	if label == "" {
		label = day.ID()
	}
	rd := FromRoute(r)
	return InstructionDocument{
		Route:       &rd,
		DayID:       day.ID(),
		DateLabel:   label,
		GeneratedAt: FormatTimestamp(generatedAt),
	}
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// DecodeReport parses a ReportDataKey payload.
func DecodeReport(raw []byte) (*Report, error) {
	var doc ReportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, malformed(ReportDataKey, err)
	}
	if doc.Days == nil {
		return nil, malformed(ReportDataKey, errors.New("days is missing"))
	}

	at, err := parseTimestamp(doc.GeneratedAt)
	if err != nil {
		return nil, malformed(ReportDataKey, err)
	}

	days := make([]*board.DayColumn, len(doc.Days))
	for i, dd := range doc.Days {
		d, dayErr := dd.Restore()
		if dayErr != nil {
			return nil, malformed(ReportDataKey, dayErr)
		}
		days[i] = d
	}

	return &Report{Days: days, GeneratedAt: at}, nil
}

// DecodeInstruction parses an InstructionDataKey payload.
func DecodeInstruction(raw []byte) (*Instruction, error) {
	var doc InstructionDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, malformed(InstructionDataKey, err)
	}
	if doc.Route == nil {
		return nil, malformed(InstructionDataKey, errors.New("route is missing"))
	}

	at, err := parseTimestamp(doc.GeneratedAt)
	if err != nil {
		return nil, malformed(InstructionDataKey, err)
	}

	r, err := doc.Route.Restore()
	if err != nil {
		return nil, malformed(InstructionDataKey, err)
	}

	return &Instruction{
		Route:       r,
		DayID:       doc.DayID,
		DateLabel:   doc.DateLabel,
		GeneratedAt: at,
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("generatedAt is missing")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("generatedAt: %w", err)
	}
	return t, nil
}

func malformed(key string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrMalformedPersistedData, key, cause)
}
