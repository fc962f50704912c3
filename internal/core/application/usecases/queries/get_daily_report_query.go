package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetDailyReportQueryIsNotConstructed = errors.New(
	"GetDailyReportQuery must be created via NewGetDailyReportQuery constructor",
)

// GetDailyReportQuery reads the published daily report and projects one of its days.
// The day index is not range-checked here: an index the report does not have
// yields the "no data" view.
type GetDailyReportQuery struct {
	dayIndex int

	guard guard.ConstructorGuard
}

func NewGetDailyReportQuery(dayIndex int) GetDailyReportQuery {
	return GetDailyReportQuery{
		dayIndex: dayIndex,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDailyReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyReportQueryIsNotConstructed)
}

// DayIndex is the zero-based position of the day in the published report.
func (q GetDailyReportQuery) DayIndex() int {
	return q.dayIndex
}
