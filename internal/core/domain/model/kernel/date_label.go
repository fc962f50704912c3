package kernel

import (
	"fmt"
	"regexp"
)

var dateLabelPattern = regexp.MustCompile(`(\d+)月(\d+)日.*\((.)\)`)

// weekdayNames maps the short weekday kanji used in day headers to its long form.
var weekdayNames = map[string]string{
	"月": "月曜日",
	"火": "火曜日",
	"水": "水曜日",
	"木": "木曜日",
	"金": "金曜日",
	"土": "土曜日",
	"日": "日曜日",
}

// DateLabel is a day header such as "11月18日 (月)". Labels that do not follow the
// "<month>月<day>日 ... (<weekday>)" pattern are kept and printed verbatim.
type DateLabel struct {
	raw     string
	month   string
	day     string
	weekday string
	parsed  bool
}

// ParseDateLabel never fails: an unparsable label yields a DateLabel whose
// print formats return the raw text unchanged.
func ParseDateLabel(raw string) DateLabel {
	label := DateLabel{raw: raw}

	m := dateLabelPattern.FindStringSubmatch(raw)
	if m == nil {
		return label
	}

	label.month, label.day, label.weekday = m[1], m[2], m[3]
	label.parsed = true
	return label
}

// Raw returns the label as written on the board.
func (d DateLabel) Raw() string {
	return d.raw
}

// IsParsed reports whether the label matched the expected pattern.
func (d DateLabel) IsParsed() bool {
	return d.parsed
}

// Month returns the month digits as written, or "" when unparsed.
func (d DateLabel) Month() string {
	return d.month
}

// Day returns the day-of-month digits as written, or "" when unparsed.
func (d DateLabel) Day() string {
	return d.day
}

// WeekdayLong returns the long weekday name. Unknown kanji are passed through.
func (d DateLabel) WeekdayLong() string {
	if long, ok := weekdayNames[d.weekday]; ok {
		return long
	}
	return d.weekday
}

// DailyReportFormat renders the header of the daily delivery report, e.g. "25年11月18日 月曜日".
func (d DateLabel) DailyReportFormat() string {
	if !d.parsed {
		return d.raw
	}
	return fmt.Sprintf("25年%s月%s日 %s", d.month, d.day, d.WeekdayLong())
}

// InstructionFormat renders the header of a route instruction sheet, e.g. "令和6年11月18日 (月曜日)".
func (d DateLabel) InstructionFormat() string {
	if !d.parsed {
		return d.raw
	}
	return fmt.Sprintf("令和6年%s月%s日 (%s)", d.month, d.day, d.WeekdayLong())
}

// String implements fmt.Stringer.
func (d DateLabel) String() string {
	return d.raw
}
