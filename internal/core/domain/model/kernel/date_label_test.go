package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dispatch/internal/core/domain/model/kernel"
)

func TestParseDateLabel(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		parsed      bool
		daily       string
		instruction string
	}{
		{
			name:        "monday",
			raw:         "11月18日 (月)",
			parsed:      true,
			daily:       "25年11月18日 月曜日",
			instruction: "令和6年11月18日 (月曜日)",
		},
		{
			name:        "friday",
			raw:         "11月22日 (金)",
			parsed:      true,
			daily:       "25年11月22日 金曜日",
			instruction: "令和6年11月22日 (金曜日)",
		},
		{
			name:        "sunday with extra text",
			raw:         "1月5日 定休明け (日)",
			parsed:      true,
			daily:       "25年1月5日 日曜日",
			instruction: "令和6年1月5日 (日曜日)",
		},
		{
			name:        "unknown weekday passes through",
			raw:         "12月1日 (祝)",
			parsed:      true,
			daily:       "25年12月1日 祝",
			instruction: "令和6年12月1日 (祝)",
		},
		{
			name:        "day id is printed verbatim",
			raw:         "2024-11-18",
			parsed:      false,
			daily:       "2024-11-18",
			instruction: "2024-11-18",
		},
		{
			name:        "missing weekday is printed verbatim",
			raw:         "11月18日",
			parsed:      false,
			daily:       "11月18日",
			instruction: "11月18日",
		},
		{
			name:        "empty label",
			raw:         "",
			parsed:      false,
			daily:       "",
			instruction: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := kernel.ParseDateLabel(tt.raw)

			assert.Equal(t, tt.parsed, label.IsParsed())
			assert.Equal(t, tt.raw, label.Raw())
			assert.Equal(t, tt.raw, label.String())
			assert.Equal(t, tt.daily, label.DailyReportFormat())
			assert.Equal(t, tt.instruction, label.InstructionFormat())
		})
	}
}

func TestDateLabel_Parts(t *testing.T) {
	label := kernel.ParseDateLabel("11月19日 (火)")

	assert.Equal(t, "11", label.Month())
	assert.Equal(t, "19", label.Day())
	assert.Equal(t, "火曜日", label.WeekdayLong())
}
