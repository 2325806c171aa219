package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/daheemath/mathtutor-backend/internal/model"
)

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		from  time.Time
		to    time.Time
	}{
		{
			name:  "regular month",
			year:  2025,
			month: 3,
			from:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
			to:    time.Date(2025, 3, 31, 23, 59, 59, 0, time.Local),
		},
		{
			name:  "february non-leap",
			year:  2025,
			month: 2,
			from:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local),
			to:    time.Date(2025, 2, 28, 23, 59, 59, 0, time.Local),
		},
		{
			name:  "february leap",
			year:  2024,
			month: 2,
			from:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local),
			to:    time.Date(2024, 2, 29, 23, 59, 59, 0, time.Local),
		},
		{
			name:  "december stays in year",
			year:  2025,
			month: 12,
			from:  time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local),
			to:    time.Date(2025, 12, 31, 23, 59, 59, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := MonthWindow(tt.year, tt.month)
			assert.True(t, from.Equal(tt.from), "from = %v, want %v", from, tt.from)
			assert.True(t, to.Equal(tt.to), "to = %v, want %v", to, tt.to)
		})
	}
}

func TestDefaultColor(t *testing.T) {
	assert.Equal(t, "#6366F1", DefaultColor(model.ScheduleTypeClass))
	assert.Equal(t, "#EC4899", DefaultColor(model.ScheduleTypeSpecial))
	assert.Equal(t, "#10B981", DefaultColor(model.ScheduleTypeConsultation))
	assert.Equal(t, "#F59E0B", DefaultColor(model.ScheduleTypeOther))

	// Unknown types fall back to the catch-all color.
	assert.Equal(t, "#F59E0B", DefaultColor(model.ScheduleType("workshop")))
}
