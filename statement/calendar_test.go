package statement

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/nepdocs/stmtgen/holiday"
)

func TestCycleDates(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "range shorter than one cycle",
			start: "2024-01-01",
			end:   "2024-03-01",
			want:  nil,
		},
		{
			name:  "exactly one cycle",
			start: "2024-01-01",
			end:   "2024-03-31",
			want:  []string{"2024-03-31"},
		},
		{
			name:  "two cycles in six months",
			start: "2024-01-01",
			end:   "2024-06-30",
			want:  []string{"2024-03-31", "2024-06-29"},
		},
		{
			name:  "full year",
			start: "2024-01-01",
			end:   "2024-12-31",
			want:  []string{"2024-03-31", "2024-06-29", "2024-09-27", "2024-12-26"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cycleDates(date(tt.start), date(tt.end))
			assert.Equal(t, len(tt.want), len(got))
			for i, want := range tt.want {
				assert.Equal(t, want, got[i].Format(dateFormat))
			}
		})
	}
}

func TestIsHoliday(t *testing.T) {
	set, err := holiday.FromStrings([]string{"2024-01-15"})
	assert.NoError(t, err)

	cfg := &Config{Holidays: set}

	// 2024-01-06 is a Saturday; Saturdays are implicit holidays.
	assert.True(t, cfg.isHoliday(date("2024-01-06")))
	assert.True(t, cfg.isHoliday(date("2024-01-15")))

	// 2024-01-16 is a plain Tuesday.
	assert.False(t, cfg.isHoliday(date("2024-01-16")))
}

func TestDateOnlyNormalizesTime(t *testing.T) {
	noon := time.Date(2024, 5, 10, 12, 30, 45, 0, time.UTC)
	assert.True(t, dateOnly(noon).Equal(date("2024-05-10")))
	assert.True(t, sameDate(noon, date("2024-05-10")))
}
