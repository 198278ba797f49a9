package statement

import "time"

const (
	// dateFormat is the ISO 8601 layout used for date keys.
	dateFormat = "2006-01-02"

	// interestCycleDays is the length of one interest accrual cycle.
	// Cycles are fixed non-overlapping 90-day windows counted from the
	// statement start.
	interestCycleDays = 90
)

// dateOnly truncates t to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// sameDate reports whether a and b fall on the same calendar date.
func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// cycleDates returns the interest posting dates for the period: start+90d,
// start+180d, and so on, while not after end. The slice is computed once
// per run and shared by the synthesizer (for avoidance) and the simulator
// (for posting).
func cycleDates(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := dateOnly(start).AddDate(0, 0, interestCycleDays); !d.After(dateOnly(end)); d = d.AddDate(0, 0, interestCycleDays) {
		dates = append(dates, d)
	}
	return dates
}

// isHoliday reports whether t is unavailable for transaction placement:
// Saturdays are always holidays, and the configured set supplies the rest.
// The two predicates stay independent; the weekday rule is calendar-computed
// while the set is caller-supplied.
func (c *Config) isHoliday(t time.Time) bool {
	if t.Weekday() == time.Saturday {
		return true
	}
	return c.Holidays.Contains(t)
}
