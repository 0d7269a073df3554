package domain

import "time"

// MonthWindow returns the half-open range [start, end) covering the calendar
// month of t. Boundaries are computed in UTC regardless of the location
// attached to t, so two callers in different time zones always get the same
// window for the same instant.
func MonthWindow(t time.Time) (start, end time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}
