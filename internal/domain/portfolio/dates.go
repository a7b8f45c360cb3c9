// Package portfolio holds small helpers shared by the résumé entities.
package portfolio

import "time"

const monthYearLayout = "Jan 2006"

// MonthYear formats a date as "Mon YYYY".
func MonthYear(t time.Time) string {
	return t.Format(monthYearLayout)
}

// Date truncates t to midnight UTC, the granularity dates are stored at.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
