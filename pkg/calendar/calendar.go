// Package calendar provides the month geometry behind the habit grid.
package calendar

import "time"

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, -1).Day()
}

// StartDay returns the weekday of the first of the month.
func StartDay(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday()
}

// Weekday returns the label for a zero-based day index, week starting Sunday.
func Weekday(year int, month time.Month, dayIndex int) string {
	d := time.Date(year, month, dayIndex+1, 0, 0, 0, 0, time.Local)
	return weekdayLabels[int(d.Weekday())]
}

// Weeks chunks the month's zero-based day indices into buckets. The first
// three buckets hold seven days each and the final bucket absorbs whatever
// remains, so a 31-day month yields sizes 7,7,7,10. This is plain chunking
// for display, not ISO week alignment.
func Weeks(daysInMonth int) [][]int {
	buckets := make([][]int, 0, 4)
	day := 0
	for len(buckets) < 3 && day < daysInMonth {
		week := make([]int, 0, 7)
		for len(week) < 7 && day < daysInMonth {
			week = append(week, day)
			day++
		}
		buckets = append(buckets, week)
	}
	if day < daysInMonth {
		rest := make([]int, 0, daysInMonth-day)
		for ; day < daysInMonth; day++ {
			rest = append(rest, day)
		}
		buckets = append(buckets, rest)
	}
	return buckets
}
