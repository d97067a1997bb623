// Package monthkey derives storage keys and navigation for (year, month) pairs.
package monthkey

import (
	"fmt"
	"time"
)

const layoutMonth = "2006-01"

// Key returns the storage address for a month. Months are keyed zero-indexed,
// so January 2026 maps to "2026-0".
func Key(year int, month time.Month) string {
	return fmt.Sprintf("%d-%d", year, int(month)-1)
}

// Prev returns the month immediately before the given one.
func Prev(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// Next returns the month immediately after the given one.
func Next(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// Add applies a signed month offset, wrapping years in either direction.
func Add(year int, month time.Month, offset int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, offset, 0)
	return t.Year(), t.Month()
}

// Parse reads a "YYYY-MM" month argument.
func Parse(v string) (int, time.Month, error) {
	t, err := time.Parse(layoutMonth, v)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}

// Title renders the display heading for a month, e.g. "August 2026".
func Title(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}
