package calendar

import (
	"testing"
	"time"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2026, time.August, 31},
		{2000, time.February, 29},
		{1900, time.February, 28},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestWeeksLongMonth(t *testing.T) {
	weeks := Weeks(31)
	sizes := []int{7, 7, 7, 10}
	if len(weeks) != len(sizes) {
		t.Fatalf("expected %d buckets, got %d", len(sizes), len(weeks))
	}
	for i, want := range sizes {
		if len(weeks[i]) != want {
			t.Errorf("bucket %d: expected %d days, got %d", i, want, len(weeks[i]))
		}
	}
	if weeks[3][9] != 30 {
		t.Errorf("expected last day index 30, got %d", weeks[3][9])
	}
}

func TestWeeksShortMonth(t *testing.T) {
	weeks := Weeks(28)
	if len(weeks) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(weeks))
	}
	for i, w := range weeks {
		if len(w) != 7 {
			t.Errorf("bucket %d: expected 7 days, got %d", i, len(w))
		}
	}
}

func TestWeeksCoverEveryDay(t *testing.T) {
	for days := 28; days <= 31; days++ {
		seen := 0
		for _, w := range Weeks(days) {
			for _, d := range w {
				if d != seen {
					t.Fatalf("days=%d: expected index %d, got %d", days, seen, d)
				}
				seen++
			}
		}
		if seen != days {
			t.Fatalf("days=%d: covered %d indices", days, seen)
		}
	}
}

func TestWeekday(t *testing.T) {
	// August 2026 starts on a Saturday.
	if got := Weekday(2026, time.August, 0); got != "Sat" {
		t.Errorf("expected Sat, got %s", got)
	}
	if got := Weekday(2026, time.August, 1); got != "Sun" {
		t.Errorf("expected Sun, got %s", got)
	}
	if got := StartDay(2026, time.August); got != time.Saturday {
		t.Errorf("expected Saturday, got %s", got)
	}
}
