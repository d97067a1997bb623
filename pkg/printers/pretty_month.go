package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tally/pkg/calendar"
	"tableflip.dev/tally/pkg/habit"
)

// Grid prints one completion row per habit, chunked into week buckets.
// Checked days print bold, unchecked days faint.
func (pp *PrettyPrint) Grid(year int, month time.Month, rec habit.Record) {
	days := calendar.DaysIn(year, month)
	weeks := calendar.Weeks(days)

	name := color.New(color.Bold)
	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for _, h := range rec.Habits {
		_, _ = name.Printf("%s %s\n", h.Icon, h.Name)
		for _, week := range weeks {
			for _, day := range week {
				if day < len(h.Checks) && h.Checks[day] {
					l2.Printf("%2d ", day+1)
				} else {
					l1.Printf("%2d ", day+1)
				}
			}
			fmt.Print("\n")
		}
		fmt.Print("\n")
	}
}

// Daily prints a per-day completion bar chart from the aggregated series.
func (pp *PrettyPrint) Daily(series []habit.DailyStat) {
	f := color.New(color.Faint)
	b := color.New(color.FgHiWhite)

	for i, s := range series {
		bar := strings.Repeat("▇", s.Percent/10)
		_, _ = f.Printf("%2d ", i+1)
		_, _ = b.Printf("%-10s ", bar)
		_, _ = f.Printf("%3d%%  %d/%d\n", s.Percent, s.Done, s.Done+s.NotDone)
	}
	fmt.Print("\n")
}

// Mental prints mood and motivation values aligned under the day grid.
// Zero means no entry and prints as a dot.
func (pp *PrettyPrint) Mental(ms []habit.MentalState) {
	weeks := calendar.Weeks(len(ms))

	name := color.New(color.Bold)
	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.FgHiWhite)

	rows := []struct {
		label  string
		values []int
	}{
		{"Mood", habit.MoodSeries(ms)},
		{"Motivation", habit.MotivationSeries(ms)},
	}

	for _, row := range rows {
		_, _ = name.Println(row.label)
		for _, week := range weeks {
			for _, day := range week {
				if row.values[day] == 0 {
					l1.Print(" · ")
				} else {
					l2.Printf("%2d ", row.values[day])
				}
			}
			fmt.Print("\n")
		}
		fmt.Print("\n")
	}
}
