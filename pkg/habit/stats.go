package habit

import "math"

// DailyStat summarizes one day's completion across all habits.
type DailyStat struct {
	Done    int
	NotDone int
	Percent int
}

// SummaryStat totals completion across the whole month.
type SummaryStat struct {
	TotalPossible int
	TotalActual   int
}

// DailyStats counts how many habits were completed on the zero-based day.
// Percent is rounded and reads 0 when there are no habits at all.
func DailyStats(habits []Habit, day int) DailyStat {
	s := DailyStat{}
	for _, h := range habits {
		if day >= 0 && day < len(h.Checks) && h.Checks[day] {
			s.Done++
		}
	}
	s.NotDone = len(habits) - s.Done
	if len(habits) > 0 {
		s.Percent = int(math.Round(float64(s.Done) / float64(len(habits)) * 100))
	}
	return s
}

// DailySeries returns one DailyStat per day, in day order, for charting.
func DailySeries(habits []Habit, days int) []DailyStat {
	series := make([]DailyStat, days)
	for day := 0; day < days; day++ {
		series[day] = DailyStats(habits, day)
	}
	return series
}

// Total counts the completed days of a habit.
func Total(h Habit) int {
	total := 0
	for _, checked := range h.Checks {
		if checked {
			total++
		}
	}
	return total
}

// ProgressPercent reports completion against the habit's goal. The value is
// deliberately unclamped so over-achievement reads above 100.
func ProgressPercent(h Habit) float64 {
	if h.Goal <= 0 {
		return 0
	}
	return float64(Total(h)) / float64(h.Goal) * 100
}

// Summary totals actual completions against the possible maximum for the
// month.
func Summary(habits []Habit, days int) SummaryStat {
	s := SummaryStat{TotalPossible: len(habits) * days}
	for _, h := range habits {
		s.TotalActual += Total(h)
	}
	return s
}

// MoodSeries returns the month's mood values as a plain numeric sequence.
func MoodSeries(ms []MentalState) []int {
	out := make([]int, len(ms))
	for i, e := range ms {
		out[i] = e.Mood
	}
	return out
}

// MotivationSeries returns the month's motivation values in day order.
func MotivationSeries(ms []MentalState) []int {
	out := make([]int, len(ms))
	for i, e := range ms {
		out[i] = e.Motivation
	}
	return out
}
