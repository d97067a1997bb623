package habit

import "testing"

func checked(days int, on ...int) Habit {
	h := NewHabit("x", "·", days, days)
	for _, d := range on {
		h.Checks[d] = true
	}
	return h
}

func TestDailyStatsInvariant(t *testing.T) {
	habits := []Habit{
		checked(30, 0, 1, 2),
		checked(30, 1),
		checked(30, 1, 29),
	}
	for day := 0; day < 30; day++ {
		s := DailyStats(habits, day)
		if s.Done+s.NotDone != len(habits) {
			t.Fatalf("day %d: done %d + notDone %d != %d", day, s.Done, s.NotDone, len(habits))
		}
	}
	if s := DailyStats(habits, 1); s.Done != 3 || s.Percent != 100 {
		t.Errorf("day 2: expected 3 done at 100%%, got %+v", s)
	}
	if s := DailyStats(habits, 0); s.Done != 1 || s.Percent != 33 {
		t.Errorf("day 1: expected 1 done at 33%%, got %+v", s)
	}
	if s := DailyStats(habits, 29); s.Percent != 33 {
		t.Errorf("day 30: expected 33%%, got %+v", s)
	}
}

func TestDailyStatsNoHabits(t *testing.T) {
	s := DailyStats(nil, 0)
	if s.Done != 0 || s.NotDone != 0 || s.Percent != 0 {
		t.Errorf("expected zero stats, got %+v", s)
	}
}

func TestDailyStatsRounding(t *testing.T) {
	habits := []Habit{
		checked(30, 0),
		checked(30, 0),
		checked(30),
	}
	// 2/3 rounds to 67, not 66.
	if s := DailyStats(habits, 0); s.Percent != 67 {
		t.Errorf("expected 67, got %d", s.Percent)
	}
}

func TestTotalAndProgress(t *testing.T) {
	h := checked(31, 0, 4, 8, 12)
	if Total(h) != 4 {
		t.Fatalf("expected total 4, got %d", Total(h))
	}

	h.Goal = 2
	if p := ProgressPercent(h); p != 200 {
		t.Errorf("expected unclamped 200, got %v", p)
	}
	h.Goal = 0
	if p := ProgressPercent(h); p != 0 {
		t.Errorf("expected 0 for zero goal, got %v", p)
	}
}

func TestSummary(t *testing.T) {
	habits := []Habit{
		checked(30, 0, 1),
		checked(30, 5),
	}
	s := Summary(habits, 30)
	if s.TotalPossible != 60 {
		t.Errorf("expected 60 possible, got %d", s.TotalPossible)
	}
	if s.TotalActual != 3 {
		t.Errorf("expected 3 actual, got %d", s.TotalActual)
	}
}

func TestDailySeries(t *testing.T) {
	habits := []Habit{checked(28, 0, 27)}
	series := DailySeries(habits, 28)
	if len(series) != 28 {
		t.Fatalf("expected 28 entries, got %d", len(series))
	}
	if series[0].Done != 1 || series[27].Done != 1 || series[1].Done != 0 {
		t.Errorf("unexpected series: %+v", series[:2])
	}
}

func TestMentalSeries(t *testing.T) {
	ms := FreshMentalState(3)
	ms[1].Mood = 7
	ms[2].Motivation = 4
	if got := MoodSeries(ms); got[0] != 0 || got[1] != 7 || got[2] != 0 {
		t.Errorf("unexpected mood series: %v", got)
	}
	if got := MotivationSeries(ms); got[2] != 4 {
		t.Errorf("unexpected motivation series: %v", got)
	}
}

func TestDefaultTemplate(t *testing.T) {
	starters := DefaultTemplate()
	if len(starters) != 10 {
		t.Fatalf("expected 10 starters, got %d", len(starters))
	}
	habits := FromTemplate(31)
	if len(habits) != 10 {
		t.Fatalf("expected 10 habits, got %d", len(habits))
	}
	seen := map[string]bool{}
	for _, h := range habits {
		if h.Goal != DefaultGoal {
			t.Errorf("%s: expected goal %d, got %d", h.Name, DefaultGoal, h.Goal)
		}
		if len(h.Checks) != 31 {
			t.Errorf("%s: expected 31 checks, got %d", h.Name, len(h.Checks))
		}
		if Total(h) != 0 {
			t.Errorf("%s: expected no checks set", h.Name)
		}
		if seen[h.ID] {
			t.Errorf("duplicate id %s", h.ID)
		}
		seen[h.ID] = true
	}
}
