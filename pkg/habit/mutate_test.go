package habit

import "testing"

func sampleRecord(days int) Record {
	r := New(days)
	r.Habits = []Habit{
		NewHabit("Exercise", "🏃", days, days),
		NewHabit("Read", "📚", days, days),
		NewHabit("Meditate", "🧘", days, days),
	}
	return r
}

func TestToggleCheckIsItsOwnInverse(t *testing.T) {
	r := sampleRecord(31)
	id := r.Habits[1].ID

	once := ToggleCheck(r, id, 4)
	if !once.Habits[1].Checks[4] {
		t.Fatal("expected day 5 to be checked")
	}
	twice := ToggleCheck(once, id, 4)
	if twice.Habits[1].Checks[4] {
		t.Fatal("expected day 5 to be unchecked again")
	}
}

func TestToggleCheckDoesNotAliasPreviousRecord(t *testing.T) {
	r := sampleRecord(30)
	id := r.Habits[0].ID

	next := ToggleCheck(r, id, 0)
	if r.Habits[0].Checks[0] {
		t.Fatal("previous record mutated through shared checks array")
	}
	if !next.Habits[0].Checks[0] {
		t.Fatal("new record missing the toggle")
	}
}

func TestToggleCheckUnknownTargets(t *testing.T) {
	r := sampleRecord(30)
	r = ToggleCheck(r, r.Habits[0].ID, 3)

	for _, out := range []Record{
		ToggleCheck(r, "nope", 3),
		ToggleCheck(r, r.Habits[0].ID, -1),
		ToggleCheck(r, r.Habits[0].ID, 30),
	} {
		if Total(out.Habits[0]) != 1 || !out.Habits[0].Checks[3] {
			t.Fatal("invalid target should leave the record unchanged")
		}
	}
}

func TestRename(t *testing.T) {
	r := sampleRecord(30)
	id := r.Habits[2].ID
	r = ToggleCheck(r, id, 9)

	out := Rename(r, id, "Sit quietly", "🪑")
	if out.Habits[2].Name != "Sit quietly" || out.Habits[2].Icon != "🪑" {
		t.Fatalf("rename not applied: %+v", out.Habits[2])
	}
	if out.Habits[2].ID != id {
		t.Fatal("rename must not change the id")
	}
	if out.Habits[2].Goal != 30 || !out.Habits[2].Checks[9] {
		t.Fatal("rename must leave goal and checks alone")
	}

	same := Rename(r, "nope", "X", "Y")
	if same.Habits[2].Name != "Meditate" {
		t.Fatal("unknown id should be a no-op")
	}
}

func TestAdd(t *testing.T) {
	r := sampleRecord(28)
	out := Add(r, 28)
	if len(out.Habits) != 4 {
		t.Fatalf("expected 4 habits, got %d", len(out.Habits))
	}
	added := out.Habits[3]
	if added.Name != PlaceholderName || added.Icon != PlaceholderIcon {
		t.Fatalf("unexpected placeholder: %+v", added)
	}
	if added.Goal != 28 || len(added.Checks) != 28 {
		t.Fatalf("expected goal and checks sized to the month, got %+v", added)
	}
	for _, h := range out.Habits[:3] {
		if h.ID == added.ID {
			t.Fatal("new habit id collides with an existing one")
		}
	}
}

func TestDelete(t *testing.T) {
	r := sampleRecord(30)
	id := r.Habits[1].ID

	out := Delete(r, id)
	if len(out.Habits) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(out.Habits))
	}
	if out.Find(id) != -1 {
		t.Fatal("deleted habit still present")
	}
	if out.Habits[0].Name != "Exercise" || out.Habits[1].Name != "Meditate" {
		t.Fatal("remaining order disturbed")
	}
	if len(Delete(r, "nope").Habits) != 3 {
		t.Fatal("unknown id should be a no-op")
	}
}

func TestMove(t *testing.T) {
	r := sampleRecord(30)

	out := Move(r, 1, Up)
	if out.Habits[0].Name != "Read" || out.Habits[1].Name != "Exercise" {
		t.Fatalf("expected swap, got %s / %s", out.Habits[0].Name, out.Habits[1].Name)
	}

	same := Move(r, 0, Up)
	if same.Habits[0].Name != "Exercise" {
		t.Fatal("moving the first habit up must be a no-op")
	}
	same = Move(r, 2, Down)
	if same.Habits[2].Name != "Meditate" {
		t.Fatal("moving the last habit down must be a no-op")
	}
}

func TestSetMentalValueClamps(t *testing.T) {
	r := sampleRecord(30)
	tests := []struct {
		raw  string
		want int
	}{
		{"15", 10},
		{"-3", 0},
		{"", 0},
		{"7", 7},
		{"not a number", 0},
		{" 10 ", 10},
	}
	for _, tt := range tests {
		out := SetMentalValue(r, 4, Mood, tt.raw)
		if got := out.MentalState[4].Mood; got != tt.want {
			t.Errorf("SetMentalValue(%q): expected %d, got %d", tt.raw, tt.want, got)
		}
	}
}

func TestSetMentalValueFields(t *testing.T) {
	r := sampleRecord(30)
	out := SetMentalValue(r, 0, Motivation, "6")
	if out.MentalState[0].Motivation != 6 {
		t.Fatalf("expected motivation 6, got %d", out.MentalState[0].Motivation)
	}
	if out.MentalState[0].Mood != 0 {
		t.Fatal("mood should be untouched")
	}
	if r.MentalState[0].Motivation != 0 {
		t.Fatal("previous record mutated")
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("up"); err != nil || d != Up {
		t.Errorf("expected Up, got %v %v", d, err)
	}
	if d, err := ParseDirection("Down"); err != nil || d != Down {
		t.Errorf("expected Down, got %v %v", d, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestLookup(t *testing.T) {
	r := sampleRecord(30)
	if id, ok := r.Lookup(r.Habits[1].ID); !ok || id != r.Habits[1].ID {
		t.Error("lookup by id failed")
	}
	if id, ok := r.Lookup("read"); !ok || id != r.Habits[1].ID {
		t.Error("lookup by name failed")
	}
	if id, ok := r.Lookup("3"); !ok || id != r.Habits[2].ID {
		t.Error("lookup by position failed")
	}
	if _, ok := r.Lookup("99"); ok {
		t.Error("out-of-range position should not resolve")
	}
}
