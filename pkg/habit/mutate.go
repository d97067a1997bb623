package habit

import (
	"fmt"
	"strconv"
	"strings"
)

// Placeholder name and icon for a freshly added habit.
const (
	PlaceholderName = "New habit"
	PlaceholderIcon = "✨"
)

// Direction selects a neighbor for Move.
type Direction int

const (
	Up Direction = iota
	Down
)

// ParseDirection reads a direction argument from the command line.
func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	}
	return Up, fmt.Errorf("habit: unknown direction %q", raw)
}

// Field names a mental-state value.
type Field string

const (
	Mood       Field = "mood"
	Motivation Field = "motivation"
)

// ToggleCheck flips one day's completion flag. Unknown ids and out-of-range
// day indices leave the record unchanged.
func ToggleCheck(r Record, habitID string, dayIndex int) Record {
	out := r.Clone()
	i := out.Find(habitID)
	if i < 0 {
		return out
	}
	if dayIndex < 0 || dayIndex >= len(out.Habits[i].Checks) {
		return out
	}
	out.Habits[i].Checks[dayIndex] = !out.Habits[i].Checks[dayIndex]
	return out
}

// Rename replaces a habit's name and icon, leaving goal and checks alone.
// Empty values keep the current ones.
func Rename(r Record, habitID, name, icon string) Record {
	out := r.Clone()
	i := out.Find(habitID)
	if i < 0 {
		return out
	}
	if name != "" {
		out.Habits[i].Name = name
	}
	if icon != "" {
		out.Habits[i].Icon = icon
	}
	return out
}

// Add appends a placeholder habit with a fresh id and a goal equal to the
// month's day count.
func Add(r Record, days int) Record {
	out := r.Clone()
	out.Habits = append(out.Habits, NewHabit(PlaceholderName, PlaceholderIcon, days, days))
	return out
}

// Delete removes a habit and its checks from this month's record. Other
// months keep their own snapshots of the habit; confirmation is the
// caller's job.
func Delete(r Record, habitID string) Record {
	out := r.Clone()
	i := out.Find(habitID)
	if i < 0 {
		return out
	}
	out.Habits = append(out.Habits[:i], out.Habits[i+1:]...)
	return out
}

// Move swaps the habit at index with its neighbor. Moving the first habit up
// or the last habit down is a no-op.
func Move(r Record, index int, dir Direction) Record {
	out := r.Clone()
	j := index + 1
	if dir == Up {
		j = index - 1
	}
	if index < 0 || index >= len(out.Habits) || j < 0 || j >= len(out.Habits) {
		return out
	}
	out.Habits[index], out.Habits[j] = out.Habits[j], out.Habits[index]
	return out
}

// SetMentalValue parses raw leniently (anything unparseable reads as 0),
// clamps to [0, 10], and writes the mood or motivation for the entry whose
// day number matches dayIndex+1.
func SetMentalValue(r Record, dayIndex int, field Field, raw string) Record {
	out := r.Clone()
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		value = 0
	}
	if value < 0 {
		value = 0
	}
	if value > 10 {
		value = 10
	}
	day := dayIndex + 1
	for i := range out.MentalState {
		if out.MentalState[i].Day != day {
			continue
		}
		switch field {
		case Motivation:
			out.MentalState[i].Motivation = value
		default:
			out.MentalState[i].Mood = value
		}
		break
	}
	return out
}
