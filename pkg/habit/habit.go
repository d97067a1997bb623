// Package habit defines the month record data model, the mutations that
// produce new records from user intents, and the aggregation helpers the
// renderers read.
package habit

import (
	"crypto/md5"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// Habit is one tracked habit within a single month. Checks holds one flag per
// day of the owning month, index 0 = day 1. The ID is stable across renames
// and carries over between months.
type Habit struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Goal   int    `json:"goal"`
	Checks []bool `json:"checks"`
}

// MentalState is the subjective rating for one day, addressed by 1-based day
// number. Zero means "no entry".
type MentalState struct {
	Day        int `json:"day"`
	Mood       int `json:"mood"`
	Motivation int `json:"motivation"`
}

// Record is the persisted unit: everything tracked for one month. Habit
// order is user-controlled and significant.
type Record struct {
	Habits      []Habit       `json:"habits"`
	MentalState []MentalState `json:"mentalState"`
	LastUpdated int64         `json:"lastUpdated"`
}

// New returns an empty record sized to the month's day count.
func New(days int) Record {
	return Record{
		Habits:      []Habit{},
		MentalState: FreshMentalState(days),
	}
}

// FreshMentalState returns one zeroed entry per day of the month.
func FreshMentalState(days int) []MentalState {
	ms := make([]MentalState, days)
	for i := range ms {
		ms[i] = MentalState{Day: i + 1}
	}
	return ms
}

// NewHabit constructs a habit with a fresh identifier and an all-false check
// row sized to the month.
func NewHabit(name, icon string, goal, days int) Habit {
	return Habit{
		ID:     newID(name),
		Name:   name,
		Icon:   icon,
		Goal:   goal,
		Checks: make([]bool, days),
	}
}

var idSeq atomic.Uint64

// newID derives an identifier from the name, the clock, and a sequence
// number so ids never collide across months or with previously deleted
// habits.
func newID(name string) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s-%d-%d", name, time.Now().UnixNano(), idSeq.Add(1))))
	return fmt.Sprintf("%x", sum[:8])
}

// Clone returns a deep copy. Mutations operate on clones so callers holding
// the previous record never see shared check arrays change underneath them.
func (r Record) Clone() Record {
	out := Record{
		Habits:      make([]Habit, len(r.Habits)),
		MentalState: make([]MentalState, len(r.MentalState)),
		LastUpdated: r.LastUpdated,
	}
	copy(out.MentalState, r.MentalState)
	for i, h := range r.Habits {
		checks := make([]bool, len(h.Checks))
		copy(checks, h.Checks)
		h.Checks = checks
		out.Habits[i] = h
	}
	return out
}

// Find returns the index of the habit with the given id, or -1.
func (r Record) Find(id string) int {
	for i, h := range r.Habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

// Lookup resolves a loose habit reference from the command line: an exact
// id, a case-insensitive name, or a 1-based list position.
func (r Record) Lookup(ref string) (string, bool) {
	if i := r.Find(ref); i >= 0 {
		return ref, true
	}
	for _, h := range r.Habits {
		if strings.EqualFold(h.Name, ref) {
			return h.ID, true
		}
	}
	if pos, err := strconv.Atoi(ref); err == nil && pos >= 1 && pos <= len(r.Habits) {
		return r.Habits[pos-1].ID, true
	}
	return "", false
}
