package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"tableflip.dev/tally/pkg/calendar"
	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/monthkey"
)

// Store owns the persisted month records. All reads reconcile stored state
// against the month's real day count before handing it to callers.
type Store struct {
	kv KV
}

// New wraps a KV in a Store.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Load creates a Store using the provided config, or the discovered one when
// cfg is nil.
func Load(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Backend() {
	case BackendSQLite:
		kv, err := NewSQLite(cfg.BasePath())
		if err != nil {
			return nil, err
		}
		return New(kv), nil
	case BackendMemory:
		return New(NewMemory()), nil
	default:
		return New(NewDiskv(cfg.BasePath())), nil
	}
}

// Get fetches and reconciles the record for a month. Missing keys and
// records that fail to decode both read as absent; storage corruption never
// blocks viewing a month.
func (s *Store) Get(year int, month time.Month) (habit.Record, bool) {
	key := monthkey.Key(year, month)
	raw, ok := s.kv.Get(key)
	if !ok {
		return habit.Record{}, false
	}
	var rec habit.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %v\n", key, err)
		return habit.Record{}, false
	}
	if rec.Habits == nil && rec.MentalState == nil {
		return habit.Record{}, false
	}
	return reconcile(rec, calendar.DaysIn(year, month)), true
}

// Save stamps the modification time and writes the whole record under the
// month's key. Each write is a complete overwrite, so repeated saves are
// idempotent.
func (s *Store) Save(year int, month time.Month, rec habit.Record) error {
	rec.LastUpdated = time.Now().UnixMilli()
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.kv.Set(monthkey.Key(year, month), string(data))
}

// Resolve returns the month's record, constructing one on first visit: habit
// definitions carry over from the previous month when it exists, otherwise
// the default template applies. Mood and motivation never carry over. A
// freshly resolved record is persisted before it is returned.
func (s *Store) Resolve(year int, month time.Month) (habit.Record, error) {
	if rec, ok := s.Get(year, month); ok {
		return rec, nil
	}

	days := calendar.DaysIn(year, month)
	rec := habit.New(days)

	prevYear, prevMonth := monthkey.Prev(year, month)
	if prev, ok := s.Get(prevYear, prevMonth); ok {
		rec.Habits = carryOver(prev.Habits, days)
	} else {
		rec.Habits = habit.FromTemplate(days)
	}

	if err := s.Save(year, month, rec); err != nil {
		return habit.Record{}, err
	}
	return rec, nil
}

// carryOver copies habit definitions in order, resetting every check row to
// the new month's length.
func carryOver(prev []habit.Habit, days int) []habit.Habit {
	next := make([]habit.Habit, 0, len(prev))
	for _, h := range prev {
		next = append(next, habit.Habit{
			ID:     h.ID,
			Name:   h.Name,
			Icon:   h.Icon,
			Goal:   h.Goal,
			Checks: make([]bool, days),
		})
	}
	return next
}

// reconcile repairs length drift between a stored record and the month that
// owns it: check rows are resized preserving values by day index, and the
// mental-state list is rebuilt to exactly one entry per day, matched by day
// number rather than array position.
func reconcile(rec habit.Record, days int) habit.Record {
	out := rec.Clone()
	for i := range out.Habits {
		checks := make([]bool, days)
		copy(checks, out.Habits[i].Checks)
		out.Habits[i].Checks = checks
	}

	ms := habit.FreshMentalState(days)
	for _, e := range rec.MentalState {
		if e.Day >= 1 && e.Day <= days {
			ms[e.Day-1] = habit.MentalState{Day: e.Day, Mood: e.Mood, Motivation: e.Motivation}
		}
	}
	out.MentalState = ms
	return out
}
