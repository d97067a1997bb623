// Package tui provides the interactive month editor.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tally/pkg/calendar"
	"tableflip.dev/tally/pkg/habit"
	"tableflip.dev/tally/pkg/monthkey"
	"tableflip.dev/tally/pkg/store"
)

type mode int

const (
	modeNormal mode = iota
	modeRename
	modeConfirmDelete
)

const normalHelp = "h/l day, j/k row, space toggle, +/- rate, a add, r rename, d delete, K/J reorder, n/p month, q quit"

// Model is the Bubble Tea model for the month editor. The cursor moves over
// a habit-by-day grid with two extra rows for mood and motivation.
type Model struct {
	store *store.Store

	year  int
	month time.Month
	days  int
	rec   habit.Record

	row int // habit index; len(habits) = mood row, len(habits)+1 = motivation row
	col int // zero-based day index

	mode      mode
	renameIdx int
	input     textinput.Model
	status    string
}

// New resolves the month and builds the editor model.
func New(s *store.Store, year int, month time.Month) (Model, error) {
	rec, err := s.Resolve(year, month)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "Habit name"
	ti.CharLimit = 64
	ti.Prompt = "Rename: "

	m := Model{
		store:  s,
		year:   year,
		month:  month,
		days:   calendar.DaysIn(year, month),
		rec:    rec,
		input:  ti,
		status: normalHelp,
	}
	m.col = clamp(time.Now().Day()-1, 0, m.days-1)
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch m.mode {
		case modeRename:
			switch msg.String() {
			case "esc":
				m.mode = modeNormal
				m.status = normalHelp
				return m, nil
			case "enter":
				m = m.commitRename(m.input.Value())
				return m, nil
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				return m, cmd
			}
		case modeConfirmDelete:
			if msg.String() == "y" {
				m = m.deleteCurrent()
			} else {
				m.mode = modeNormal
				m.status = normalHelp
			}
			return m, nil
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "h", "left":
		m = m.move(-1, 0)
	case "l", "right":
		m = m.move(1, 0)
	case "k", "up":
		m = m.move(0, -1)
	case "j", "down":
		m = m.move(0, 1)
	case " ", "space", "x":
		m = m.toggle()
	case "+", "=":
		m = m.adjust(1)
	case "-":
		m = m.adjust(-1)
	case "a":
		m = m.addHabit()
	case "r":
		if m.row < len(m.rec.Habits) {
			m.mode = modeRename
			m.renameIdx = m.row
			m.input.SetValue(m.rec.Habits[m.row].Name)
			m.input.Focus()
			m.status = "enter to rename, esc to cancel"
		}
	case "d":
		if m.row < len(m.rec.Habits) {
			m.mode = modeConfirmDelete
			h := m.rec.Habits[m.row]
			m.status = fmt.Sprintf("delete %s %s and its checks for this month? y/n", h.Icon, h.Name)
		}
	case "K":
		m = m.moveHabit(habit.Up)
	case "J":
		m = m.moveHabit(habit.Down)
	case "n":
		m = m.setMonth(monthkey.Next(m.year, m.month))
	case "p":
		m = m.setMonth(monthkey.Prev(m.year, m.month))
	}
	return m, nil
}

// move shifts the cursor, clamping to the grid.
func (m Model) move(dx, dy int) Model {
	m.col = clamp(m.col+dx, 0, m.days-1)
	m.row = clamp(m.row+dy, 0, len(m.rec.Habits)+1)
	return m
}

// toggle flips the check under the cursor when it sits on a habit row.
func (m Model) toggle() Model {
	if m.row >= len(m.rec.Habits) {
		return m
	}
	return m.apply(habit.ToggleCheck(m.rec, m.rec.Habits[m.row].ID, m.col))
}

// adjust bumps mood or motivation when the cursor sits on a rating row.
func (m Model) adjust(delta int) Model {
	field := habit.Field("")
	current := 0
	switch m.row {
	case len(m.rec.Habits):
		field = habit.Mood
		current = m.rec.MentalState[m.col].Mood
	case len(m.rec.Habits) + 1:
		field = habit.Motivation
		current = m.rec.MentalState[m.col].Motivation
	default:
		return m
	}
	return m.apply(habit.SetMentalValue(m.rec, m.col, field, strconv.Itoa(current+delta)))
}

func (m Model) addHabit() Model {
	m = m.apply(habit.Add(m.rec, m.days))
	m.row = len(m.rec.Habits) - 1
	return m
}

func (m Model) deleteCurrent() Model {
	m = m.apply(habit.Delete(m.rec, m.rec.Habits[m.row].ID))
	m.row = clamp(m.row, 0, len(m.rec.Habits)+1)
	m.mode = modeNormal
	m.status = normalHelp
	return m
}

func (m Model) moveHabit(dir habit.Direction) Model {
	if m.row >= len(m.rec.Habits) {
		return m
	}
	next := m.apply(habit.Move(m.rec, m.row, dir))
	if dir == habit.Up && m.row > 0 {
		next.row--
	}
	if dir == habit.Down && m.row < len(next.rec.Habits)-1 {
		next.row++
	}
	return next
}

func (m Model) commitRename(name string) Model {
	if m.renameIdx < len(m.rec.Habits) && strings.TrimSpace(name) != "" {
		m = m.apply(habit.Rename(m.rec, m.rec.Habits[m.renameIdx].ID, strings.TrimSpace(name), ""))
	}
	m.mode = modeNormal
	m.status = normalHelp
	return m
}

// setMonth discards the current record and resolves the target month.
func (m Model) setMonth(year int, month time.Month) Model {
	rec, err := m.store.Resolve(year, month)
	if err != nil {
		m.status = fmt.Sprintf("load %s failed: %v", monthkey.Title(year, month), err)
		return m
	}
	m.year, m.month, m.days, m.rec = year, month, calendar.DaysIn(year, month), rec
	m.col = clamp(m.col, 0, m.days-1)
	m.row = clamp(m.row, 0, len(m.rec.Habits)+1)
	return m
}

// apply installs a mutated record and persists it.
func (m Model) apply(rec habit.Record) Model {
	m.rec = rec
	if err := m.store.Save(m.year, m.month, rec); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
	}
	return m
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run launches the month editor for the given month.
func Run(s *store.Store, year int, month time.Month) error {
	m, err := New(s, year, month)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
