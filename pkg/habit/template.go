package habit

// Starter is one entry of the default template used the first time the
// journal is opened.
type Starter struct {
	Name string
	Icon string
}

// DefaultGoal is the monthly goal assigned to template habits.
const DefaultGoal = 30

// DefaultTemplate returns the starter habit set.
func DefaultTemplate() []Starter {
	return []Starter{
		{Name: "Exercise", Icon: "🏃"},
		{Name: "Read", Icon: "📚"},
		{Name: "Meditate", Icon: "🧘"},
		{Name: "Drink water", Icon: "💧"},
		{Name: "Sleep 8 hours", Icon: "😴"},
		{Name: "Journal", Icon: "✍️"},
		{Name: "Walk outside", Icon: "🚶"},
		{Name: "Stretch", Icon: "🤸"},
		{Name: "Eat healthy", Icon: "🥗"},
		{Name: "No social media", Icon: "📵"},
	}
}

// FromTemplate builds the starter habit list for a month with the given day
// count.
func FromTemplate(days int) []Habit {
	starters := DefaultTemplate()
	habits := make([]Habit, 0, len(starters))
	for _, s := range starters {
		habits = append(habits, NewHabit(s.Name, s.Icon, DefaultGoal, days))
	}
	return habits
}
