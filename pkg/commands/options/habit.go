package options

import (
	"github.com/spf13/cobra"
)

// HabitOptions captures flags for habit-editing commands.
type HabitOptions struct {
	Habit string
	Name  string
	Icon  string
	Yes   bool
}

// AddNameIconArgs registers the rename flags.
func AddNameIconArgs(cmd *cobra.Command, o *HabitOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"Display name for the habit.")
	cmd.Flags().StringVar(&o.Icon, "icon", "",
		"Display icon for the habit.")
}

// AddConfirmArg registers the deletion confirmation flag.
func AddConfirmArg(cmd *cobra.Command, o *HabitOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Confirm the deletion. Without this flag the command only describes what would be deleted.")
}
