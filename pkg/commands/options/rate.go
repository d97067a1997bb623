package options

import (
	"github.com/spf13/cobra"
)

// RateOptions captures mood/motivation flags. Values stay raw strings so
// lenient parsing happens in one place.
type RateOptions struct {
	Mood       string
	Motivation string
}

// AddRateArgs wires the rating flags on the provided command.
func AddRateArgs(cmd *cobra.Command, o *RateOptions) {
	cmd.Flags().StringVar(&o.Mood, "mood", "",
		"Mood rating for the day, 0-10.")
	cmd.Flags().StringVar(&o.Motivation, "motivation", "",
		"Motivation rating for the day, 0-10.")
}
