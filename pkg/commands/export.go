package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tally/pkg/commands/options"
	"tableflip.dev/tally/pkg/runner/export"
	"tableflip.dev/tally/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	format := "json"

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print a month's record as JSON or YAML",
		Example: `
tally export
tally export --month 2026-07 -o yaml
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := mo.Resolve()
			if err != nil {
				return err
			}
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := export.Export{
				Year:   year,
				Month:  month,
				Format: format,
				Store:  s,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	cmd.Flags().StringVarP(&format, "output", "o", "json",
		"Output format. One of 'yaml' or 'json'.")

	topLevel.AddCommand(cmd)
}
