package main

import (
	"fmt"

	"traductor/internal/grading"
	"traductor/internal/mixup"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newMixupsCmd(opts *rootOptions) *cobra.Command {
	var (
		expected string
		clear    bool
	)

	cmd := &cobra.Command{
		Use:   "mixups",
		Short: "Show which words you confuse with each other",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer logger.Sync()
			store, err := opts.store()
			if err != nil {
				return err
			}

			tracker := mixup.NewTracker(store, logger)
			out := cmd.OutOrStdout()

			if clear {
				tracker.Clear()
				color.New(color.FgGreen).Fprintln(out, "Mixups cleared.")
				return nil
			}

			rows := tracker.Query(grading.Normalize(expected))
			if len(rows) == 0 {
				fmt.Fprintln(out, "No mixups recorded.")
				return nil
			}
			for _, r := range rows {
				fmt.Fprintf(out, "%s ← %s ×%d\n", r.Expected, r.Wrong, r.Count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&expected, "expected", "", "only show mixups for this expected word")
	cmd.Flags().BoolVar(&clear, "clear", false, "forget all recorded mixups")
	return cmd
}
