package main

import (
	"fmt"

	"traductor/internal/catalog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newLessonsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lessons",
		Short: "List available lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.catalog()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			id := color.New(color.FgHiCyan)
			for _, l := range cat.Lessons() {
				gradable := 0
				for _, s := range l.Sentences {
					if catalog.GradableSections(s) > 0 {
						gradable++
					}
				}
				id.Fprintf(out, "%-16s", l.ID)
				fmt.Fprintf(out, " %s (%d sentences)\n", l.Title, gradable)
			}
			return nil
		},
	}
}
