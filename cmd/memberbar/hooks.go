package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/danmuck/memberbar/internal/app"
	"github.com/spf13/cobra"
)

func newHooksCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "hooks",
		Short: "List registered toolbar callbacks in run order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			composer, err := app.NewComposer(cfg)
			if err != nil {
				return err
			}
			h := composer.Hooks()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "HOOK\tPRIORITY\tCALLBACK")
			for _, hook := range h.Hooks() {
				for _, e := range h.Entries(hook) {
					fmt.Fprintf(tw, "%s\t%d\t%s\n", hook, e.Priority, e.Name)
				}
			}
			return tw.Flush()
		},
	}
}
