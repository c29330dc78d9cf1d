package main

import (
	"encoding/json"
	"fmt"

	"github.com/danmuck/memberbar/internal/app"
	"github.com/danmuck/memberbar/internal/toolbar"
	"github.com/spf13/cobra"
)

func newRenderCmd(load loader) *cobra.Command {
	var (
		p      app.Preview
		format string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build the toolbar for one page view and print it",
		Example: `  memberbar render --viewer admin --displayed bob
  memberbar render --url https://example.org/ --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown output format: %s", format)
			}
			cfg, err := load()
			if err != nil {
				return err
			}
			composer, err := app.NewComposer(cfg)
			if err != nil {
				return err
			}
			env, err := app.NewEnv(cfg.Site, cfg.Directory, p)
			if err != nil {
				return err
			}
			bar := composer.Build(env)

			out := cmd.OutOrStdout()
			if format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Visible bool             `json:"visible"`
					Tree    []toolbar.Branch `json:"tree"`
				}{bar.Visible(), bar.Tree()})
			}
			return toolbar.Write(out, bar)
		},
	}
	f := cmd.Flags()
	f.StringVar(&p.Viewer, "viewer", "", "slug of the logged-in member (anonymous when empty)")
	f.StringVar(&p.Displayed, "displayed", "", "slug of the member whose profile is shown")
	f.StringVar(&p.URL, "url", "", "page URL (defaults to the displayed profile)")
	f.StringVar(&p.EditLink, "edit-link", "", "edit screen for the current page")
	f.BoolVar(&p.Ajax, "ajax", false, "render as a background request")
	f.StringVarP(&format, "format", "o", "text", "output format: text|json")
	return cmd
}
