package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danmuck/memberbar/internal/config"
	"github.com/danmuck/memberbar/internal/logging"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		output string
		format string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := config.Format(strings.ToLower(format))
			target := output
			if target == "" {
				target = strings.TrimSuffix(defaultConfigPath, filepath.Ext(defaultConfigPath)) + "." + string(f)
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			if err := config.WriteTemplate(target, f, force); err != nil {
				return err
			}
			logging.Infof("memberbar.init wrote format=%s path=%q", f, target)
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "output path for the config template")
	cmd.Flags().StringVar(&format, "format", string(config.FormatTOML), "template format: toml|yaml")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func newValidateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load a config and report whether it is valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *configPath
			if path == "" {
				path = defaultConfigPath
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid: site=%q members=%d\n", cfg.Site.Name, len(cfg.Directory.List()))
			return nil
		},
	}
}
