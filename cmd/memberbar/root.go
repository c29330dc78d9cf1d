package main

import (
	"github.com/danmuck/memberbar/internal/config"
	"github.com/danmuck/memberbar/internal/logging"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "cmd/memberbar/config.toml"

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "memberbar",
		Short:         "Compose and preview the members toolbar",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.ConfigureRuntime()
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (.toml or .yaml); defaults apply when empty")

	load := func() (config.Config, error) {
		if configPath == "" {
			return config.Default(), nil
		}
		return config.Load(configPath)
	}

	root.AddCommand(
		newServeCmd(load),
		newRenderCmd(load),
		newHooksCmd(load),
		newInitCmd(),
		newValidateCmd(&configPath),
	)
	return root
}

type loader func() (config.Config, error)
