package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/memberbar/internal/app"
	"github.com/danmuck/memberbar/internal/logging"
	"github.com/danmuck/memberbar/internal/observability"
	"github.com/danmuck/memberbar/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(load loader) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve toolbar previews over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			composer, err := app.NewComposer(cfg)
			if err != nil {
				return err
			}
			gin.SetMode(gin.ReleaseMode)
			observability.RegisterMetrics()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			logging.Infof("memberbar.serve site=%q addr=%q", cfg.Site.Name, cfg.Server.Addr)
			return server.New(cfg, composer).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
