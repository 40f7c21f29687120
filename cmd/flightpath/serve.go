package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flightpath/search"
	"github.com/katalvlaran/flightpath/server"
)

func newServeCmd(g *globals, stderr io.Writer) *cobra.Command {
	var (
		addr    string
		dataset string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve searches over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := g.setup(cmd, stderr)
			if err != nil {
				return err
			}
			sc := cfg.Server
			if cmd.Flags().Changed("addr") {
				sc.Addr = addr
			}
			if cmd.Flags().Changed("dataset") {
				sc.Dataset = dataset
			}
			if cmd.Flags().Changed("request-timeout") {
				sc.RequestTimeout = timeout
			}
			if err = sc.Validate(); err != nil {
				return err
			}
			if cfg.Log.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			svc := search.New(search.WithLogger(log))

			return server.New(sc, svc, log).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dataset, "dataset", "", "CSV dataset searched by every request")
	cmd.Flags().DurationVar(&timeout, "request-timeout", 10*time.Second, "per-request search timeout")

	return cmd
}
