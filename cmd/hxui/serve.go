package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/pthm/hxui/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr  string
		pages string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory of pages with hydrated placeholders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("pages") {
				a.cfg.Server.PagesDir = pages
			}
			if cmd.Flags().Changed("watch") {
				a.cfg.Server.Watch = watch
			}

			var metrics *prometheus.Registry
			if a.cfg.Metrics.Enabled {
				metrics = prometheus.NewRegistry()
				metrics.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(server.Options{
				Config:   a.cfg,
				Registry: a.reg,
				Logger:   a.log,
				Metrics:  metrics,
			}).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	cmd.Flags().StringVar(&pages, "pages", "", "Pages directory (overrides server.pages_dir)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload pages on change (overrides server.watch)")
	return cmd
}
