package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sortbench/pkg/api"
	"sortbench/pkg/config"
	"sortbench/pkg/network"
	"sortbench/pkg/report"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and, if configured, the result collector",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if cfg.Server.CollectorAddr != "" {
				remoteLog := report.NewLogReporter(logrus.WithField("source", "collector"))
				collector := network.NewCollector(remoteLog.Report, logrus.StandardLogger())
				if err := collector.Listen(cfg.Server.CollectorAddr); err != nil {
					return err
				}
				defer collector.Close()
				go func() {
					if err := collector.Serve(); err != nil {
						logrus.Errorf("[TCP] Collector stopped: %v", err)
					}
				}()
			}

			return api.NewServer(a.session, cfg.Report.ChartWidth, logrus.StandardLogger()).Start(cfg.Server.Addr)
		},
	}
}
