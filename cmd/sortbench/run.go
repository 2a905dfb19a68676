package main

import (
	"github.com/spf13/cobra"

	"sortbench/pkg/config"
	"sortbench/pkg/report"
)

func newRunCmd(cfg *config.Config) *cobra.Command {
	var csvOut bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run both algorithms across every configured dataset size",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var console *report.Console
			if !csvOut {
				console = report.NewConsole(out, false)
			}

			a, err := newApp(cfg, consoleOrNil(console)...)
			if err != nil {
				return err
			}
			defer a.Close()

			run, err := a.session.RunAll()
			if err != nil {
				return err
			}
			if csvOut {
				return report.WriteCSV(out, run.Results)
			}
			<-report.Display(out, run.Results, cfg.Report.ChartWidth)
			return nil
		},
	}
	cmd.Flags().BoolVar(&csvOut, "csv", false, "print results as CSV instead of a table and chart")
	return cmd
}
