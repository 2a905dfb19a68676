package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sortbench/pkg/config"
	"sortbench/pkg/report"
)

func newSingleCmd(cfg *config.Config) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "single",
		Short: "Sort one dataset with both algorithms and print microsecond timings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("size") {
				size = cfg.Benchmark.SingleSize
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generating a dataset with %d users...\n\n", size)
			run := a.session.Harness().RunSingle(size)
			report.WriteSingle(out, run)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 100000, "number of users in the dataset")
	return cmd
}
