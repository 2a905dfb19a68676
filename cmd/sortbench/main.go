package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sortbench/pkg/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	cfg := &config.Config{}

	root := &cobra.Command{
		Use:          "sortbench",
		Short:        "Benchmark merge sort against quick sort on random user datasets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level, err := logrus.ParseLevel(loaded.Log.Level)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			*cfg = *loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to sortbench.yaml")

	root.AddCommand(
		newSingleCmd(cfg),
		newRunCmd(cfg),
		newShellCmd(cfg),
		newServeCmd(cfg),
	)
	return root
}
