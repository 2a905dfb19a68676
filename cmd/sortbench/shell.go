package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sortbench/pkg/config"
	"sortbench/pkg/report"
)

const Prompt = "sortbench> "

func newShellCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session: run benchmarks repeatedly and show results",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.shell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (a *app) shell(in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Sort benchmark shell (sizes: %v)\n", a.session.Sizes())
	fmt.Fprintln(out, "Type 'help' for commands.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd := strings.ToLower(strings.Fields(line)[0])
		switch cmd {
		case "run":
			a.handleRun(out)
		case "show":
			if err := a.showResults(out); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		case "export":
			a.handleExport(out)
		case "summary":
			a.handleSummary(out)
		case "reset":
			if err := a.session.Reset(); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			} else {
				fmt.Fprintln(out, "Results cleared.")
			}
		case "help":
			printHelp(out)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return nil
		default:
			fmt.Fprintf(out, "Unknown command: '%s'. Type 'help'.\n", cmd)
		}
	}
	return scanner.Err()
}

func (a *app) handleRun(out io.Writer) {
	fmt.Fprintln(out, "Running benchmarks...")
	start := time.Now()
	run, err := a.session.RunAll()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Run %d done (%v).\n", run.ID, time.Since(start))
	report.WriteTable(out, run.Results)
}

func (a *app) handleExport(out io.Writer) {
	run, err := a.session.Results()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	if err := report.WriteCSV(out, run.Results); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

func (a *app) handleSummary(out io.Writer) {
	summary, err := a.session.Summary()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	if len(summary) == 0 {
		fmt.Fprintln(out, "No runs recorded yet. Type 'run'.")
		return
	}
	fmt.Fprintf(out, "%12s %8s %16s %16s %9s\n", "Size", "Samples", "Avg Merge (ms)", "Avg Quick (ms)", "Failures")
	for _, s := range summary {
		fmt.Fprintf(out, "%12d %8d %16.3f %16.3f %9d\n", s.Size, s.Samples, s.AvgMergeSortMs, s.AvgQuickSortMs, s.Failures)
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, `
Commands:
  run        Run benchmarks across all configured sizes
  show       Show latest results and chart (runs benchmarks if none yet)
  export     Print latest results as CSV
  summary    Average timings per size across all runs
  reset      Forget all recorded runs
  exit       Exit shell
	`)
}
