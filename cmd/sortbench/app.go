package main

import (
	"io"

	"github.com/sirupsen/logrus"

	"sortbench/pkg/bench"
	"sortbench/pkg/client"
	"sortbench/pkg/config"
	"sortbench/pkg/dataset"
	"sortbench/pkg/report"
	"sortbench/pkg/storage"
)

// app holds the objects every subcommand shares.
type app struct {
	cfg     *config.Config
	session *bench.Session
	remote  *client.RemoteReporter
}

// newApp wires harness, store and reporters. extra reporters (console etc.)
// receive output alongside the log reporter.
func newApp(cfg *config.Config, extra ...bench.Reporter) (*app, error) {
	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.BTreeDegree)
	if err != nil {
		return nil, err
	}

	reporters := append([]bench.Reporter{report.NewLogReporter(logrus.StandardLogger())}, extra...)

	a := &app{cfg: cfg}
	if cfg.Report.Collector != "" {
		remote, err := client.Dial(cfg.Report.Collector, logrus.StandardLogger())
		if err != nil {
			store.Close()
			return nil, err
		}
		a.remote = remote
		reporters = append(reporters, remote)
	}

	gen := dataset.NewSeededGenerator(cfg.Benchmark.Seed)
	h := bench.NewHarness(gen, bench.SystemClock{}, report.Multi(reporters...))
	a.session = bench.NewSession(h, store, cfg.Benchmark.Sizes)
	return a, nil
}

func (a *app) Close() {
	if a.remote != nil {
		a.remote.Close()
	}
	a.session.Store().Close()
}

func (a *app) showResults(w io.Writer) error {
	run, err := a.session.Results()
	if err != nil {
		return err
	}
	report.WriteTable(w, run.Results)
	<-report.Display(w, run.Results, a.cfg.Report.ChartWidth)
	return nil
}

// consoleOrNil keeps a nil *Console out of the reporter list.
func consoleOrNil(c *report.Console) []bench.Reporter {
	if c == nil {
		return nil
	}
	return []bench.Reporter{c}
}
