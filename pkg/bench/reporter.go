package bench

import "sortbench/pkg/common"

// Reporter consumes harness output: one Report per tested size and free-form
// progress lines.
type Reporter interface {
	Report(res common.Result)
	Logf(format string, args ...interface{})
}

type nopReporter struct{}

func (nopReporter) Report(common.Result)        {}
func (nopReporter) Logf(string, ...interface{}) {}

// NopReporter discards everything.
var NopReporter Reporter = nopReporter{}
