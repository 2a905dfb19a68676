package report

import (
	"sortbench/pkg/bench"
	"sortbench/pkg/common"
)

type multi []bench.Reporter

// Multi fans every call out to each non-nil reporter in order.
func Multi(reporters ...bench.Reporter) bench.Reporter {
	var m multi
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

func (m multi) Report(res common.Result) {
	for _, r := range m {
		r.Report(res)
	}
}

func (m multi) Logf(format string, args ...interface{}) {
	for _, r := range m {
		r.Logf(format, args...)
	}
}
