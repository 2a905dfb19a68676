// Package report turns harness output into log lines, console tables,
// CSV and text charts.
package report

import (
	"github.com/sirupsen/logrus"

	"sortbench/pkg/common"
)

// LogReporter writes every result and progress line through logrus.
type LogReporter struct {
	log logrus.FieldLogger
}

func NewLogReporter(log logrus.FieldLogger) *LogReporter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogReporter{log: log}
}

func (r *LogReporter) Report(res common.Result) {
	entry := r.log.WithFields(logrus.Fields{
		"size":          res.Size,
		"merge_sort_ms": res.MergeSortMs,
		"quick_sort_ms": res.QuickSortMs,
	})
	if !res.Valid() {
		entry.WithFields(logrus.Fields{
			"merge_sort_ok": res.MergeSortOK,
			"quick_sort_ok": res.QuickSortOK,
		}).Warn("[Bench] Result with failed validation")
		return
	}
	entry.Info("[Bench] Result")
}

func (r *LogReporter) Logf(format string, args ...interface{}) {
	r.log.Debugf(format, args...)
}
