package monitor

import (
	"sync/atomic"
)

type RunStats struct {
	RunCount           uint64
	SortCount          uint64
	ValidationFailures uint64
	SortedElements     uint64
}

func NewRunStats() *RunStats {
	return &RunStats{}
}

func (rs *RunStats) RecordRun() {
	atomic.AddUint64(&rs.RunCount, 1)
}

func (rs *RunStats) RecordSort(elements int) {
	atomic.AddUint64(&rs.SortCount, 1)
	if elements > 0 {
		atomic.AddUint64(&rs.SortedElements, uint64(elements))
	}
}

func (rs *RunStats) RecordFailure() {
	atomic.AddUint64(&rs.ValidationFailures, 1)
}

// FailureRate is the share of sorts whose output failed validation.
func (rs *RunStats) FailureRate() float64 {
	sorts := atomic.LoadUint64(&rs.SortCount)
	if sorts == 0 {
		return 0.0
	}
	return float64(atomic.LoadUint64(&rs.ValidationFailures)) / float64(sorts)
}

func (rs *RunStats) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"runs":                atomic.LoadUint64(&rs.RunCount),
		"sorts":               atomic.LoadUint64(&rs.SortCount),
		"sorted_elements":     atomic.LoadUint64(&rs.SortedElements),
		"validation_failures": atomic.LoadUint64(&rs.ValidationFailures),
		"failure_rate":        rs.FailureRate(),
	}
}
