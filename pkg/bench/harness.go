// Package bench drives the sort engines over generated datasets, times them
// and checks their output.
package bench

import (
	"slices"
	"time"

	"sortbench/pkg/common"
	"sortbench/pkg/dataset"
	"sortbench/pkg/monitor"
	"sortbench/pkg/sorting"
)

type sortFunc func([]common.User, sorting.LessFunc[common.User])

type Harness struct {
	gen      *dataset.Generator
	clock    Clock
	reporter Reporter
	stats    *monitor.RunStats

	mergeSort sortFunc
	quickSort sortFunc
}

// NewHarness wires a harness. A nil clock means SystemClock, a nil reporter
// discards output.
func NewHarness(gen *dataset.Generator, clock Clock, reporter Reporter) *Harness {
	if gen == nil {
		gen = dataset.NewGenerator(nil)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if reporter == nil {
		reporter = NopReporter
	}
	return &Harness{
		gen:       gen,
		clock:     clock,
		reporter:  reporter,
		stats:     monitor.NewRunStats(),
		mergeSort: sorting.MergeSortFunc[common.User],
		quickSort: sorting.QuickSortFunc[common.User],
	}
}

func (h *Harness) Stats() *monitor.RunStats {
	return h.stats
}

// Run benchmarks every size in order and returns one Result per size.
// Validation failures are reported and flagged on the result; they never
// stop the run.
func (h *Harness) Run(sizes []int) []common.Result {
	h.stats.RecordRun()
	results := make([]common.Result, 0, len(sizes))

	for _, size := range sizes {
		h.reporter.Logf("[Bench] Generating dataset of %d users", size)
		original := h.gen.Generate(size)

		mergeData := slices.Clone(original)
		quickData := slices.Clone(original)

		mergeDur, mergeOK := h.timeSort("Merge Sort", h.mergeSort, mergeData)
		quickDur, quickOK := h.timeSort("Quick Sort", h.quickSort, quickData)

		res := common.Result{
			Size:        size,
			MergeSortMs: millis(mergeDur),
			QuickSortMs: millis(quickDur),
			MergeSortOK: mergeOK,
			QuickSortOK: quickOK,
		}
		h.reporter.Report(res)
		results = append(results, res)
	}
	return results
}

// timeSort runs one engine on data and validates the output.
func (h *Harness) timeSort(name string, fn sortFunc, data []common.User) (time.Duration, bool) {
	start := h.clock.Now()
	fn(data, common.ByRank)
	end := h.clock.Now()

	h.stats.RecordSort(len(data))
	ok := sorting.IsSortedFunc(data, common.ByRank)
	if !ok {
		h.stats.RecordFailure()
		h.reporter.Logf("[Bench] %s validation FAILED for %d users: data is not sorted correctly", name, len(data))
	}

	d := end.Sub(start)
	if d < 0 {
		d = 0
	}
	return d, ok
}

// SingleRun is the outcome of the one-dataset mode, timed in microseconds.
type SingleRun struct {
	Size        int
	MergeSortUs float64
	QuickSortUs float64
	MergeSortOK bool
	QuickSortOK bool
}

// RunSingle sorts one dataset of the given size with both engines.
func (h *Harness) RunSingle(size int) SingleRun {
	h.stats.RecordRun()
	original := h.gen.Generate(size)
	mergeData := slices.Clone(original)
	quickData := slices.Clone(original)

	mergeDur, mergeOK := h.timeSort("Merge Sort", h.mergeSort, mergeData)
	quickDur, quickOK := h.timeSort("Quick Sort", h.quickSort, quickData)

	return SingleRun{
		Size:        size,
		MergeSortUs: micros(mergeDur),
		QuickSortUs: micros(quickDur),
		MergeSortOK: mergeOK,
		QuickSortOK: quickOK,
	}
}

func millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / float64(time.Millisecond)
}

func micros(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / float64(time.Microsecond)
}
