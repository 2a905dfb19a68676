package report

import (
	"fmt"
	"io"
	"strings"

	"sortbench/pkg/bench"
	"sortbench/pkg/common"
)

const DefaultChartWidth = 50

// Chart draws one pair of horizontal bars per size, scaled to the slowest
// timing in the set.
func Chart(w io.Writer, results []common.Result, width int) {
	if width <= 0 {
		width = DefaultChartWidth
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "(no results)")
		return
	}

	maxMs := 0.0
	for _, r := range results {
		maxMs = max(maxMs, r.MergeSortMs, r.QuickSortMs)
	}

	fmt.Fprintln(w, "Sort time by dataset size (M = merge sort, Q = quick sort)")
	for _, r := range results {
		fmt.Fprintf(w, "%10d M |%s %.3fms\n", r.Size, bar(r.MergeSortMs, maxMs, width, '#'), r.MergeSortMs)
		fmt.Fprintf(w, "%10s Q |%s %.3fms\n", "", bar(r.QuickSortMs, maxMs, width, '='), r.QuickSortMs)
	}
}

func bar(v, maxV float64, width int, ch byte) string {
	n := 0
	if maxV > 0 {
		n = int(v / maxV * float64(width))
	}
	if n == 0 && v > 0 {
		n = 1
	}
	return strings.Repeat(string(ch), n) + strings.Repeat(" ", width-n)
}

// Display renders the chart on its own goroutine from a private copy of
// results. The returned channel closes when drawing is done; callers may
// ignore it.
func Display(w io.Writer, results []common.Result, width int) <-chan struct{} {
	snapshot := bench.Snapshot(results)
	done := make(chan struct{})
	go func() {
		defer close(done)
		var sb strings.Builder
		Chart(&sb, snapshot, width)
		io.WriteString(w, sb.String())
	}()
	return done
}
