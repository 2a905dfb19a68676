package report

import (
	"fmt"
	"io"

	"sortbench/pkg/bench"
	"sortbench/pkg/common"
)

// Console prints one table row per result as it arrives.
type Console struct {
	w         io.Writer
	verbose   bool
	headerOut bool
}

func NewConsole(w io.Writer, verbose bool) *Console {
	return &Console{w: w, verbose: verbose}
}

func (c *Console) Report(res common.Result) {
	if !c.headerOut {
		WriteTableHeader(c.w)
		c.headerOut = true
	}
	WriteTableRow(c.w, res)
}

func (c *Console) Logf(format string, args ...interface{}) {
	if c.verbose {
		fmt.Fprintf(c.w, format+"\n", args...)
	}
}

func WriteTableHeader(w io.Writer) {
	fmt.Fprintf(w, "%12s %16s %16s %8s\n", "Size", "Merge Sort (ms)", "Quick Sort (ms)", "Valid")
	fmt.Fprintln(w, "---------------------------------------------------------")
}

func WriteTableRow(w io.Writer, res common.Result) {
	valid := "yes"
	if !res.Valid() {
		valid = "NO"
	}
	fmt.Fprintf(w, "%12d %16.3f %16.3f %8s\n", res.Size, res.MergeSortMs, res.QuickSortMs, valid)
}

// WriteTable prints a whole run at once.
func WriteTable(w io.Writer, results []common.Result) {
	WriteTableHeader(w)
	for _, res := range results {
		WriteTableRow(w, res)
	}
}

// WriteSingle prints the one-dataset mode output.
func WriteSingle(w io.Writer, run bench.SingleRun) {
	fmt.Fprintln(w, "--- Running Merge Sort ---")
	writeValidation(w, "Merge Sort", run.MergeSortOK)
	fmt.Fprintf(w, "Merge Sort took %g microseconds.\n\n", run.MergeSortUs)

	fmt.Fprintln(w, "--- Running Quick Sort ---")
	writeValidation(w, "Quick Sort", run.QuickSortOK)
	fmt.Fprintf(w, "Quick Sort took %g microseconds.\n\n", run.QuickSortUs)
}

func writeValidation(w io.Writer, name string, ok bool) {
	if ok {
		fmt.Fprintf(w, "%s validation successful: Data is sorted correctly.\n", name)
	} else {
		fmt.Fprintf(w, "%s validation FAILED: Data is not sorted correctly.\n", name)
	}
}
