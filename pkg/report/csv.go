package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"sortbench/pkg/common"
)

var csvHeader = []string{"Size", "MergeSortMs", "QuickSortMs", "MergeSortOK", "QuickSortOK"}

// WriteCSV writes results with a header row.
func WriteCSV(w io.Writer, results []common.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Size),
			strconv.FormatFloat(r.MergeSortMs, 'f', 3, 64),
			strconv.FormatFloat(r.QuickSortMs, 'f', 3, 64),
			strconv.FormatBool(r.MergeSortOK),
			strconv.FormatBool(r.QuickSortOK),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
