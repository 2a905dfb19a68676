package storage

import (
	"errors"
	"fmt"

	"sortbench/pkg/common"
)

var ErrNoRuns = errors.New("storage: no benchmark runs recorded")

// Run is one full pass of the harness over the configured sizes.
type Run struct {
	ID      int64           `json:"run_id"`
	Results []common.Result `json:"results"`
}

// SizeSummary averages every stored sample of one dataset size.
type SizeSummary struct {
	Size           int     `json:"size"`
	Samples        int     `json:"samples"`
	AvgMergeSortMs float64 `json:"avg_merge_sort_ms"`
	AvgQuickSortMs float64 `json:"avg_quick_sort_ms"`
	Failures       int     `json:"failures"`
}

// ResultStore keeps benchmark runs in memory for the lifetime of the process.
type ResultStore interface {
	Save(results []common.Result) (int64, error)
	Latest() (int64, []common.Result, error)
	All() ([]Run, error)
	Summary() ([]SizeSummary, error)
	Reset() error
	Close()
}

const (
	BackendBTree  = "btree"
	BackendSQLite = "sqlite"
)

// Open builds the store named by backend. degree only applies to the btree.
func Open(backend string, degree int) (ResultStore, error) {
	switch backend {
	case "", BackendBTree:
		if degree < 2 {
			degree = 32
		}
		return NewBTreeStore(degree), nil
	case BackendSQLite:
		return NewSQLiteStore()
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
