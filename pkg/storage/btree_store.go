package storage

import (
	"sort"
	"sync"

	"github.com/google/btree"

	"sortbench/pkg/common"
)

type item struct {
	run int64
	seq int
	res common.Result
}

func (i item) Less(than btree.Item) bool {
	o := than.(item)
	if i.run != o.run {
		return i.run < o.run
	}
	return i.seq < o.seq
}

// BTreeStore keeps results ordered by (run id, position within run).
type BTreeStore struct {
	tree    *btree.BTree
	lock    sync.RWMutex
	runs    []int64
	lastRun int64
}

func NewBTreeStore(degree int) *BTreeStore {
	return &BTreeStore{
		tree: btree.New(degree),
	}
}

func (s *BTreeStore) Save(results []common.Result) (int64, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.lastRun++
	s.runs = append(s.runs, s.lastRun)
	for i, r := range results {
		s.tree.ReplaceOrInsert(item{run: s.lastRun, seq: i, res: r})
	}
	return s.lastRun, nil
}

func (s *BTreeStore) Latest() (int64, []common.Result, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.lastRun == 0 {
		return 0, nil, ErrNoRuns
	}
	return s.lastRun, s.runLocked(s.lastRun), nil
}

func (s *BTreeStore) runLocked(id int64) []common.Result {
	results := make([]common.Result, 0)
	s.tree.AscendGreaterOrEqual(item{run: id}, func(i btree.Item) bool {
		it := i.(item)
		if it.run != id {
			return false
		}
		results = append(results, it.res)
		return true
	})
	return results
}

func (s *BTreeStore) All() ([]Run, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	runs := make([]Run, 0, len(s.runs))
	for _, id := range s.runs {
		runs = append(runs, Run{ID: id, Results: s.runLocked(id)})
	}
	return runs, nil
}

func (s *BTreeStore) Summary() ([]SizeSummary, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	bySize := make(map[int]*SizeSummary)
	s.tree.Ascend(func(i btree.Item) bool {
		r := i.(item).res
		sum, ok := bySize[r.Size]
		if !ok {
			sum = &SizeSummary{Size: r.Size}
			bySize[r.Size] = sum
		}
		sum.Samples++
		sum.AvgMergeSortMs += r.MergeSortMs
		sum.AvgQuickSortMs += r.QuickSortMs
		if !r.Valid() {
			sum.Failures++
		}
		return true
	})

	out := make([]SizeSummary, 0, len(bySize))
	for _, sum := range bySize {
		sum.AvgMergeSortMs /= float64(sum.Samples)
		sum.AvgQuickSortMs /= float64(sum.Samples)
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Size < out[j].Size })
	return out, nil
}

func (s *BTreeStore) Reset() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.tree.Clear(false)
	s.runs = nil
	s.lastRun = 0
	return nil
}

func (s *BTreeStore) Close() {}
