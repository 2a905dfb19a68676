package bench

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"sortbench/pkg/common"
	"sortbench/pkg/storage"
)

// DefaultSizes are the dataset sizes of the "run benchmarks" action.
var DefaultSizes = []int{1000, 5000, 10000, 50000, 100000, 500000, 1000000, 2000000}

// Session holds the state behind the interactive "run benchmarks" and
// "show results" actions. Runs are serialized.
type Session struct {
	harness *Harness
	store   storage.ResultStore
	sizes   []int
	mu      sync.Mutex
}

func NewSession(h *Harness, store storage.ResultStore, sizes []int) *Session {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	return &Session{
		harness: h,
		store:   store,
		sizes:   slices.Clone(sizes),
	}
}

func (s *Session) Sizes() []int {
	return slices.Clone(s.sizes)
}

func (s *Session) Harness() *Harness {
	return s.harness
}

func (s *Session) Store() storage.ResultStore {
	return s.store
}

// RunAll benchmarks every configured size and records the run.
func (s *Session) RunAll() (storage.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runLocked()
}

func (s *Session) runLocked() (storage.Run, error) {
	results := s.harness.Run(s.sizes)
	id, err := s.store.Save(results)
	if err != nil {
		return storage.Run{}, fmt.Errorf("save run: %w", err)
	}
	return storage.Run{ID: id, Results: results}, nil
}

// Results returns the latest run, benchmarking first if nothing has run yet.
func (s *Session) Results() (storage.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, results, err := s.store.Latest()
	if errors.Is(err, storage.ErrNoRuns) {
		s.harness.reporter.Logf("[Session] No results yet, running benchmarks first")
		return s.runLocked()
	}
	if err != nil {
		return storage.Run{}, err
	}
	return storage.Run{ID: id, Results: results}, nil
}

func (s *Session) HasRun() bool {
	_, _, err := s.store.Latest()
	return err == nil
}

func (s *Session) Summary() ([]storage.SizeSummary, error) {
	return s.store.Summary()
}

func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Reset()
}

// Snapshot copies results so readers on other goroutines never alias the
// session's slices.
func Snapshot(results []common.Result) []common.Result {
	return slices.Clone(results)
}
