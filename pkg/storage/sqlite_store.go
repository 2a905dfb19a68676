package storage

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"sortbench/pkg/common"

	_ "modernc.org/sqlite"
)

// SQLiteStore holds results in a private in-memory SQLite database. A
// ":memory:" database lives on a single connection, so the pool is capped at one.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

func NewSQLiteStore() (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	query := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id     INTEGER PRIMARY KEY,
		created_at INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS results (
		run_id   INTEGER NOT NULL,
		seq      INTEGER NOT NULL,
		size     INTEGER NOT NULL,
		merge_ms REAL    NOT NULL,
		quick_ms REAL    NOT NULL,
		merge_ok INTEGER NOT NULL,
		quick_ok INTEGER NOT NULL,
		PRIMARY KEY (run_id, seq)
	);`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("init results table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(results []common.Result) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}

	res, err := tx.Exec("INSERT INTO runs (created_at) VALUES (?)", time.Now().UnixNano())
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	stmt, err := tx.Prepare("INSERT INTO results (run_id, seq, size, merge_ms, quick_ms, merge_ok, quick_ok) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	defer stmt.Close()

	for i, r := range results {
		if _, err := stmt.Exec(runID, i, r.Size, r.MergeSortMs, r.QuickSortMs, boolToInt(r.MergeSortOK), boolToInt(r.QuickSortOK)); err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	return runID, tx.Commit()
}

func (s *SQLiteStore) Latest() (int64, []common.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var runID sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(run_id) FROM runs").Scan(&runID); err != nil {
		return 0, nil, err
	}
	if !runID.Valid {
		return 0, nil, ErrNoRuns
	}

	results, err := s.queryRun(runID.Int64)
	if err != nil {
		return 0, nil, err
	}
	return runID.Int64, results, nil
}

func (s *SQLiteStore) queryRun(runID int64) ([]common.Result, error) {
	rows, err := s.db.Query("SELECT size, merge_ms, quick_ms, merge_ok, quick_ok FROM results WHERE run_id = ? ORDER BY seq ASC", runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]common.Result, 0)
	for rows.Next() {
		var r common.Result
		var mergeOK, quickOK int64
		if err := rows.Scan(&r.Size, &r.MergeSortMs, &r.QuickSortMs, &mergeOK, &quickOK); err != nil {
			return nil, err
		}
		r.MergeSortOK = mergeOK != 0
		r.QuickSortOK = quickOK != 0
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *SQLiteStore) All() ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT run_id FROM runs ORDER BY run_id ASC")
	if err != nil {
		return nil, err
	}
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
	}
	rows.Close()

	runs := make([]Run, 0, len(ids))
	for _, id := range ids {
		results, err := s.queryRun(id)
		if err != nil {
			return nil, err
		}
		runs = append(runs, Run{ID: id, Results: results})
	}
	return runs, nil
}

func (s *SQLiteStore) Summary() ([]SizeSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT size, COUNT(*), AVG(merge_ms), AVG(quick_ms),
		       SUM(CASE WHEN merge_ok = 1 AND quick_ok = 1 THEN 0 ELSE 1 END)
		FROM results
		GROUP BY size
		ORDER BY size ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SizeSummary, 0)
	for rows.Next() {
		var sum SizeSummary
		if err := rows.Scan(&sum.Size, &sum.Samples, &sum.AvgMergeSortMs, &sum.AvgQuickSortMs, &sum.Failures); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM results; DELETE FROM runs;")
	return err
}

func (s *SQLiteStore) Close() {
	s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
