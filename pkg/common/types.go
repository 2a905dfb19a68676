package common

import "fmt"

// User is the unit of data that gets sorted. Only Rank takes part in ordering.
type User struct {
	Name string
	Rank int
}

// Less orders users by rank.
func (u User) Less(other User) bool {
	return u.Rank < other.Rank
}

// String is for debug printing.
func (u User) String() string {
	return fmt.Sprintf("User{Name: %s, Rank: %d}", u.Name, u.Rank)
}

// ByRank is the comparator form of User.Less.
func ByRank(a, b User) bool {
	return a.Less(b)
}

// Result is one row of a benchmark run: the dataset size and how long each
// algorithm took on its own copy of the same dataset.
type Result struct {
	Size        int     `json:"size"`
	MergeSortMs float64 `json:"merge_sort_ms"`
	QuickSortMs float64 `json:"quick_sort_ms"`
	MergeSortOK bool    `json:"merge_sort_ok"`
	QuickSortOK bool    `json:"quick_sort_ok"`
}

// Valid reports whether both algorithms produced sorted output.
func (r Result) Valid() bool {
	return r.MergeSortOK && r.QuickSortOK
}

func (r Result) String() string {
	return fmt.Sprintf("Result{Size: %d, Merge: %.3fms, Quick: %.3fms}", r.Size, r.MergeSortMs, r.QuickSortMs)
}
