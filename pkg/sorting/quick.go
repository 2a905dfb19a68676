package sorting

// QuickSort sorts [first, last) of seq in place. The pivot is always the last
// element of the range, so already sorted or reverse sorted input degrades to
// O(N^2) time and O(N) recursion depth. Not stable.
func QuickSort[T any](seq Sequence[T], first, last int, less LessFunc[T]) {
	if last-first <= 1 {
		return
	}

	p := Partition(seq, first, last, less)
	QuickSort(seq, first, p, less)
	QuickSort(seq, p+1, last, less)
}

// QuickSortFunc sorts the whole slice with QuickSort.
func QuickSortFunc[T any](s []T, less LessFunc[T]) {
	QuickSort[T](Slice[T](s), 0, len(s), less)
}

// Partition rearranges the non-empty range [first, last) around its last
// element and returns the pivot's final index. Everything before the index is
// strictly less than the pivot, everything after is not.
func Partition[T any](seq Sequence[T], first, last int, less LessFunc[T]) int {
	pivot := last - 1
	i := first

	for j := first; j < pivot; j++ {
		if less(seq.At(j), seq.At(pivot)) {
			seq.Swap(i, j)
			i++
		}
	}
	seq.Swap(i, pivot)
	return i
}
