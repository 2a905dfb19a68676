package sorting

// MergeSort sorts [first, last) of seq in ascending order. It is stable:
// when two elements compare equal the one from the left half is written first.
func MergeSort[T any](seq Sequence[T], first, last int, less LessFunc[T]) {
	size := last - first
	if size <= 1 {
		return
	}

	middle := first + size/2
	MergeSort(seq, first, middle, less)
	MergeSort(seq, middle, last, less)
	merge(seq, first, middle, last, less)
}

// MergeSortFunc sorts the whole slice with MergeSort.
func MergeSortFunc[T any](s []T, less LessFunc[T]) {
	MergeSort[T](Slice[T](s), 0, len(s), less)
}

// merge combines the sorted runs [first, middle) and [middle, last).
func merge[T any](seq Sequence[T], first, middle, last int, less LessFunc[T]) {
	left := copyRange(seq, first, middle)
	right := copyRange(seq, middle, last)

	li, ri, out := 0, 0, first
	for li < len(left) && ri < len(right) {
		// right only wins when strictly smaller
		if less(right[ri], left[li]) {
			seq.Set(out, right[ri])
			ri++
		} else {
			seq.Set(out, left[li])
			li++
		}
		out++
	}

	for ; li < len(left); li, out = li+1, out+1 {
		seq.Set(out, left[li])
	}
	for ; ri < len(right); ri, out = ri+1, out+1 {
		seq.Set(out, right[ri])
	}
}
