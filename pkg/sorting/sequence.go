// Package sorting implements textbook merge sort and quick sort over any
// random-access sequence. Both engines work on a half-open range
// [first, last) and take the element order as a comparator.
package sorting

import "cmp"

// LessFunc reports whether a sorts strictly before b.
type LessFunc[T any] func(a, b T) bool

// Ordered is the natural LessFunc for builtin ordered types.
func Ordered[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// Sequence is a finite, mutable, O(1)-indexable container.
type Sequence[T any] interface {
	Len() int
	At(i int) T
	Set(i int, v T)
	Swap(i, j int)
}

// Slice adapts a plain Go slice to Sequence.
type Slice[T any] []T

func (s Slice[T]) Len() int       { return len(s) }
func (s Slice[T]) At(i int) T     { return s[i] }
func (s Slice[T]) Set(i int, v T) { s[i] = v }
func (s Slice[T]) Swap(i, j int)  { s[i], s[j] = s[j], s[i] }

// copyRange extracts [first, last) into a fresh buffer.
func copyRange[T any](seq Sequence[T], first, last int) []T {
	if s, ok := seq.(Slice[T]); ok {
		buf := make([]T, last-first)
		copy(buf, s[first:last])
		return buf
	}
	buf := make([]T, 0, last-first)
	for i := first; i < last; i++ {
		buf = append(buf, seq.At(i))
	}
	return buf
}

// IsSorted reports whether [first, last) is non-decreasing under less.
func IsSorted[T any](seq Sequence[T], first, last int, less LessFunc[T]) bool {
	for i := first + 1; i < last; i++ {
		if less(seq.At(i), seq.At(i-1)) {
			return false
		}
	}
	return true
}

// IsSortedFunc is IsSorted over a whole slice.
func IsSortedFunc[T any](s []T, less LessFunc[T]) bool {
	return IsSorted[T](Slice[T](s), 0, len(s), less)
}
