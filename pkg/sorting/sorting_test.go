package sorting

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"sortbench/pkg/common"
)

type engine struct {
	name string
	sort func(s []common.User, less LessFunc[common.User])
}

var engines = []engine{
	{"merge", MergeSortFunc[common.User]},
	{"quick", QuickSortFunc[common.User]},
}

func randomUsers(rng *rand.Rand, n, maxRank int) []common.User {
	users := make([]common.User, n)
	for i := range users {
		users[i] = common.User{Name: "u" + strconv.Itoa(i), Rank: rng.IntN(maxRank) + 1}
	}
	return users
}

// sameMultiset compares two user slices ignoring order.
func sameMultiset(a, b []common.User) bool {
	if len(a) != len(b) {
		return false
	}
	key := func(x, y common.User) int {
		if x.Rank != y.Rank {
			return x.Rank - y.Rank
		}
		if x.Name < y.Name {
			return -1
		}
		if x.Name > y.Name {
			return 1
		}
		return 0
	}
	ca := slices.Clone(a)
	cb := slices.Clone(b)
	slices.SortFunc(ca, key)
	slices.SortFunc(cb, key)
	return slices.Equal(ca, cb)
}

func TestSortedAndPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	sizes := []int{0, 1, 2, 3, 7, 16, 100, 1000}

	for _, e := range engines {
		for _, n := range sizes {
			for _, maxRank := range []int{1, 10, 1000} {
				input := randomUsers(rng, n, maxRank)
				got := slices.Clone(input)
				e.sort(got, common.ByRank)

				if !IsSortedFunc(got, common.ByRank) {
					t.Fatalf("%s: n=%d maxRank=%d not sorted: %v", e.name, n, maxRank, got)
				}
				if !sameMultiset(input, got) {
					t.Fatalf("%s: n=%d maxRank=%d output is not a permutation of input", e.name, n, maxRank)
				}
			}
		}
	}
}

func TestSortIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, e := range engines {
		data := randomUsers(rng, 500, 50)
		e.sort(data, common.ByRank)
		once := slices.Clone(data)

		e.sort(data, common.ByRank)
		for i := range data {
			if data[i].Rank != once[i].Rank {
				t.Fatalf("%s: second sort changed rank at %d: %d -> %d", e.name, i, once[i].Rank, data[i].Rank)
			}
		}
	}
}

func TestMergeSortIdempotentKeepsExactOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	data := randomUsers(rng, 300, 20)
	MergeSortFunc(data, common.ByRank)
	once := slices.Clone(data)

	MergeSortFunc(data, common.ByRank)
	if !slices.Equal(data, once) {
		t.Fatal("stable sort of sorted input must not move any element")
	}
}

func TestMergeSortIsStable(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	type tagged struct {
		rank int
		seq  int
	}
	data := make([]tagged, 2000)
	for i := range data {
		data[i] = tagged{rank: rng.IntN(10), seq: i}
	}

	MergeSortFunc(data, func(a, b tagged) bool { return a.rank < b.rank })

	for i := 1; i < len(data); i++ {
		if data[i-1].rank == data[i].rank && data[i-1].seq > data[i].seq {
			t.Fatalf("equal ranks out of original order at %d: %+v before %+v", i, data[i-1], data[i])
		}
	}
}

func TestBoundaries(t *testing.T) {
	for _, e := range engines {
		var empty []common.User
		e.sort(empty, common.ByRank)
		if len(empty) != 0 {
			t.Errorf("%s: empty input grew", e.name)
		}

		single := []common.User{{Name: "only", Rank: 42}}
		e.sort(single, common.ByRank)
		if single[0].Name != "only" || single[0].Rank != 42 {
			t.Errorf("%s: single element changed: %+v", e.name, single[0])
		}

		equal := make([]common.User, 64)
		for i := range equal {
			equal[i] = common.User{Name: strconv.Itoa(i), Rank: 7}
		}
		e.sort(equal, common.ByRank)
		for _, u := range equal {
			if u.Rank != 7 {
				t.Fatalf("%s: all-equal input corrupted: %+v", e.name, u)
			}
		}
	}
}

func TestQuickSortSortedInputWorstCase(t *testing.T) {
	const n = 3000
	asc := make([]int, n)
	desc := make([]int, n)
	for i := 0; i < n; i++ {
		asc[i] = i
		desc[i] = n - i
	}

	QuickSortFunc(asc, Ordered[int])
	for i := range asc {
		if asc[i] != i {
			t.Fatalf("ascending input: position %d holds %d", i, asc[i])
		}
	}

	QuickSortFunc(desc, Ordered[int])
	for i := range desc {
		if desc[i] != i+1 {
			t.Fatalf("descending input: position %d holds %d", i, desc[i])
		}
	}
}

func TestEndToEndScenario(t *testing.T) {
	input := []common.User{
		{Name: "first-five", Rank: 5},
		{Name: "three", Rank: 3},
		{Name: "second-five", Rank: 5},
		{Name: "one", Rank: 1},
	}
	want := []int{1, 3, 5, 5}

	for _, e := range engines {
		got := slices.Clone(input)
		e.sort(got, common.ByRank)
		for i, r := range want {
			if got[i].Rank != r {
				t.Fatalf("%s: ranks = %v, want %v", e.name, got, want)
			}
		}
		if e.name == "merge" {
			if got[2].Name != "first-five" || got[3].Name != "second-five" {
				t.Fatalf("merge sort reordered equal ranks: %v", got)
			}
		}
	}
}

func TestPartition(t *testing.T) {
	data := Slice[int]{9, 1, 8, 2, 7, 5}
	p := Partition[int](data, 0, len(data), Ordered[int])

	if data[p] != 5 {
		t.Fatalf("pivot landed as %d at %d, want 5", data[p], p)
	}
	for i := 0; i < p; i++ {
		if data[i] >= 5 {
			t.Errorf("left of pivot holds %d", data[i])
		}
	}
	for i := p + 1; i < len(data); i++ {
		if data[i] < 5 {
			t.Errorf("right of pivot holds %d", data[i])
		}
	}
}

func TestSubRangeOnly(t *testing.T) {
	data := Slice[int]{9, 8, 7, 6, 5, 4, 3, 2, 1}
	MergeSort[int](data, 2, 6, Ordered[int])
	if want := (Slice[int]{9, 8, 4, 5, 6, 7, 3, 2, 1}); !slices.Equal(data, want) {
		t.Fatalf("merge sub-range: got %v want %v", data, want)
	}

	data = Slice[int]{9, 8, 7, 6, 5, 4, 3, 2, 1}
	QuickSort[int](data, 2, 6, Ordered[int])
	if want := (Slice[int]{9, 8, 4, 5, 6, 7, 3, 2, 1}); !slices.Equal(data, want) {
		t.Fatalf("quick sub-range: got %v want %v", data, want)
	}
}

// ring is a Sequence that is not a Slice, to exercise the generic path.
type ring struct {
	buf   []int
	start int
}

func (r *ring) Len() int      { return len(r.buf) }
func (r *ring) idx(i int) int { return (r.start + i) % len(r.buf) }
func (r *ring) At(i int) int  { return r.buf[r.idx(i)] }
func (r *ring) Set(i, v int)  { r.buf[r.idx(i)] = v }

func (r *ring) Swap(i, j int) {
	a, b := r.idx(i), r.idx(j)
	r.buf[a], r.buf[b] = r.buf[b], r.buf[a]
}

func TestCustomSequence(t *testing.T) {
	for _, sortFn := range []func(Sequence[int], int, int, LessFunc[int]){MergeSort[int], QuickSort[int]} {
		r := &ring{buf: []int{4, 9, 1, 7, 3, 8, 2}, start: 3}
		sortFn(r, 0, r.Len(), Ordered[int])
		if !IsSorted[int](r, 0, r.Len(), Ordered[int]) {
			t.Fatalf("ring not sorted: %v (start %d)", r.buf, r.start)
		}
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		in   []int
		want bool
	}{
		{nil, true},
		{[]int{1}, true},
		{[]int{1, 1, 2}, true},
		{[]int{2, 1}, false},
		{[]int{1, 3, 2, 4}, false},
	}
	for _, tt := range tests {
		if got := IsSortedFunc(tt.in, Ordered[int]); got != tt.want {
			t.Errorf("IsSortedFunc(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
