package common

import "testing"

func TestByRankMatchesLess(t *testing.T) {
	a := User{Name: "a", Rank: 3}
	b := User{Name: "b", Rank: 7}
	tie := User{Name: "c", Rank: 3}

	if !ByRank(a, b) || !a.Less(b) {
		t.Errorf("rank 3 should sort before rank 7")
	}
	if ByRank(b, a) || b.Less(a) {
		t.Errorf("rank 7 should not sort before rank 3")
	}
	if ByRank(a, tie) || ByRank(tie, a) {
		t.Errorf("equal ranks must not compare less either way")
	}
}
