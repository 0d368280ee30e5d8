package namefilter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSharesRemainderGoesFirst(t *testing.T) {
	tests := []struct {
		total, n int
		want     []int
	}{
		{total: 10, n: 3, want: []int{4, 3, 3}},
		{total: 11, n: 3, want: []int{4, 4, 3}},
		{total: 9, n: 3, want: []int{3, 3, 3}},
		{total: 2, n: 4, want: []int{1, 1, 0, 0}},
		{total: 0, n: 2, want: []int{0, 0}},
		{total: 5, n: 0, want: nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Shares(tt.total, tt.n)); diff != "" {
			t.Fatalf("Shares(%d,%d) mismatch (-want +got):\n%s", tt.total, tt.n, diff)
		}
	}
}

func TestDistributeSlicesPool(t *testing.T) {
	pool := roll("G", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J")
	want := [][]string{{"A", "B", "C", "D"}, {"E", "F", "G"}, {"H", "I", "J"}}
	for pos := 0; pos < 3; pos++ {
		got := labels(Distribute(pool, 3, pos))
		if diff := cmp.Diff(want[pos], got); diff != "" {
			t.Fatalf("position %d mismatch (-want +got):\n%s", pos, diff)
		}
	}
}

func TestDistributeEdgeCases(t *testing.T) {
	pool := roll("G", "A", "B")
	if got := Distribute(pool, 0, 0); len(got) != 0 {
		t.Fatalf("empty segment should yield nothing, got %v", labels(got))
	}
	if got := Distribute(pool, 2, 5); len(got) != 0 {
		t.Fatalf("out-of-range position should yield nothing, got %v", labels(got))
	}
	if got := Distribute(nil, 3, 1); len(got) != 0 {
		t.Fatalf("empty pool should yield nothing, got %v", labels(got))
	}
}
