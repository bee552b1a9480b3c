package quadrature

import (
	"testing"
)

func TestBlocks_CoverageAndDisjointness(t *testing.T) {
	for n := 0; n <= 40; n++ {
		for workers := 1; workers <= 16; workers++ {
			blocks := Blocks(workers, n)
			if len(blocks) != workers {
				t.Fatalf("Blocks(%d, %d) returned %d blocks", workers, n, len(blocks))
			}

			owners := make([]int, n)
			for id, b := range blocks {
				for i := b.Low; i <= b.High; i++ {
					if i < 0 || i >= n {
						t.Fatalf("workers=%d n=%d: block %d owns out-of-range index %d", workers, n, id, i)
					}
					owners[i]++
				}
			}
			for i, count := range owners {
				if count != 1 {
					t.Errorf("workers=%d n=%d: index %d owned %d times", workers, n, i, count)
				}
			}
		}
	}
}

func TestBlocks_Contiguous(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 100, 1000000} {
		for workers := 1; workers <= 8; workers++ {
			next := 0
			for id, b := range Blocks(workers, n) {
				if b.Len() == 0 {
					continue
				}
				if b.Low != next {
					t.Errorf("workers=%d n=%d: block %d starts at %d, want %d", workers, n, id, b.Low, next)
				}
				next = b.High + 1
			}
			if next != n {
				t.Errorf("workers=%d n=%d: blocks end at %d, want %d", workers, n, next, n)
			}
		}
	}
}

func TestBlocks_Balance(t *testing.T) {
	for n := 0; n <= 40; n++ {
		for workers := 1; workers <= 16; workers++ {
			minLen, maxLen := n, 0
			for _, b := range Blocks(workers, n) {
				l := b.Len()
				if l < minLen {
					minLen = l
				}
				if l > maxLen {
					maxLen = l
				}
			}
			if maxLen-minLen > 1 {
				t.Errorf("workers=%d n=%d: block sizes range from %d to %d", workers, n, minLen, maxLen)
			}
		}
	}
}

func TestBlocks_KnownPartitions(t *testing.T) {
	tests := []struct {
		workers, n int
		want       []Block
	}{
		{workers: 1, n: 5, want: []Block{{0, 4}}},
		{workers: 2, n: 10, want: []Block{{0, 4}, {5, 9}}},
		{workers: 4, n: 10, want: []Block{{0, 1}, {2, 4}, {5, 6}, {7, 9}}},
		{workers: 3, n: 2, want: []Block{{0, -1}, {0, 0}, {1, 1}}},
	}

	for _, tt := range tests {
		got := Blocks(tt.workers, tt.n)
		for id := range tt.want {
			if got[id] != tt.want[id] {
				t.Errorf("Blocks(%d, %d)[%d] = %+v, want %+v",
					tt.workers, tt.n, id, got[id], tt.want[id])
			}
		}
	}
}

func TestBlocks_MoreWorkersThanIndices(t *testing.T) {
	blocks := Blocks(4, 1)

	nonEmpty := 0
	for id, b := range blocks {
		if b.Len() < 0 {
			t.Fatalf("block %d has negative length", id)
		}
		if b.Len() > 0 {
			nonEmpty++
			if b.Low != 0 || b.High != 0 {
				t.Errorf("block %d = [%d, %d], want [0, 0]", id, b.Low, b.High)
			}
		}
	}
	if nonEmpty != 1 {
		t.Errorf("got %d non-empty blocks for n=1, want 1", nonEmpty)
	}
}

func TestBlockLen_EmptyBlock(t *testing.T) {
	b := Block{Low: 3, High: 2}
	if b.Len() != 0 {
		t.Errorf("empty block Len() = %d, want 0", b.Len())
	}
}
