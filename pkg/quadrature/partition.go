package quadrature

// Block is the contiguous range of trapezoid indices owned by one worker,
// inclusive on both ends. Low > High means the block is empty, which is
// legal whenever there are more workers than indices.
type Block struct {
	Low  int
	High int
}

// BlockLow returns the first index owned by worker id when n indices are
// split into balanced contiguous blocks across workers.
func BlockLow(id, workers, n int) int {
	return id * n / workers
}

// BlockHigh returns the last index owned by worker id.
func BlockHigh(id, workers, n int) int {
	return BlockLow(id+1, workers, n) - 1
}

// NewBlock returns worker id's block of [0, n-1].
func NewBlock(id, workers, n int) Block {
	return Block{
		Low:  BlockLow(id, workers, n),
		High: BlockHigh(id, workers, n),
	}
}

// Blocks partitions [0, n-1] into one block per worker. The blocks are
// contiguous, disjoint, cover the range exactly, and differ in size by at
// most one, with any remainder going to the earliest workers.
func Blocks(workers, n int) []Block {
	blocks := make([]Block, workers)
	for id := range blocks {
		blocks[id] = NewBlock(id, workers, n)
	}
	return blocks
}

// Len returns the number of indices in the block.
func (b Block) Len() int {
	if b.High < b.Low {
		return 0
	}
	return b.High - b.Low + 1
}
