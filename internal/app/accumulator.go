package app

import (
	"sync"
)

// GlobalAccumulator is the single shared total the workers reduce into.
// The coordinator owns it before the workers start and after the join;
// during the parallel phase every mutation goes through Add.
type GlobalAccumulator struct {
	mu    sync.Mutex
	total float64
}

func NewGlobalAccumulator() *GlobalAccumulator {
	return &GlobalAccumulator{}
}

// Add folds one partial sum into the total. The critical section is the
// single addition.
func (g *GlobalAccumulator) Add(v float64) {
	g.mu.Lock()
	g.total += v
	g.mu.Unlock()
}

// Total returns the accumulated value. The coordinator must not call it
// before all workers have joined.
func (g *GlobalAccumulator) Total() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.total
}
