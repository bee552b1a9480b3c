package app

import (
	"sync"
	"testing"
)

func TestGlobalAccumulator_StartsAtZero(t *testing.T) {
	acc := NewGlobalAccumulator()
	if acc.Total() != 0 {
		t.Errorf("new accumulator Total() = %v, want 0", acc.Total())
	}
}

func TestGlobalAccumulator_ConcurrentAddsLoseNothing(t *testing.T) {
	const goroutines = 64
	const addsPerGoroutine = 1000

	acc := NewGlobalAccumulator()

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < addsPerGoroutine; i++ {
				acc.Add(1.0)
			}
		}()
	}
	wg.Wait()

	// Sums of 1.0 are exact in floating point, so any deviation is a
	// lost update.
	want := float64(goroutines * addsPerGoroutine)
	if got := acc.Total(); got != want {
		t.Errorf("Total() = %v, want %v", got, want)
	}
}
