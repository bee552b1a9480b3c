package app

import (
	"sync"

	"go.uber.org/zap"

	"trapezoid-integration/internal/domain"
	"trapezoid-integration/pkg/quadrature"
)

// ParallelIntegrator estimates definite integrals with the composite
// trapezoidal rule, splitting the trapezoid indices into one balanced
// block per worker and reducing the partial sums into a mutex-guarded
// accumulator.
type ParallelIntegrator struct {
	logger *zap.Logger
	config *domain.Config
}

func NewParallelIntegrator(logger *zap.Logger, config *domain.Config) *ParallelIntegrator {
	return &ParallelIntegrator{
		logger: logger,
		config: config,
	}
}

// Integrate runs config.Workers goroutines, each summing its own block of
// grid points without synchronization and folding the result into the
// accumulator under lock. The final read happens after the join, so it is
// ordered after every worker's reduction. The half-weighted endpoint term
// is added once here, after the reduction, never inside a worker.
func (p *ParallelIntegrator) Integrate(spec domain.IntegrationSpec, f domain.Integrand) (float64, error) {
	workers := p.config.Workers
	if workers <= 0 {
		return 0, domain.ErrInvalidWorkers
	}

	acc := NewGlobalAccumulator()

	var wg sync.WaitGroup
	for id, block := range quadrature.Blocks(workers, spec.N) {
		wg.Add(1)
		p.logger.Debug("Starting worker",
			zap.Int("id", id),
			zap.Int("low", block.Low),
			zap.Int("high", block.High))

		go func(id int, block quadrature.Block) {
			defer wg.Done()

			local := quadrature.PartialSum(f, spec, block)
			acc.Add(local)

			p.logger.Debug("Worker finished",
				zap.Int("id", id),
				zap.Int("points", block.Len()),
				zap.Float64("partial", local))
		}(id, block)
	}
	wg.Wait()

	acc.Add(quadrature.EndpointCorrection(f, spec))

	estimate := acc.Total()
	p.logger.Info("Integration completed",
		zap.Int("workers", workers),
		zap.Int("trapezoids", spec.N),
		zap.Float64("estimate", estimate))

	return estimate, nil
}
