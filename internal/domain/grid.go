package domain

import (
	"errors"
)

var ErrEmptyGrid = errors.New("grid requires at least one trapezoid")

// SampleGrid evaluates f at the n+1 equally spaced points of spec, returning
// abscissae in ascending order regardless of the spec's orientation. When
// a > b the grid runs from b to a and the caller must negate any integral
// computed over it.
func SampleGrid(spec IntegrationSpec, f Integrand) ([]float64, []float64, error) {
	if spec.N <= 0 {
		return nil, nil, ErrEmptyGrid
	}

	lo, h := spec.A, spec.H
	if spec.H < 0 {
		lo, h = spec.B, -spec.H
	}

	xs := make([]float64, spec.N+1)
	fs := make([]float64, spec.N+1)
	for i := range xs {
		x := lo + float64(i)*h
		xs[i] = x
		fs[i] = f(x)
	}
	return xs, fs, nil
}
