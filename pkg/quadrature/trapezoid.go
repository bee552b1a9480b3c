package quadrature

import (
	"gonum.org/v1/gonum/integrate"

	"trapezoid-integration/internal/domain"
)

// PartialSum computes one worker's share of the composite trapezoidal
// estimate: h times the sum of f over the interior grid points of the
// block. Index 0 is skipped in every block; the weight of both endpoints
// comes exclusively from EndpointCorrection, so the correction is never
// double counted no matter how the range is partitioned.
func PartialSum(f domain.Integrand, spec domain.IntegrationSpec, b Block) float64 {
	low := b.Low
	if low < 1 {
		low = 1
	}

	sum := 0.0
	for i := low; i <= b.High; i++ {
		sum += f(spec.A + float64(i)*spec.H)
	}
	return sum * spec.H
}

// EndpointCorrection is the half-weighted endpoint term of the composite
// rule, h*(f(a)+f(b))/2. It must be added to the reduced partial sums
// exactly once per run.
func EndpointCorrection(f domain.Integrand, spec domain.IntegrationSpec) float64 {
	return spec.H * (f(spec.A) + f(spec.B)) / 2
}

// Reference computes the same estimate sequentially through gonum's
// trapezoidal rule over the sampled grid. Used as the oracle the parallel
// path is checked against. A reversed spec (a > b) is integrated over the
// ascending grid and negated, since integrate.Trapezoidal requires sorted
// abscissae.
func Reference(f domain.Integrand, spec domain.IntegrationSpec) (float64, error) {
	xs, fs, err := domain.SampleGrid(spec, f)
	if err != nil {
		return 0, err
	}

	v := integrate.Trapezoidal(xs, fs)
	if spec.H < 0 {
		v = -v
	}
	return v, nil
}
