package domain

// Integrand is a real-valued function of one variable.
type Integrand func(x float64) float64

// Integrator estimates the definite integral of f over spec.
type Integrator interface {
	Integrate(spec IntegrationSpec, f Integrand) (float64, error)
}
