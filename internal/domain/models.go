package domain

import (
	"errors"
)

// Config represents the application configuration
type Config struct {
	Lower      float64 `yaml:"lower"`
	Upper      float64 `yaml:"upper"`
	Trapezoids int     `yaml:"trapezoids"`
	Workers    int     `yaml:"workers"`
	LogLevel   string  `yaml:"log_level"`
	LogFile    string  `yaml:"log_file"`
	Decimals   int     `yaml:"decimals"`
}

// Validate reports configuration values the integrator cannot run with.
// Lower > Upper is deliberately not rejected: it yields a valid
// negative-oriented estimate (the step h becomes negative).
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}
	if c.Trapezoids < 0 {
		return ErrInvalidTrapezoids
	}
	return nil
}

// IntegrationSpec represents the interval [A, B] subdivided into N
// trapezoids of step H. Constructed once, read-only afterwards.
type IntegrationSpec struct {
	A float64
	B float64
	N int
	H float64
}

// NewIntegrationSpec builds a spec for the interval [a, b] with n
// trapezoids. a > b is allowed and produces a negative step.
func NewIntegrationSpec(a, b float64, n int) (IntegrationSpec, error) {
	if n <= 0 {
		return IntegrationSpec{}, ErrInvalidTrapezoids
	}
	return IntegrationSpec{
		A: a,
		B: b,
		N: n,
		H: (b - a) / float64(n),
	}, nil
}

// Result holds one completed integration run for reporting.
type Result struct {
	Workers    int
	Trapezoids int
	Lower      float64
	Upper      float64
	Estimate   float64
}

// Quadratic is the integrand of the reference problem: f(x) = x^2 - 4x + 8.
func Quadratic(x float64) float64 {
	return x*x - 4*x + 8
}

var (
	ErrInvalidWorkers    = errors.New("workers must be positive")
	ErrInvalidTrapezoids = errors.New("trapezoid count must be positive")
)
