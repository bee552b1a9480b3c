package infrastructure

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"trapezoid-integration/internal/domain"
)

// FlagOverrides holds the command line values that take precedence over the
// config file. Unset flags keep their sentinel values (0, NaN, "") and
// leave the file values untouched.
type FlagOverrides struct {
	Workers    *int
	Trapezoids *int
	Lower      *float64
	Upper      *float64
	LogLevel   *string
}

// BindFlags registers the override flags. Call before flag.Parse.
func BindFlags() *FlagOverrides {
	return &FlagOverrides{
		Workers:    flag.Int("workers", 0, "Number of worker goroutines"),
		Trapezoids: flag.Int("trapezoids", 0, "Number of trapezoids"),
		Lower:      flag.Float64("lower", math.NaN(), "Lower integration bound"),
		Upper:      flag.Float64("upper", math.NaN(), "Upper integration bound"),
		LogLevel:   flag.String("log-level", "", "Log level"),
	}
}

type YAMLConfigReader struct {
	logger *zap.Logger
	flags  *FlagOverrides
}

func NewYAMLConfigReader(logger *zap.Logger, flags *FlagOverrides) *YAMLConfigReader {
	return &YAMLConfigReader{logger: logger, flags: flags}
}

// ReadConfig loads the YAML file, applies command line overrides and fills
// in defaults. A missing file is not an error: the reference problem is
// fully described by the defaults.
func (r *YAMLConfigReader) ReadConfig(path string) (*domain.Config, error) {
	var config domain.Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		r.logger.Warn("Config file not found, using defaults", zap.String("path", path))
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	r.applyFlagOverrides(&config)
	r.setDefaults(&config)

	return &config, nil
}

func (r *YAMLConfigReader) applyFlagOverrides(config *domain.Config) {
	if r.flags == nil {
		return
	}
	if *r.flags.Workers != 0 {
		config.Workers = *r.flags.Workers
	}
	if *r.flags.Trapezoids != 0 {
		config.Trapezoids = *r.flags.Trapezoids
	}
	if !math.IsNaN(*r.flags.Lower) {
		config.Lower = *r.flags.Lower
	}
	if !math.IsNaN(*r.flags.Upper) {
		config.Upper = *r.flags.Upper
	}
	if *r.flags.LogLevel != "" {
		config.LogLevel = *r.flags.LogLevel
	}
}

func (r *YAMLConfigReader) setDefaults(config *domain.Config) {
	if config.Lower == 0 && config.Upper == 0 {
		config.Lower = 1.0
		config.Upper = 5.0
	}
	if config.Trapezoids == 0 {
		config.Trapezoids = 10000000
	}
	if config.Workers == 0 {
		config.Workers = 2
	}
	if config.Decimals == 0 {
		config.Decimals = 15
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}
