package main

import (
	"flag"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trapezoid-integration/internal/app"
	"trapezoid-integration/internal/domain"
	"trapezoid-integration/internal/infrastructure"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	overrides := infrastructure.BindFlags()
	flag.Parse()

	logger := initLogger("info")
	defer logger.Sync()

	configReader := infrastructure.NewYAMLConfigReader(logger, overrides)
	config, err := configReader.ReadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to read config", zap.Error(err))
	}

	logger = initLogger(config.LogLevel, config.LogFile)

	if err := config.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	spec, err := domain.NewIntegrationSpec(config.Lower, config.Upper, config.Trapezoids)
	if err != nil {
		logger.Fatal("Invalid integration interval", zap.Error(err))
	}

	logger.Info("Starting trapezoidal integration",
		zap.Float64("a", spec.A),
		zap.Float64("b", spec.B),
		zap.Int("trapezoids", spec.N),
		zap.Int("workers", config.Workers))

	integrator := app.NewParallelIntegrator(logger, config)
	estimate, err := integrator.Integrate(spec, domain.Quadratic)
	if err != nil {
		logger.Fatal("Integration failed", zap.Error(err))
	}

	reportWriter := infrastructure.NewTextReportWriter(logger, config.Decimals)
	err = reportWriter.WriteReport(os.Stdout, domain.Result{
		Workers:    config.Workers,
		Trapezoids: spec.N,
		Lower:      spec.A,
		Upper:      spec.B,
		Estimate:   estimate,
	})
	if err != nil {
		logger.Fatal("Failed to write report", zap.Error(err))
	}
}

// initLogger initializes the logger with the specified level and log file name.
func initLogger(level string, logfileName ...string) *zap.Logger {
	config := zap.NewProductionConfig()

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	// Logs go to stderr unless a file is configured, keeping stdout free
	// for the report.
	outputPaths := make([]string, 0, len(logfileName))
	for _, item := range logfileName {
		if item != "" {
			outputPaths = append(outputPaths, item)
		}
	}
	if len(outputPaths) > 0 {
		config.OutputPaths = outputPaths
		config.ErrorOutputPaths = outputPaths
	}

	config.EncoderConfig.TimeKey = "t"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.DisableCaller = false

	logger, _ := config.Build()
	return logger
}
