package domain

import "io"

// ConfigReader reads the application configuration
type ConfigReader interface {
	ReadConfig(path string) (*Config, error)
}

// ReportWriter writes the final estimate report
type ReportWriter interface {
	WriteReport(w io.Writer, result Result) error
}
