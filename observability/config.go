package observability

import (
	"time"
)

// Config configures the OTLP/HTTP trace and metric exporters.
type Config struct {
	ServiceName    string
	ServiceVersion string
	// Environment is the deployment environment (development, staging, production).
	Environment string
	// Endpoint is the collector host:port, e.g. "localhost:4318".
	Endpoint string
	Insecure bool
	// SampleRate is the fraction of evaluations traced, 0.0 to 1.0.
	SampleRate float64
	// MetricInterval is how often metrics are pushed. Zero keeps the SDK default.
	MetricInterval time.Duration
}

// DefaultConfig returns the settings of a local development collector.
func DefaultConfig(serviceName string) *Config {
	return &Config{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		SampleRate:     1.0,
		MetricInterval: 15 * time.Second,
	}
}
