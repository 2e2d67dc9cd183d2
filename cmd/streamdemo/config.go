package main

import (
	"time"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/validation"
)

const serviceName = "streamdemo"

// StreamDemoConfig is the configuration of the streamdemo command.
type StreamDemoConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Demo                 DemoConfig          `yaml:"demo" mapstructure:"demo"`
	Observability        ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
}

// DemoConfig parameterizes the walkthrough. Zero values take the defaults.
type DemoConfig struct {
	Seed  int  `yaml:"seed" mapstructure:"seed" validate:"gte=0"`
	Count int  `yaml:"count" mapstructure:"count" validate:"gte=0,lte=10000"`
	Trace bool `yaml:"trace" mapstructure:"trace"`
}

// ObservabilityConfig controls the OTLP exporters.
type ObservabilityConfig struct {
	Enabled        bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint       string        `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true,omitempty,hostname_port"`
	Insecure       bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate     float64       `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	MetricInterval time.Duration `yaml:"metric_interval" mapstructure:"metric_interval"`
}

// ApplyDefaults fills in the command name and the demo parameters, then the
// base service defaults.
func (c *StreamDemoConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()

	if c.Demo.Seed == 0 {
		c.Demo.Seed = 100
	}
	if c.Demo.Count == 0 {
		c.Demo.Count = 3
	}
	if c.Observability.Enabled {
		if c.Observability.Endpoint == "" {
			c.Observability.Endpoint = "localhost:4318"
		}
		if c.Observability.SampleRate == 0 {
			c.Observability.SampleRate = 1.0
		}
		if c.Observability.MetricInterval == 0 {
			c.Observability.MetricInterval = 15 * time.Second
		}
	}
}

// Validate checks the base service fields, then the command sections.
func (c *StreamDemoConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}

// ExporterConfig builds the OTLP exporter config shared by the tracer and
// the meter.
func (c *StreamDemoConfig) ExporterConfig() *observability.Config {
	oc := observability.DefaultConfig(c.Name)
	oc.ServiceVersion = c.Version
	oc.Environment = c.Environment
	oc.Endpoint = c.Observability.Endpoint
	oc.Insecure = c.Observability.Insecure
	oc.SampleRate = c.Observability.SampleRate
	oc.MetricInterval = c.Observability.MetricInterval
	return oc
}
