package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/kbukum/seqkit/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StreamDemoConfig{}
	cfg.ApplyDefaults()

	assert.Equal(t, serviceName, cfg.Name)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, serviceName, cfg.Logging.ServiceName)
	assert.Equal(t, 100, cfg.Demo.Seed)
	assert.Equal(t, 3, cfg.Demo.Count)
	assert.Empty(t, cfg.Observability.Endpoint, "exporter defaults only apply when enabled")
	require.NoError(t, cfg.Validate())

	enabled := &StreamDemoConfig{Observability: ObservabilityConfig{Enabled: true}}
	enabled.ApplyDefaults()
	assert.Equal(t, "localhost:4318", enabled.Observability.Endpoint)
	assert.Equal(t, 1.0, enabled.Observability.SampleRate)
	assert.Equal(t, 15*time.Second, enabled.Observability.MetricInterval)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StreamDemoConfig)
		wantErr string
	}{
		{"negative count", func(c *StreamDemoConfig) { c.Demo.Count = -1 }, "demo.count"},
		{"sample rate above one", func(c *StreamDemoConfig) { c.Observability.SampleRate = 1.5 }, "observability.sample_rate"},
		{"bad endpoint", func(c *StreamDemoConfig) {
			c.Observability.Enabled = true
			c.Observability.Endpoint = "not an endpoint"
		}, "observability.endpoint: must be host:port"},
		{"bad environment", func(c *StreamDemoConfig) { c.Environment = "qa" }, "environment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StreamDemoConfig{}
			cfg.ApplyDefaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExporterConfigs(t *testing.T) {
	cfg := &StreamDemoConfig{Observability: ObservabilityConfig{
		Enabled:    true,
		Endpoint:   "collector:4318",
		SampleRate: 0.5,
	}}
	cfg.Version = "1.2.3"
	cfg.ApplyDefaults()

	oc := cfg.ExporterConfig()
	assert.Equal(t, serviceName, oc.ServiceName)
	assert.Equal(t, "1.2.3", oc.ServiceVersion)
	assert.Equal(t, "collector:4318", oc.Endpoint)
	assert.Equal(t, 0.5, oc.SampleRate)
	assert.Equal(t, 15*time.Second, oc.MetricInterval)
}

func TestFlagUsageNamesDefaults(t *testing.T) {
	fl := newRootCmd().Flags()
	assert.Contains(t, fl.Lookup("seed").Usage, "0 uses the default (100)")
	assert.Contains(t, fl.Lookup("count").Usage, "0 uses the default (3)")

	cfg := &StreamDemoConfig{}
	cfg.ApplyDefaults()
	assert.Equal(t, 100, cfg.Demo.Seed)
	assert.Equal(t, 3, cfg.Demo.Count)
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	path := writeConfig(t, "name: streamdemo\ndemo:\n  seed: 7\n  count: 2\n")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--count", "5", "--trace"}))

	f := &flags{configFile: path, count: 5, trace: true}
	cfg, err := loadConfig(cmd, f)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Demo.Seed, "seed flag not set, file value kept")
	assert.Equal(t, 5, cfg.Demo.Count)
	assert.True(t, cfg.Demo.Trace)
	assert.Equal(t, "debug", cfg.Logging.Level, "trace needs debug logging")
}

func TestListCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 17)
	assert.Equal(t, "neighbours", lines[0])
	assert.Equal(t, "compute_100_3", lines[16])
}

func TestVersionFlag(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "go")
}

func TestRunSelectedScenarios(t *testing.T) {
	path := writeConfig(t, "name: streamdemo\nenvironment: production\nlogging:\n  level: error\n")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", path, "--only", "neighbours,even_sum_from_20"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
}

func TestRunUnknownScenario(t *testing.T) {
	path := writeConfig(t, "name: streamdemo\nenvironment: production\nlogging:\n  level: error\n")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", path, "--only", "missing"})
	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidArgument))
}
