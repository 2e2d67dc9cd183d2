package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	apperrors "github.com/kbukum/seqkit/errors"
)

type demoConfig struct {
	ServiceConfig `mapstructure:",squash"`
	Demo          struct {
		Seed  int  `mapstructure:"seed"`
		Count int  `mapstructure:"count"`
		Trace bool `mapstructure:"trace"`
	} `mapstructure:"demo"`
	Observability struct {
		Enabled    bool    `mapstructure:"enabled"`
		SampleRate float64 `mapstructure:"sample_rate"`
	} `mapstructure:"observability"`
}

// stubFS reports a fixed set of paths as existing.
type stubFS struct {
	files  map[string]bool
	loaded []string
}

func (s *stubFS) Exists(path string) bool { return s.files[path] }

func (s *stubFS) LoadEnv(path string) error {
	s.loaded = append(s.loaded, path)
	return nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug logging in development, got %q", cfg.Logging.Level)
		}
		if cfg.Logging.ServiceName != "svc" {
			t.Errorf("expected logging service name 'svc', got %q", cfg.Logging.ServiceName)
		}
	})

	t.Run("production keeps debug false", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("expected info logging, got %q", cfg.Logging.Level)
		}
	})
}

func TestServiceConfigValidate(t *testing.T) {
	valid := func() ServiceConfig {
		cfg := ServiceConfig{Name: "svc", Environment: "staging"}
		cfg.ApplyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*ServiceConfig)
		wantErr string
	}{
		{"valid", func(*ServiceConfig) {}, ""},
		{"missing name", func(c *ServiceConfig) { c.Name = "" }, "name: is required"},
		{"invalid environment", func(c *ServiceConfig) { c.Environment = "qa" }, "environment: must be one of"},
		{"invalid log level", func(c *ServiceConfig) { c.Logging.Level = "loud" }, "logging.level must be one of"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !apperrors.HasCode(err, apperrors.ErrCodeValidation) {
				t.Errorf("expected VALIDATION_ERROR, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
name: streamdemo
environment: staging
demo:
  seed: 100
  count: 5
  trace: true
observability:
  sample_rate: 0.25
`)

	var cfg demoConfig
	if err := LoadConfig("streamdemo", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "streamdemo" || cfg.Environment != "staging" {
		t.Errorf("unexpected service config: %+v", cfg.ServiceConfig)
	}
	if cfg.Demo.Seed != 100 || cfg.Demo.Count != 5 || !cfg.Demo.Trace {
		t.Errorf("unexpected demo section: %+v", cfg.Demo)
	}
	if cfg.Observability.SampleRate != 0.25 {
		t.Errorf("expected sample rate 0.25, got %v", cfg.Observability.SampleRate)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
name: streamdemo
demo:
  count: 5
observability:
  sample_rate: 1.0
`)
	t.Setenv("DEMO_COUNT", "9")
	t.Setenv("OBSERVABILITY_SAMPLE_RATE", "0.5")

	var cfg demoConfig
	if err := LoadConfig("streamdemo", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Demo.Count != 9 {
		t.Errorf("expected env override count=9, got %d", cfg.Demo.Count)
	}
	if cfg.Observability.SampleRate != 0.5 {
		t.Errorf("expected env override sample_rate=0.5, got %v", cfg.Observability.SampleRate)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yml", "name: streamdemo\n")
	envPath := writeFile(t, dir, ".env", "DEMO_SEED=42\n")
	t.Cleanup(func() { os.Unsetenv("DEMO_SEED") })

	var cfg demoConfig
	if err := LoadConfig("streamdemo", &cfg, WithConfigFile(cfgPath), WithEnvFile(envPath)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Demo.Seed != 42 {
		t.Errorf("expected seed from .env file, got %d", cfg.Demo.Seed)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "name: [unclosed\n")

	var cfg demoConfig
	err := LoadConfig("streamdemo", &cfg, WithConfigFile(path))
	if !apperrors.HasCode(err, apperrors.ErrCodeConfig) {
		t.Fatalf("expected CONFIG_ERROR, got %v", err)
	}
}

func TestLoadConfigNoFiles(t *testing.T) {
	var cfg demoConfig
	err := LoadConfig("streamdemo", &cfg, WithFileSystem(&stubFS{}))
	if err != nil {
		t.Fatalf("missing files should not be an error: %v", err)
	}
	if cfg.Name != "" {
		t.Errorf("expected empty config, got name %q", cfg.Name)
	}
}

func TestResolverSearchOrder(t *testing.T) {
	fs := &stubFS{files: map[string]bool{
		"../cmd/streamdemo/config.yml": true,
		"./config.yml":                 true,
		"./cmd/streamdemo/.env":        true,
		".env":                         true,
	}}
	r := &Resolver{FileSystem: fs}
	got := r.ResolveFiles("streamdemo", LoaderConfig{})
	if got.ConfigFile != "../cmd/streamdemo/config.yml" {
		t.Errorf("expected command config to win, got %q", got.ConfigFile)
	}
	if got.EnvFile != "./cmd/streamdemo/.env" {
		t.Errorf("expected command env file to win, got %q", got.EnvFile)
	}

	explicit := r.ResolveFiles("streamdemo", LoaderConfig{ConfigFile: "a.yml", EnvFile: "b.env"})
	if explicit.ConfigFile != "a.yml" || explicit.EnvFile != "b.env" {
		t.Errorf("explicit paths should be kept, got %+v", explicit)
	}
}

func TestLoadConfigLoadsResolvedEnvFile(t *testing.T) {
	fs := &stubFS{files: map[string]bool{".env.streamdemo": true}}
	var cfg demoConfig
	if err := LoadConfig("streamdemo", &cfg, WithFileSystem(fs)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(fs.loaded, []string{".env.streamdemo"}) {
		t.Errorf("expected .env.streamdemo to be loaded, got %v", fs.loaded)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"PATH", []string{"path"}},
		{"DEMO_SEED", []string{"demo_seed", "demo.seed"}},
		{"OBSERVABILITY_SAMPLE_RATE", []string{
			"observability_sample_rate",
			"observability.sample.rate",
			"observability.sample_rate",
			"observability_sample.rate",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := envKeyVariants(tt.key)
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
