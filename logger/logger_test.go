package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newJSONLogger(t *testing.T, level string) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewWithWriter(&Config{Level: level, Format: "json"}, &buf, "test-svc"), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid json line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	l, buf := newJSONLogger(t, "invalid-level")
	l.Debug("hidden")
	l.Info("shown")
	lines := decodeLines(t, buf)
	if len(lines) != 1 || lines[0]["message"] != "shown" {
		t.Fatalf("expected only the info line, got %v", lines)
	}
}

func TestLevelIsPerLogger(t *testing.T) {
	quiet, quietBuf := newJSONLogger(t, "error")
	loud, loudBuf := newJSONLogger(t, "debug")
	quiet.Debug("a")
	loud.Debug("b")
	if quietBuf.Len() != 0 {
		t.Errorf("error-level logger wrote %q", quietBuf.String())
	}
	if len(decodeLines(t, loudBuf)) != 1 {
		t.Errorf("debug-level logger should have written one line")
	}
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		t.Error("constructing loggers must not raise the global level")
	}
}

func TestFieldsAreWritten(t *testing.T) {
	l, buf := newJSONLogger(t, "debug")
	l.WithComponent("scenarios").Info("done", Fields(FieldScenario, "even-sum", FieldResult, 70))
	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	got := lines[0]
	if got[FieldComponent] != "scenarios" {
		t.Errorf("expected component=scenarios, got %v", got[FieldComponent])
	}
	if got[FieldScenario] != "even-sum" {
		t.Errorf("expected scenario=even-sum, got %v", got[FieldScenario])
	}
	if got[FieldResult] != float64(70) {
		t.Errorf("expected result=70, got %v", got[FieldResult])
	}
}

func TestWithFieldsAndError(t *testing.T) {
	l, buf := newJSONLogger(t, "info")
	l.WithFields(map[string]interface{}{"key": "value"}).WithError(errors.New("boom")).Warn("careful")
	got := decodeLines(t, buf)[0]
	if got["key"] != "value" || got["error"] != "boom" || got["level"] != "warn" {
		t.Errorf("unexpected line %v", got)
	}
}

func TestEnabled(t *testing.T) {
	l, _ := newJSONLogger(t, "info")
	if l.Enabled(zerolog.DebugLevel) {
		t.Error("debug should be disabled for an info logger")
	}
	if !l.Enabled(zerolog.WarnLevel) {
		t.Error("warn should be enabled for an info logger")
	}
	if Nop().Enabled(zerolog.ErrorLevel) {
		t.Error("nop logger should never be enabled")
	}
}

func TestFieldsOddArguments(t *testing.T) {
	m := Fields("a", 1, "b")
	if len(m) != 1 || m["a"] != 1 {
		t.Errorf("unexpected fields %v", m)
	}
	m = Fields(42, "x")
	if len(m) != 0 {
		t.Errorf("non-string keys should be skipped, got %v", m)
	}
}

func TestConsoleLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, &buf, "streamdemo")
	l.Info("hello")
	out := buf.String()
	if !strings.Contains(out, "[STR][INF]") || !strings.Contains(out, "hello") {
		t.Errorf("unexpected console output %q", out)
	}
}

func TestInitAndGlobal(t *testing.T) {
	Init(&Config{Level: "info", Format: "json", Output: "stdout", ServiceName: "svc"})
	gl := GetGlobalLogger()
	if gl == nil || gl.service != "svc" {
		t.Fatalf("expected global logger for svc, got %+v", gl)
	}
	custom := NewDefault("custom")
	SetGlobalLogger(custom)
	if GetGlobalLogger() != custom {
		t.Error("expected SetGlobalLogger to set the global logger")
	}
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json"}, false},
		{"valid console", Config{Level: "debug", Format: "console"}, false},
		{"invalid level", Config{Level: "bad", Format: "json"}, true},
		{"invalid format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
