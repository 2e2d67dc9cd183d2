package validation

import (
	"strings"
	"testing"

	apperrors "github.com/kbukum/seqkit/errors"
)

type demoSection struct {
	Seed  int `mapstructure:"seed"`
	Count int `mapstructure:"count" validate:"gte=1,lte=100"`
}

type sampleConfig struct {
	Name       string      `mapstructure:"name" validate:"required"`
	Mode       string      `mapstructure:"mode" validate:"oneof=fast slow"`
	SampleRate float64     `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	MaxItems   int         `validate:"max=10"`
	Demo       demoSection `mapstructure:"demo"`
}

func validSample() sampleConfig {
	return sampleConfig{Name: "demo", Mode: "fast", SampleRate: 0.5, Demo: demoSection{Count: 5}}
}

func TestValidate_Valid(t *testing.T) {
	if err := Validate(validSample()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*sampleConfig)
		field   string
		message string
	}{
		{"required", func(c *sampleConfig) { c.Name = "" }, "name", "is required"},
		{"oneof", func(c *sampleConfig) { c.Mode = "medium" }, "mode", "must be one of: fast slow"},
		{"lte", func(c *sampleConfig) { c.SampleRate = 1.5 }, "sample_rate", "must be less than or equal to 1"},
		{"nested gte", func(c *sampleConfig) { c.Demo.Count = 0 }, "demo.count", "must be greater than or equal to 1"},
		{"snake case fallback", func(c *sampleConfig) { c.MaxItems = 11 }, "max_items", "must be at most 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validSample()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			appErr, ok := apperrors.AsAppError(err)
			if !ok || appErr.Code != apperrors.ErrCodeValidation {
				t.Fatalf("expected VALIDATION_ERROR, got %v", err)
			}
			fields, ok := appErr.Details["fields"].([]FieldError)
			if !ok || len(fields) != 1 {
				t.Fatalf("expected one field error, got %#v", appErr.Details["fields"])
			}
			if fields[0].Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, fields[0].Field)
			}
			if fields[0].Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, fields[0].Message)
			}
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := validSample()
	cfg.Name = ""
	cfg.Mode = ""
	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "name: is required") || !strings.Contains(err.Error(), "mode: must be one of") {
		t.Errorf("expected both failures in message, got %q", err.Error())
	}
}

func TestValidate_NotAStruct(t *testing.T) {
	err := Validate(42)
	if !apperrors.HasCode(err, apperrors.ErrCodeValidation) {
		t.Errorf("expected VALIDATION_ERROR for non-struct input, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Name":       "name",
		"SampleRate": "sample_rate",
		"maxItems":   "max_items",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
