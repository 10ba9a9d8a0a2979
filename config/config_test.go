package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContent_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(``))
	if err != nil {
		t.Fatalf("expected defaults to validate: %v", err)
	}
	if cfg.Loader.DefaultFormat != "csv" {
		t.Errorf("default format = %q, want csv", cfg.Loader.DefaultFormat)
	}
	if cfg.Preview.Rows != 10 {
		t.Errorf("preview rows = %d, want 10", cfg.Preview.Rows)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestValidateYAMLContent_ExampleTemplate(t *testing.T) {
	t.Parallel()

	if _, err := ValidateYAMLContent([]byte(ExampleYAML())); err != nil {
		t.Fatalf("expected example template to validate: %v", err)
	}
}

func TestValidateYAMLContent_RejectsUnsupportedFormat(t *testing.T) {
	t.Parallel()

	content := []byte(`loader:
  default_format: "parquet"
`)

	_, err := ValidateYAMLContent(content)
	if err == nil {
		t.Fatal("expected validation error for unsupported format")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateYAMLContent_RejectsBadPreviewRows(t *testing.T) {
	t.Parallel()

	content := []byte(`preview:
  rows: 0
`)

	if _, err := ValidateYAMLContent(content); err == nil {
		t.Fatal("expected validation error for preview rows")
	}
}

func TestValidateYAMLContent_RejectsBadLogLevel(t *testing.T) {
	t.Parallel()

	content := []byte(`log:
  level: "loud"
`)

	if _, err := ValidateYAMLContent(content); err == nil {
		t.Fatal("expected validation error for log level")
	}
}
