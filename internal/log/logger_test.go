package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/errors"
)

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	logger.Info("product approved", "product_id", "abc123")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["msg"] != "product approved" {
		t.Errorf("msg = %v, want 'product approved'", entry["msg"])
	}
	if entry["product_id"] != "abc123" {
		t.Errorf("product_id = %v, want abc123", entry["product_id"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: NewOutput(&buf),
	})

	logger.Debug("should be suppressed")
	logger.Info("should be suppressed too")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("below-level messages leaked: %s", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestLogger_WithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelError,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	cerr := errors.New(errors.ErrCodeRoleDenied, "access denied: your role cannot approve products")
	logger.WithError(cerr).Error("request rejected")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["error_code"] != "RBAC-001" {
		t.Errorf("error_code = %v, want RBAC-001", entry["error_code"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultLogger_ConfiguredAtStartup(t *testing.T) {
	orig := DefaultLogger()
	defer SetDefaultLogger(orig)

	if orig == nil {
		t.Fatal("Expected a usable logger before any configuration")
	}

	configured := Development()
	SetDefaultLogger(configured)
	if DefaultLogger() != configured {
		t.Error("Expected the configured logger back")
	}
}
