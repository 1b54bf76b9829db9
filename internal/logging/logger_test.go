package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "INFO", " warn ", "Error", ""} {
		if err := ValidateLogLevel(level); err != nil {
			t.Fatalf("ValidateLogLevel(%q) = %v", level, err)
		}
	}
	if err := ValidateLogLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "WARN")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("hidden message")
	logger.Warn("visible message", "field", "weight")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Fatalf("info should be filtered at WARN, got %q", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "weight") {
		t.Fatalf("expected warn output with key/value, got %q", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatalf("expected error")
	}
}
