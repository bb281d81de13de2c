package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	logger, err := NewLogger(&out, "warn")
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "generation", 3)

	got := out.String()
	if strings.Contains(got, "hidden") {
		t.Fatalf("info logged at warn level: %q", got)
	}
	if !strings.Contains(got, "shown") || !strings.Contains(got, "generation=3") {
		t.Fatalf("missing warn entry: %q", got)
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	if _, err := NewLogger(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
