package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	level.Debug(logger).Log("msg", "hidden")
	level.Info(logger).Log("msg", "shown", "cell", "(1, 1)")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug record to be dropped, got %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "level=info") {
		t.Errorf("Expected info record in logfmt, got %q", out)
	}
	if !strings.Contains(out, "ts=") {
		t.Errorf("Expected timestamp in record, got %q", out)
	}
}

func TestNewDebugKeepsEverything(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, "DEBUG")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	level.Debug(logger).Log("msg", "visible")

	if !strings.Contains(buf.String(), "msg=visible") {
		t.Errorf("Expected debug record, got %q", buf.String())
	}
}

func TestNewUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Errorf("Expected error for unknown level")
	}
}
