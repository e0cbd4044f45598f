package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewWriterEmptyPathUsesStderr(t *testing.T) {
	w, err := NewWriter("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Closing the fallback writer must not close stderr.
	if closeErr := w.Close(); closeErr != nil {
		t.Fatalf("unexpected close error: %v", closeErr)
	}
	if _, writeErr := os.Stderr.Write(nil); writeErr != nil {
		t.Fatalf("stderr closed by fallback writer: %v", writeErr)
	}
}

func TestNewWriterCreatesFileAndParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "probe.log")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := w.Write([]byte("line\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("log file missing: %v", readErr)
	}
	if string(data) != "line\n" {
		t.Fatalf("unexpected log content %q", data)
	}
}

func TestNewWriterAppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.log")

	for _, line := range []string{"first\n", "second\n"} {
		w, err := NewWriter(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := w.Write([]byte(line)); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		_ = w.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if string(data) != "first\nsecond\n" {
		t.Fatalf("expected appended sessions, got %q", data)
	}
}
