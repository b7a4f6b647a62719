package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		SetOutput(nil)
	})
	return &buf
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	buf := captureLog(t)
	SetTraceEnabled(false)
	Trace("nav.cursor", map[string]interface{}{"column": 1})
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestTraceWritesStructuredEntry(t *testing.T) {
	buf := captureLog(t)
	SetTraceEnabled(true)
	Trace("nav.cursor", map[string]interface{}{"column": 2, "row": 1})

	line := strings.TrimSpace(buf.String())
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("expected JSON entry, got %q: %v", line, err)
	}
	if entry["event"] != "nav.cursor" {
		t.Fatalf("expected event nav.cursor, got %v", entry["event"])
	}
	if entry["column"] != float64(2) || entry["row"] != float64(1) {
		t.Fatalf("expected payload fields, got %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("expected timestamp in %v", entry)
	}
}

func TestErrorAlwaysWritten(t *testing.T) {
	buf := captureLog(t)
	Error(errors.New("boom"))
	Error(nil)
	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected one entry, got %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Fatalf("expected error text in %q", out)
	}
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	if err := SetLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if err := SetLevel("warn"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = SetLevel("info") })
}

func TestConfigureClosesPreviousLogFile(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { Configure("") })

	Configure(filepath.Join(dir, "first.log"))
	Error(errors.New("first"))
	mu.Lock()
	first := logFile
	mu.Unlock()
	if first == nil {
		t.Fatalf("expected log file to be opened")
	}

	Configure(filepath.Join(dir, "second.log"))
	if _, err := first.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("expected previous log file closed, got %v", err)
	}

	Error(errors.New("second"))
	data, err := os.ReadFile(filepath.Join(dir, "second.log"))
	if err != nil {
		t.Fatalf("read second log: %v", err)
	}
	if !strings.Contains(string(data), "second") {
		t.Fatalf("expected entry in second log, got %q", data)
	}
}
