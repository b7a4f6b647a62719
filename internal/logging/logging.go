package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const defaultLogFile = "xmb.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	level        = zerolog.InfoLevel
	output       io.Writer
	logFile      *os.File
	logger       *zerolog.Logger
)

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	l := current()
	if l == nil {
		return
	}
	l.Error().Err(err).Msg("error")
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	logger = nil
	mu.Unlock()
}

// TraceEnabled reports whether Trace entries are written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured entry to the shared log when tracing is enabled.
func Trace(event string, payload map[string]interface{}) {
	if !TraceEnabled() {
		return
	}
	l := current()
	if l == nil {
		return
	}
	evt := l.WithLevel(zerolog.DebugLevel).Str("event", event)
	if len(payload) > 0 {
		evt = evt.Fields(payload)
	}
	evt.Send()
}

// SetLevel sets the minimum level for non-trace entries. Unknown values are
// reported and leave the level unchanged.
func SetLevel(name string) error {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return nil
	}
	parsed, err := zerolog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	mu.Lock()
	level = parsed
	logger = nil
	mu.Unlock()
	return nil
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	closeLogFileLocked()
	logger = nil
	output = nil
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// SetOutput redirects entries to w instead of the log file. Tests use it to
// capture output.
func SetOutput(w io.Writer) {
	mu.Lock()
	closeLogFileLocked()
	output = w
	logger = nil
	mu.Unlock()
}

// closeLogFileLocked releases the file opened by current. Callers hold mu.
func closeLogFileLocked() {
	if logFile == nil {
		return
	}
	_ = logFile.Close()
	if output == logFile {
		output = nil
	}
	logFile = nil
}

func current() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		return logger
	}
	w := output
	if w == nil {
		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
			return nil
		}
		w = f
		output = f
		logFile = f
	}
	minLevel := level
	if traceEnabled && minLevel > zerolog.DebugLevel {
		minLevel = zerolog.DebugLevel
	}
	l := zerolog.New(w).Level(minLevel).With().Timestamp().Logger()
	logger = &l
	return logger
}
