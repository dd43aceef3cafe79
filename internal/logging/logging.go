// Package logging is a thin wrapper around logrus shared by the whole
// process. Output goes to a log file rather than stderr so the interactive
// screen is never corrupted; until Configure is called nothing is written.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const defaultLogFile = "gofi.log"

var (
	mu     sync.Mutex
	logger = newLogger()
	sink   *os.File
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Configure sets the log destination. An empty path falls back to the
// default file in the working directory. Directories are created when
// missing; on failure logging stays disabled.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()

	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.SetOutput(io.Discard)
			return
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return
	}
	if sink != nil {
		sink.Close()
	}
	sink = f
	logger.SetOutput(f)
}

// SetTraceEnabled toggles emission of trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	if enabled {
		logger.SetLevel(logrus.TraceLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// Trace records a structured trace entry when tracing is enabled.
func Trace(event string, payload map[string]interface{}) {
	logger.WithFields(logrus.Fields(payload)).Trace(event)
}

// Info records an informational message.
func Info(msg string) {
	logger.Info(msg)
}

// Error records an error; nil is ignored.
func Error(err error) {
	if err == nil {
		return
	}
	logger.WithError(err).Error("error")
}

// Errorf records a formatted error message.
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if sink != nil {
		sink.Close()
		sink = nil
		logger.SetOutput(io.Discard)
	}
}
