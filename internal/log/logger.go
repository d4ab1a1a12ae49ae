package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger     = zerolog.Nop()
	loggerLock sync.RWMutex
	logFile    *os.File
)

// Options select where and how logs are written.
type Options struct {
	Level       string
	Development bool   // console output instead of JSON
	File        string // empty means stderr
}

// Init replaces the package logger. Until Init is called nothing is logged,
// so library packages stay silent in tests.
func Init(opts Options) error {
	var out io.Writer = os.Stderr
	var f *os.File
	if opts.File != "" {
		var err error
		f, err = os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
	}
	if opts.Development {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    f != nil,
		}
	}
	SetOutput(out, opts.Level)

	loggerLock.Lock()
	prev := logFile
	logFile = f
	loggerLock.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// SetOutput points the logger at w with the given level.
func SetOutput(w io.Writer, level string) {
	l := zerolog.New(w).
		Level(parseLogLevel(level)).
		With().
		Timestamp().
		Logger()
	loggerLock.Lock()
	logger = l
	loggerLock.Unlock()
}

// Close releases the log file opened by Init, if any.
func Close() error {
	loggerLock.Lock()
	defer loggerLock.Unlock()
	logger = zerolog.Nop()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// SetLevel sets the log level at runtime
func SetLevel(levelStr string) {
	loggerLock.Lock()
	logger = logger.Level(parseLogLevel(levelStr))
	loggerLock.Unlock()
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func current() *zerolog.Logger {
	loggerLock.RLock()
	l := logger
	loggerLock.RUnlock()
	return &l
}

// Debug logs a debug message
func Debug() *zerolog.Event { return current().Debug() }

// Info logs an info message
func Info() *zerolog.Event { return current().Info() }

// Warn logs a warning message
func Warn() *zerolog.Event { return current().Warn() }

// Error logs an error message
func Error() *zerolog.Event { return current().Error() }

// Logger returns the underlying zerolog.Logger for integrations
func Logger() zerolog.Logger {
	return *current()
}
