// Package logging provides the leveled logger used across vcsmx-driver.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level is a logging verbosity level.
type Level int

const (
	// LevelError only logs errors.
	LevelError Level = iota
	// LevelWarn logs warnings and errors.
	LevelWarn
	// LevelInfo logs progress information, warnings and errors.
	LevelInfo
	// LevelDebug additionally logs the constructed tool invocations and
	// setup-file activity.
	LevelDebug
)

var levelNames = map[Level]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
}

// ParseLevel converts a level name (case-insensitive) to a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(name) {
	case "ERROR":
		return LevelError, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Logger writes leveled, prefixed log lines.
type Logger struct {
	level  Level
	logger *log.Logger
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, prefix string, level Level) *Logger {
	return &Logger{
		level:  level,
		logger: log.New(w, prefix+": ", log.Ldate|log.Ltime),
	}
}

// Default returns a logger writing to stderr at LevelInfo, honoring the
// VCSMX_DRIVER_LOG environment variable when it names a valid level.
func Default() *Logger {
	level := LevelInfo
	if name := os.Getenv("VCSMX_DRIVER_LOG"); name != "" {
		if parsed, err := ParseLevel(name); err == nil {
			level = parsed
		}
	}

	return New(os.Stderr, "vcsmx-driver", level)
}

// SetLevel changes the logger's verbosity level.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// LevelEnabled reports whether messages at level would be emitted.
func (l *Logger) LevelEnabled(level Level) bool {
	return l != nil && level <= l.level
}

func (l *Logger) log(level Level, format string, args ...any) {
	if !l.LevelEnabled(level) {
		return
	}

	l.logger.Printf("[%s] %s", levelNames[level], fmt.Sprintf(format, args...))
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Info logs a progress message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Debug logs a detail message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}
