// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level describes severity of a log message.
type Level int

const (
	// LevelError logs failures only.
	LevelError Level = iota
	// LevelInfo is the default level.
	LevelInfo
	// LevelDebug enables per-tick diagnostics.
	LevelDebug
)

// ParseLevel converts a config string to a Level.
func ParseLevel(v string) Level {
	switch v {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a thin leveled wrapper around log.Logger. A nil Logger is
// valid and discards everything.
type Logger struct {
	logger *log.Logger
	level  Level
}

// New creates a configured logger. An empty path logs to stdout.
func New(path string, level Level) (*Logger, error) {
	var output io.Writer = os.Stdout
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		output = f
	}
	return &Logger{logger: log.New(output, "printmon ", log.LstdFlags), level: level}, nil
}

func (l *Logger) logf(lvl Level, tag, format string, args ...interface{}) {
	if l == nil || lvl > l.level {
		return
	}
	l.logger.Printf("[%s] %s", tag, fmt.Sprintf(format, args...))
}

// Infof logs informational messages.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, "INFO", format, args...)
}

// Debugf logs verbose diagnostic messages.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(LevelDebug, "DEBUG", format, args...)
}

// Errorf logs failures.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, "ERROR", format, args...)
}
