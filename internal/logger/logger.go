// Package logger is a small leveled logger. Levels are off (silent),
// normal (info/warn/error), and verbose (adds debug). The level is
// fixed at construction.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

// Logger writes leveled, timestamped lines. Safe for concurrent use.
type Logger struct {
	level  Level
	debug  *log.Logger
	info   *log.Logger
	warn   *log.Logger
	errLog *log.Logger
}

// New creates a logger with the given level, writing to out.
// A nil out falls back to os.Stderr.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}

	flags := log.Ltime

	return &Logger{
		level:  level,
		debug:  log.New(out, "[DBG] ", flags),
		info:   log.New(out, "[INF] ", flags),
		warn:   log.New(out, "[WRN] ", flags),
		errLog: log.New(out, "[ERR] ", flags),
	}
}

// Debug logs a message at debug level (only visible in verbose mode).
func (l *Logger) Debug(format string, args ...any) {
	if l.level >= LevelVerbose {
		l.debug.Output(2, fmt.Sprintf(format, args...))
	}
}

// Info logs a message at info level.
func (l *Logger) Info(format string, args ...any) {
	if l.level >= LevelNormal {
		l.info.Output(2, fmt.Sprintf(format, args...))
	}
}

// Warn logs a message at warn level.
func (l *Logger) Warn(format string, args ...any) {
	if l.level >= LevelNormal {
		l.warn.Output(2, fmt.Sprintf(format, args...))
	}
}

// Error logs a message at error level.
func (l *Logger) Error(format string, args ...any) {
	if l.level >= LevelNormal {
		l.errLog.Output(2, fmt.Sprintf(format, args...))
	}
}
