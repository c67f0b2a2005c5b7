// Package applog is the CLI front-end's leveled logger. It is not used
// by any of the analysis packages — those are pure functions over byte
// slices — only by cmd/stepcore to report progress and problems while
// scanning files. The event-builder API is modeled on the zerolog-style
// logger used elsewhere in this codebase, trimmed down to a single
// writer (os.Stderr for New) with no subscriber feed or persistence.
package applog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level defines a log event's severity.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "?"
	}
}

// Logger writes leveled events to a single writer, filtering by a
// minimum level. It is safe for concurrent use.
type Logger struct {
	mu  sync.Mutex
	out io.Writer
	min Level
}

// New returns a Logger writing to os.Stderr at LevelInfo and above.
func New() *Logger {
	return &Logger{out: os.Stderr, min: LevelInfo}
}

// NewWithLevel returns a Logger writing to w, filtering below min.
func NewWithLevel(w io.Writer, min Level) *Logger {
	return &Logger{out: w, min: min}
}

// Event is an in-progress log line being built up before Msg flushes it.
type Event struct {
	logger *Logger
	level  Level
	src    string
}

func (l *Logger) newEvent(level Level) *Event {
	return &Event{logger: l, level: level}
}

// Error starts an error-level event.
func (l *Logger) Error() *Event { return l.newEvent(LevelError) }

// Warn starts a warning-level event.
func (l *Logger) Warn() *Event { return l.newEvent(LevelWarn) }

// Info starts an info-level event.
func (l *Logger) Info() *Event { return l.newEvent(LevelInfo) }

// Debug starts a debug-level event.
func (l *Logger) Debug() *Event { return l.newEvent(LevelDebug) }

// Src sets the event's source tag (typically the file being processed).
func (e *Event) Src(source string) *Event {
	e.src = source
	return e
}

// Msg writes msg as the event's message, formatted as
// "TIME LEVEL [src] msg", and discards the event if its level is below
// the logger's minimum.
func (e *Event) Msg(msg string) {
	if e.level > e.logger.min {
		return
	}
	e.logger.mu.Lock()
	defer e.logger.mu.Unlock()

	ts := time.Now().UTC().Format("15:04:05.000")
	if e.src != "" {
		fmt.Fprintf(e.logger.out, "%s %-5s [%s] %s\n", ts, e.level, e.src, msg)
		return
	}
	fmt.Fprintf(e.logger.out, "%s %-5s %s\n", ts, e.level, msg)
}

// Msgf formats msg with args before writing it.
func (e *Event) Msgf(format string, args ...any) {
	e.Msg(fmt.Sprintf(format, args...))
}
