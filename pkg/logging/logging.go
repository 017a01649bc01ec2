// Package logging is the process-wide logger. CLI mode writes slog
// text lines to a configurable writer; TUI mode routes entries through
// a buffered channel so log output never writes over the previewer's
// screen.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// LogLevel defines the severity of a log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel maps the level onto its slog equivalent.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel parses a level name as spelled on the --log-level flag.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
}

// LogEntry is the structured entry handed to the TUI over the channel.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

var (
	defaultLogger *slog.Logger
	tuiLogChannel chan LogEntry
	isTuiMode     bool
	minLevel      LogLevel
)

const tuiChannelBufferSize = 2048

// InitForTUI switches logging into channel mode and returns the entry
// channel the TUI drains. Entries below filterLevel are dropped.
// Call once at startup.
func InitForTUI(filterLevel LogLevel) <-chan LogEntry {
	isTuiMode = true
	minLevel = filterLevel
	tuiLogChannel = make(chan LogEntry, tuiChannelBufferSize)
	initSlog(filterLevel, os.Stderr)
	return tuiLogChannel
}

// InitForCLI initializes plain text logging to the given writer.
// Call once at startup.
func InitForCLI(filterLevel LogLevel, output io.Writer) {
	isTuiMode = false
	minLevel = filterLevel
	tuiLogChannel = nil
	initSlog(filterLevel, output)
}

func initSlog(level LogLevel, output io.Writer) {
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: level.SlogLevel(),
	})
	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	if level < minLevel {
		return
	}
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	if isTuiMode {
		if tuiLogChannel == nil {
			fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", level, subsystem, msg)
			return
		}
		// Buffered send; blocks only if the TUI stops draining.
		tuiLogChannel <- LogEntry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		return
	}

	if defaultLogger == nil {
		// Not initialized yet; emergency fallback.
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", level, subsystem, msg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  error: %v\n", err)
		}
		return
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

// CloseTUIChannel closes the entry channel and returns logging to
// stderr. Call when the TUI exits; later log calls must not panic.
func CloseTUIChannel() {
	if tuiLogChannel != nil {
		close(tuiLogChannel)
		tuiLogChannel = nil
		isTuiMode = false
	}
}
