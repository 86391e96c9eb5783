// Package log wraps log/slog for teller. Warnings go to stderr; with a debug
// directory configured, every record is also appended to a daily JSON file so
// a session can be reconstructed after the fact.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

var (
	logger *slog.Logger
	// base is the handler without session attributes, kept so the session ID
	// can be removed again.
	base       slog.Handler
	fileWriter *DailyFile
)

// Options configures the logger.
type Options struct {
	// Verbose enables debug output on stderr unless Interactive is set.
	Verbose bool
	// Interactive keeps stderr at warn level so log lines do not interleave
	// with the menu on a terminal.
	Interactive bool
	// DebugDir is the directory for daily JSON log files. Empty disables them.
	DebugDir string
	// RetentionDays is how many days of log files to keep (0 = keep all).
	RetentionDays int
	// Stderr defaults to os.Stderr.
	Stderr io.Writer
}

// Init installs the global logger.
func Init(opts Options) error {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	level := slog.LevelWarn
	if opts.Verbose && !opts.Interactive {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}

	Close()
	if opts.DebugDir != "" {
		if opts.RetentionDays > 0 {
			Cleanup(opts.DebugDir, opts.RetentionDays)
		}
		fw, err := OpenDailyFile(opts.DebugDir)
		if err != nil {
			install(handlers[0])
			return err
		}
		fileWriter = fw
		handlers = append(handlers, slog.NewJSONHandler(fw, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if len(handlers) == 1 {
		install(handlers[0])
	} else {
		install(fanout(handlers))
	}
	return nil
}

// Close closes the daily file if one is open.
func Close() {
	if fileWriter != nil {
		fileWriter.Close()
		fileWriter = nil
	}
}

func install(h slog.Handler) {
	base = h
	logger = slog.New(h)
	slog.SetDefault(logger)
}

// fanout sends each record to every handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Info logs an info message.
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// SetOutput sends all levels as text to w (for testing).
func SetOutput(w io.Writer) {
	install(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// SetSessionID tags all subsequent records with session_id.
func SetSessionID(id string) {
	logger = slog.New(base.WithAttrs([]slog.Attr{slog.String("session_id", id)}))
	slog.SetDefault(logger)
}

// ClearSessionID removes the session_id tag.
func ClearSessionID() {
	logger = slog.New(base)
	slog.SetDefault(logger)
}

func init() {
	base = slog.Default().Handler()
	logger = slog.Default()
}
