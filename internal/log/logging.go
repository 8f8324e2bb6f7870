// Package log provides helpers for creating a configured slog.Logger.
//
// When a log file path is not provided, logs are written to stdout for
// non-error levels and to stderr for errors (so stderr can be used for
// error redirection while keeping normal logs on stdout).
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace defines a custom slog level below Debug for very verbose output.
const LevelTrace slog.Level = -8

// Config selects level, format and optional file output.
type Config struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"RUNEKEYS_LOG_LEVEL"`
	Format  string `help:"Log format" enum:"text,json" default:"text" env:"RUNEKEYS_LOG_FORMAT"`
	File    string `help:"Also write logs to this file" env:"RUNEKEYS_LOG_FILE"`
	RawFile string `help:"Write raw hook event traces to this file" env:"RUNEKEYS_LOG_RAW_FILE"`
}

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// replaceLevel names LevelTrace "TRACE" instead of slog's "DEBUG-4".
func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: replaceLevel}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// MultiHandler fans out records to multiple handlers.
type MultiHandler struct{ hs []slog.Handler }

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}
func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		_ = h.Handle(ctx, r.Clone())
	}
	return nil
}
func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return MultiHandler{hs: out}
}
func (m MultiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return MultiHandler{hs: out}
}

// LevelFilter delegates to an underlying handler but filters which levels are
// passed to it using the provided predicate.
type LevelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f LevelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	if !f.pass(level) {
		return false
	}
	return f.h.Enabled(ctx, level)
}

func (f LevelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f LevelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}
func (f LevelFilter) WithGroup(name string) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

// SetupLogger builds a slog.Logger with console and optional file handlers.
func SetupLogger(cfg Config) (*slog.Logger, []io.Closer, error) {
	return setupLogger(cfg, os.Stdout, os.Stderr)
}

func setupLogger(cfg Config, stdout, stderr io.Writer) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(cfg.Level)
	var handlers []slog.Handler

	if cfg.File == "" {
		handlers = append(handlers,
			LevelFilter{pass: func(l slog.Level) bool { return l < slog.LevelError }, h: newHandler(stdout, cfg.Format, level)},
			LevelFilter{pass: func(l slog.Level) bool { return l >= slog.LevelError }, h: newHandler(stderr, cfg.Format, slog.LevelError)},
		)
	} else {
		handlers = append(handlers, newHandler(stderr, cfg.Format, level))
	}
	var closeFiles []io.Closer
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closeFiles = append(closeFiles, f)
		handlers = append(handlers, newHandler(f, cfg.Format, level))
	}
	logger := slog.New(MultiHandler{hs: handlers})
	return logger, closeFiles, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
