// Package logx builds the process logger and carries it through contexts.
package logx

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/pslog"

	"github.com/Akashdeep-Patra/rpn-stack/internal/stack"
)

// Off is the log_file value that disables logging.
const Off = "off"

// Options returns the structured, colorless options used for every log
// destination, with MinLevel taken from level. Unknown levels (and "warn",
// which has no threshold of its own) log at info.
func Options(level string) pslog.Options {
	opts := pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		VerboseFields: true,
		MinLevel:      pslog.InfoLevel,
	}
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		opts.MinLevel = pslog.TraceLevel
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	}
	return opts
}

// ValidLevel reports whether level is an accepted log_level value.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// New opens path for appending and returns a logger writing to it. An
// empty path or "off" yields a logger that discards everything. The
// returned closer is never nil.
func New(path, level string) (pslog.Logger, io.Closer, error) {
	if path == "" || strings.EqualFold(path, Off) {
		return pslog.NewWithOptions(io.Discard, Options(level)), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return pslog.NewWithOptions(f, Options(level)), f, nil
}

// Discard returns a logger that drops everything.
func Discard() pslog.Logger {
	return pslog.NewWithOptions(io.Discard, Options(""))
}

// Ctx returns the logger bound to ctx.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithItem annotates log with the identity and output of a stack item.
func WithItem(log pslog.Logger, it stack.Item) pslog.Logger {
	return log.With("item", it.ID().String(), "output", it.Output())
}
