// Package logging builds the zerolog loggers used across footprint and
// carries them, together with the session id, through context.Context.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes where and how logs are written.
type Config struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	Level string
	// Format is FormatConsole or FormatJSON.
	Format string
	// File is the log file path. Empty means stderr.
	File string
}

// LogPathResult is the logger built by NewLoggerWithPath plus the facts the
// CLI reports back to the user about where logs went.
type LogPathResult struct {
	Logger zerolog.Logger

	// FilePath is the log file in use when UsingFile is true.
	FilePath  string
	UsingFile bool

	// FallbackUsed is set when File could not be opened and stderr was used.
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file, if one was opened.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLoggerWithPath builds a logger from cfg. Logs go to stderr unless
// cfg.File is set; a file that cannot be opened falls back to stderr and is
// reported through FallbackUsed rather than an error.
func NewLoggerWithPath(cfg Config, stderr io.Writer) LogPathResult {
	var result LogPathResult

	out := stderr
	if cfg.File != "" {
		f, err := openLogFile(cfg.File)
		if err != nil {
			result.FallbackUsed = true
			result.FallbackReason = err.Error()
		} else {
			result.file = f
			result.FilePath = cfg.File
			result.UsingFile = true
			out = f
		}
	}

	result.Logger = zerolog.New(formatWriter(cfg.Format, out, result.UsingFile)).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()

	return result
}

// ParseLevel parses a level name, defaulting to warn for unknown input.
func ParseLevel(level string) zerolog.Level {
	name := strings.ToLower(strings.TrimSpace(level))
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return zerolog.WarnLevel
	}
	return lvl
}

// IsValidLevel reports whether level is a zerolog level name.
func IsValidLevel(level string) bool {
	name := strings.ToLower(strings.TrimSpace(level))
	_, err := zerolog.ParseLevel(name)
	return err == nil && name != ""
}

// ComponentLogger returns a child logger tagged with component.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// PrintLogPathMessage tells the user where logs are being written.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user the log file was unusable.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file, logging to stderr: %s\n", reason)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory for %q: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", path, err)
	}
	return f, nil
}

// formatWriter wraps out for the requested format. Files never get ANSI
// colors.
func formatWriter(format string, out io.Writer, toFile bool) io.Writer {
	if strings.EqualFold(format, FormatJSON) {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    toFile,
	}
}
