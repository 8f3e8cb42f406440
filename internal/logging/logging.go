// Package logging builds the charmbracelet/log logger used by every command,
// optionally writing to a size-rotated file.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/tilemerge/internal/config"
)

// Logger is a configured logger plus the file it may own.
type Logger struct {
	*log.Logger
	closer io.Closer
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// New builds a logger for cfg with the given prefix.
// With a file configured, output goes to a rotated lumberjack file;
// otherwise to fallback. A nil fallback discards.
func New(cfg config.LogConfig, prefix string, fallback io.Writer) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var (
		out    io.Writer = fallback
		closer io.Closer
	)
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		out, closer = lj, lj
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return &Logger{Logger: logger, closer: closer}, nil
}

// Stderr builds a logger that falls back to stderr, for the server commands.
func Stderr(cfg config.LogConfig, prefix string) (*Logger, error) {
	return New(cfg, prefix, os.Stderr)
}

func parseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: bad level %q: %w", s, err)
	}
	return level, nil
}
