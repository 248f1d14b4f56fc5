// Package logging wires a process-wide slog.Logger, with optional rotating
// file output via lumberjack.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pajaro5/roadgraph/config"
)

// Log is the process-wide logger. Init or InitWithConfig must run before
// any package reads Log.
var Log *slog.Logger

func init() {
	// A sane default so packages that log during test setup, before main
	// calls Init, don't dereference nil.
	Log = slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// Init configures Log at the given level with JSON output to stdout.
func Init(level string) {
	InitWithConfig(config.LogConfig{Level: level, Format: "json", Output: "stdout"})
}

// InitWithConfig configures Log from the full logging configuration,
// including rotating file output when cfg.Output == "file".
func InitWithConfig(cfg config.LogConfig) {
	var lvl slog.Level
	switch cfg.Level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	var writer io.Writer
	switch cfg.Output {
	case "stderr":
		writer = os.Stderr
	case "file":
		path := cfg.FilePath
		if path == "" {
			path = "logs/roadgraphd.log"
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			writer = os.Stdout
		} else {
			writer = &lumberjack.Logger{
				Filename:   path,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			}
		}
	default:
		writer = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: lvl, AddSource: lvl == slog.LevelDebug}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}

	Log = slog.New(handler)
}

// WithService returns a child logger tagged with the service name.
func WithService(service string) *slog.Logger {
	return Log.With("service", service)
}
