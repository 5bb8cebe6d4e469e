package logging

import (
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/google/wire"
	"github.com/trebuchet-org/salted/internal/domain/config"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates a new logger based on runtime configuration
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	level := levelFromEnv(os.Getenv("SALTED_LOG_LEVEL"))

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time for cleaner output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			// Shorten source paths
			if a.Key == slog.SourceKey {
				source := a.Value.Any().(*slog.Source)
				source.File = shortPath(source.File)
			}
			return a
		},
	}

	if cfg != nil && cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)

	return slog.New(handler)
}

func levelFromEnv(val string) slog.Level {
	switch strings.ToLower(val) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// info, empty or unknown value
		return slog.LevelInfo
	}
}

// shortPath returns a shortened version of the file path
func shortPath(file string) string {
	// Try to make paths relative to project root
	if idx := strings.Index(file, "salted/"); idx != -1 {
		return file[idx+len("salted/"):]
	}
	// Otherwise, strip this package's parent directory
	_, f, _, _ := runtime.Caller(0)
	if idx := strings.LastIndex(f, "/"); idx != -1 {
		if idx2 := strings.LastIndex(file, f[:idx]); idx2 != -1 {
			return file[idx2+len(f[:idx])+1:]
		}
	}
	// Last resort: just the filename
	parts := strings.Split(file, "/")
	return parts[len(parts)-1]
}
