package log

import (
	"log/slog"
	"os"
)

var logger *slog.Logger

// Init initializes the global logger at the given level ("debug", "info",
// "warn", "error"). Unknown strings fall back to info.
func Init(levelStr string) {
	opts := &slog.HandlerOptions{
		Level: levelFromString(levelStr),
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// L returns the global logger. It returns a default logger if Init has not been called.
func L() *slog.Logger {
	if logger == nil {
		Init("info")
	}
	return logger
}

func levelFromString(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
