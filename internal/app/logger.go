package app

import (
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

func parseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances. When fileW
// is non-nil, every record is also written to it as JSON.
func newLogger(levelStr, formatStr string, outW, fileW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(levelStr)}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	if fileW != nil {
		handler = slogmulti.Fanout(handler, slog.NewJSONHandler(fileW, handlerOpts))
	}

	return slog.New(handler)
}
