package app

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var logLevel = new(slog.LevelVar)

// ConfigureLogging installs a text slog handler writing to w as the default
// logger. The level comes from $TOOLBAR_LOG_LEVEL and defaults to Info. A nil
// writer discards all records, which is what the TUI wants unless a log file
// was requested.
func ConfigureLogging(w io.Writer) *slog.Logger {
	logLevel.Set(slog.LevelInfo)
	switch strings.ToUpper(os.Getenv(EnvLogLevel)) {
	case "DEBUG":
		logLevel.Set(slog.LevelDebug)
	case "WARN":
		logLevel.Set(slog.LevelWarn)
	case "ERROR":
		logLevel.Set(slog.LevelError)
	}
	if w == nil {
		w = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	return logger
}

// SetLogLevel changes the level of the logger installed by ConfigureLogging.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}
