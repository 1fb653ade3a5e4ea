package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// SetupLogger builds the process logger for the given environment. Local runs
// log human-readable text to stdout; dev and prod log JSON, prod additionally
// to a file under logPath.
func SetupLogger(env, logPath string) *slog.Logger {
	var handler slog.Handler

	switch env {
	case envDev:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envProd:
		out := io.Writer(os.Stdout)
		file, err := os.OpenFile(
			filepath.Join(logPath, "pharmacs.log"),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644,
		)
		if err == nil {
			out = io.MultiWriter(os.Stdout, file)
		}
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo})
	default: // envLocal
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	return slog.New(handler)
}
