package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/jcamargo/pronosbot/internal/pkg/config"
)

// Setup configures the global logger. Fail-soft recoveries throughout
// the pipeline log at warning level, so the default level must not be
// above warn or degraded reports become silent.
func Setup(cfg config.LoggingConfig, serviceName string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})

	logger := slog.New(handler).With("service", serviceName)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
