// Package logging configures the process-wide slog logger the same way
// the teacher's utils/log package does: a text handler fanned out to both
// stdout and a log file via io.MultiWriter, with the level coming from
// config.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Init opens logPath (creating it if necessary) and returns a logger that
// writes every record to both os.Stdout and that file. An unrecognized
// level falls back to LevelInfo and is reported as a Warn record on the
// returned logger.
func Init(logPath string, level string) (*slog.Logger, error) {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		return nil, fmt.Errorf("logging: opening %s: %w", logPath, err)
	}

	multiWriter := io.MultiWriter(os.Stdout, logFile)

	lvl, lvlErr := parseLevel(level)
	handler := slog.NewTextHandler(multiWriter, &slog.HandlerOptions{Level: lvl})
	logger := slog.New(handler)

	if lvlErr != nil {
		logger.Warn(lvlErr.Error())
	}

	return logger, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch level {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q, defaulting to INFO", level)
	}
}
