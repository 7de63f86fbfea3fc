package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/Scavenger_Go/internal/config"
	"github.com/osse101/Scavenger_Go/internal/logger"
)

// SetupLogger installs the slog default from cfg. When cfg.LogDir is set the
// output also goes to a timestamped session file there, and older sessions
// beyond LogFileRetentionCount are removed.
// Returns the log file handle (caller must close), or nil when logging only to stdout.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLogger(cfg, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, stdout io.Writer, now time.Time) (*os.File, error) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		logger.IsDevelopment(cfg.Environment),
	)

	var logFile *os.File
	out := stdout
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(stdout, f)
	}

	logger.InitLoggerWithWriter(loggerConfig, out)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel())
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"storage_driver", cfg.StorageDriver,
		"port", cfg.Port,
		"cache_size", cfg.CacheSize,
		"cache_ttl", cfg.CacheTTL)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that at most
// LogFileRetentionCount remain before the new one is created.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	// timestamped names sort chronologically
	sort.Strings(logFiles)

	for len(logFiles) > LogFileRetentionCount {
		if err := os.Remove(filepath.Join(logDir, logFiles[0])); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[0], "error", err)
		}
		logFiles = logFiles[1:]
	}
}
