package bootstrap

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Scavenger_Go/internal/config"
)

func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func testLoggerConfig(logDir string) *config.Config {
	return &config.Config{
		LogLevel:    "info",
		LogFormat:   "text",
		Environment: "test",
		ServiceName: "scavenger",
		Version:     "dev",
		LogDir:      logDir,
	}
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	restoreDefaultLogger(t)

	var buf bytes.Buffer
	f, err := setupLogger(testLoggerConfig(""), &buf, time.Now())
	require.NoError(t, err)
	assert.Nil(t, f)

	assert.Contains(t, buf.String(), LogMsgLoggingInitialized)
	assert.Contains(t, buf.String(), "service=scavenger")
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	restoreDefaultLogger(t)

	dir := filepath.Join(t.TempDir(), "logs")
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	f, err := setupLogger(testLoggerConfig(dir), &buf, now)
	require.NoError(t, err)
	require.NotNil(t, f)
	slog.Info("first encounter")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(filepath.Join(dir, "session_2024-05-01_12-30-00.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first encounter")
	assert.Contains(t, buf.String(), "first encounter")
}

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < LogFileRetentionCount+3; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2024-05-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, LogFileRetentionCount+1)
	_, err = os.Stat(filepath.Join(dir, "session_2024-05-01_00-00-00.log"))
	assert.True(t, os.IsNotExist(err), "oldest session should be removed")
	_, err = os.Stat(filepath.Join(dir, "notes.txt"))
	assert.NoError(t, err)
}
