package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new session starts
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting scavenger service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Storage
// =============================================================================

// Log messages for storage setup
const (
	LogMsgStorageReady      = "Storage ready"
	LogMsgMigrationsApplied = "Migrations applied"
	LogMsgRosterLoaded      = "Roster loaded"
	LogMsgFixedSeed         = "Encounter coin uses a fixed seed"
)

// Error messages for storage setup
const (
	ErrMsgUnknownStorageDriver = "unknown storage driver"
	ErrMsgOpenStorage          = "failed to open storage"
	ErrMsgMigrateStorage       = "failed to migrate storage"
)

// =============================================================================
// Shutdown
// =============================================================================

// ShutdownTimeout bounds how long in-flight requests get to finish
const ShutdownTimeout = 15 * time.Second

// Log messages for graceful shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingStorage       = "Closing storage"
	LogMsgServerStopped        = "Server stopped"
)
