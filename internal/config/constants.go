package config

import "time"

// Storage drivers
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "scavenger"
	DefaultVersion     = "dev"
	DefaultSQLitePath  = "data/scavengers.db"
	DefaultDBMaxConns  = 10
	DefaultDBMaxIdle   = 5 * time.Minute
	DefaultDBMaxLife   = time.Hour
	DefaultCacheSize   = 256
	DefaultCacheTTL    = 5 * time.Minute
)

const (
	// Configuration file paths
	ConfigPathRoster = "configs/roster.json"
)
