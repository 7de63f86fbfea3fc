package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Dialects understood by Migrate
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Migration directions
const (
	MigrateUp   = "up"
	MigrateDown = "down"
)

// sqliteDSNParams enables WAL, foreign keys and a busy timeout for concurrent writers
const sqliteDSNParams = "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString     = "failed to parse connection string"
	ErrMsgFailedToCreatePool          = "failed to create connection pool"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToOpenSQLite          = "failed to open sqlite database"
	ErrMsgFailedToSetDialect          = "failed to set migration dialect"
	ErrMsgFailedToMigrate             = "failed to apply migrations"
	ErrMsgUnknownDialect              = "unknown dialect"
	ErrMsgUnknownDirection            = "unknown migration direction"
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
