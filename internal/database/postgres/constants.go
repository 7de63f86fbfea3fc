package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Fleet Operations
const (
	ErrMsgFailedToInsertScavenger = "failed to insert scavenger"
	ErrMsgFailedToGetScavenger    = "failed to get scavenger"
	ErrMsgFailedToListScavengers  = "failed to list scavengers"
	ErrMsgFailedToUpdateScavenger = "failed to update scavenger"
	ErrMsgFailedToInsertJournal   = "failed to insert journal entry"
	ErrMsgFailedToGetJournal      = "failed to get journal"
)
