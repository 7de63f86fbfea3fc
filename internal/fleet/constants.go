package fleet

import "time"

// Cache defaults used when the caller passes zero values
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

// Journal limits
const (
	DefaultJournalLimit = 20
	MaxJournalLimit     = 500
)

// Scavenger name limits
const (
	MaxNameLength = 64
)

// Log Messages
const (
	LogMsgScavengerRegistered = "Scavenger registered"
	LogMsgExploreResolved     = "Explore resolved"
	LogMsgTradeResolved       = "Trade resolved"
	LogMsgRosterLoaded        = "Roster loaded"
	LogMsgRosterEntrySkipped  = "Roster entry already registered, skipping"
	LogMsgJournalWriteFailed  = "Failed to append journal entry"
)

// Error Messages
const (
	ErrMsgEmptyName        = "scavenger name is required"
	ErrMsgNameTooLong      = "scavenger name is too long"
	ErrMsgRosterInvalid    = "roster failed schema validation"
	ErrMsgRosterRead       = "failed to read roster"
	ErrMsgRosterEntry      = "roster entry"
	ErrMsgFailedToPersist  = "failed to persist encounter"
	ErrMsgFailedToRegister = "failed to register scavenger"
)
