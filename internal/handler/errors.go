package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingScavengerName  = "Missing scavenger name"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
)

// Action names used when logging failed service calls
const (
	ActionRegister = "Register scavenger"
	ActionGet      = "Get scavenger"
	ActionList     = "List scavengers"
	ActionExplore  = "Explore"
	ActionTrade    = "Trade"
	ActionJournal  = "Get journal"
	ActionEvaluate = "Evaluate"
	ActionReplay   = "Replay log line"
)
