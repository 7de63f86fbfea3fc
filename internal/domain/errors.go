package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgMalformedInput = "malformed input"
	ErrMsgInvalidInput   = "invalid input"

	// Scavenger errors
	ErrMsgScavengerNotFound = "scavenger not found"
	ErrMsgScavengerExists   = "scavenger already exists"
	ErrMsgInvalidPolicy     = "invalid policy"
	ErrMsgInvalidArtifact   = "invalid artifact"
	ErrMsgSelfTrade         = "a scavenger cannot trade with itself"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrMalformedInput is returned when artifact text or a log line cannot be parsed
	ErrMalformedInput = errors.New(ErrMsgMalformedInput)
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)

	ErrScavengerNotFound = errors.New(ErrMsgScavengerNotFound)
	ErrScavengerExists   = errors.New(ErrMsgScavengerExists)
	ErrInvalidPolicy     = errors.New(ErrMsgInvalidPolicy)
	ErrInvalidArtifact   = errors.New(ErrMsgInvalidArtifact)
	ErrSelfTrade         = errors.New(ErrMsgSelfTrade)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
