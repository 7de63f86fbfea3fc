package codec

// Artifact text markers
const (
	kindSeparator  = ":"
	fieldSeparator = ";"

	markerRisk   = "RISK="
	markerSector = "SEC="
	markerSystem = "SYS="
	markerPower  = "POWER="
	markerColor  = "COLOR="
)

// Log line layout
const (
	logFieldSeparator = "|"
	logFieldCount     = 3
	logLineFormat     = "%s | %s | %s"

	// MaxLogLineBytes bounds a single replay log line. Longer lines are
	// reported as malformed and skipped.
	MaxLogLineBytes = 64 << 10
)

// Error details appended to domain.ErrMalformedInput
const (
	errMsgMissingKind      = "missing artifact type prefix"
	errMsgUnknownKind      = "unknown artifact type %q"
	errMsgMissingMarker    = "%s is missing %s"
	errMsgNotANumber       = "%s%q is not a number"
	errMsgLogFieldCount    = "expected 3 fields separated by %q, got %d"
	errMsgUnknownEncounter = "unknown encounter %q"
	errMsgOwnedField       = "owned artifact"
	errMsgOtherField       = "other artifact"
	errMsgReservedChar     = "%s contains reserved character %q"
	errMsgNilArtifact      = "artifact is nil"
	errMsgLineTooLong      = "line longer than %d bytes"
)
