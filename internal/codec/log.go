package codec

import (
	"fmt"
	"strings"

	"github.com/osse101/Scavenger_Go/internal/domain"
)

// LogEntry is one parsed encounter log line
type LogEntry struct {
	Encounter domain.LogEncounter
	Owned     domain.Artifact
	Other     domain.Artifact
}

// ParseLogLine parses "<ENCOUNTER> | <owned> | <other>".
// The line either parses completely or returns an error wrapping domain.ErrMalformedInput.
func ParseLogLine(line string) (LogEntry, error) {
	parts := strings.SplitN(line, logFieldSeparator, logFieldCount)
	if len(parts) != logFieldCount {
		return LogEntry{}, malformed(errMsgLogFieldCount, logFieldSeparator, len(parts))
	}

	encounter := domain.LogEncounter(strings.TrimSpace(parts[0]))
	switch encounter {
	case domain.LogEncounterAsteroid, domain.LogEncounterTradingPost:
	default:
		return LogEntry{}, malformed(errMsgUnknownEncounter, string(encounter))
	}

	owned, err := ParseArtifact(parts[1])
	if err != nil {
		return LogEntry{}, fmt.Errorf("%s: %w", errMsgOwnedField, err)
	}
	other, err := ParseArtifact(parts[2])
	if err != nil {
		return LogEntry{}, fmt.Errorf("%s: %w", errMsgOtherField, err)
	}

	return LogEntry{Encounter: encounter, Owned: owned, Other: other}, nil
}

// FormatLogLine renders entry in the form ParseLogLine reads
func FormatLogLine(entry LogEntry) string {
	return fmt.Sprintf(logLineFormat, entry.Encounter, Describe(entry.Owned), Describe(entry.Other))
}
