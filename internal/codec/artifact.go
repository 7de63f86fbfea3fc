// Package codec converts artifacts to and from their log text form and replays
// encounter log lines.
//
//	StarChart:<dest>;RISK=<risk>;SEC=<sector>;SYS=<system>
//	EnergyCrystal:POWER=<power>
//	InertRock:COLOR=<color>
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/Scavenger_Go/internal/domain"
)

// Describe renders an artifact in its log text form. A nil artifact renders as "".
func Describe(a domain.Artifact) string {
	switch v := a.(type) {
	case domain.StarChart:
		return fmt.Sprintf("%s%s%s%s%s%d%s%s%d%s%s%d",
			domain.KindStarChart, kindSeparator, v.Destination,
			fieldSeparator, markerRisk, v.Risk,
			fieldSeparator, markerSector, v.Sector,
			fieldSeparator, markerSystem, v.System)
	case domain.EnergyCrystal:
		return fmt.Sprintf("%s%s%s%d", domain.KindEnergyCrystal, kindSeparator, markerPower, v.Power)
	case domain.InertRock:
		return fmt.Sprintf("%s%s%s%s", domain.KindInertRock, kindSeparator, markerColor, v.Color)
	default:
		return ""
	}
}

// ParseArtifact is the inverse of Describe. Errors wrap domain.ErrMalformedInput.
func ParseArtifact(s string) (domain.Artifact, error) {
	s = strings.TrimSpace(s)

	kind, body, ok := strings.Cut(s, kindSeparator)
	if !ok {
		return nil, malformed(errMsgMissingKind)
	}

	switch domain.ArtifactKind(kind) {
	case domain.KindStarChart:
		return parseStarChart(body)
	case domain.KindEnergyCrystal:
		power, err := intField(body, markerPower, domain.KindEnergyCrystal)
		if err != nil {
			return nil, err
		}
		return domain.EnergyCrystal{Power: power}, nil
	case domain.KindInertRock:
		color, err := field(body, markerColor, domain.KindInertRock)
		if err != nil {
			return nil, err
		}
		return domain.InertRock{Color: color}, nil
	default:
		return nil, malformed(errMsgUnknownKind, kind)
	}
}

// Validate reports whether a survives a Describe/ParseArtifact round trip.
// Destinations and colors may not contain the separators.
func Validate(a domain.Artifact) error {
	var text, label string
	switch v := a.(type) {
	case domain.StarChart:
		text, label = v.Destination, "destination"
	case domain.EnergyCrystal:
		return nil
	case domain.InertRock:
		text, label = v.Color, "color"
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidArtifact, errMsgNilArtifact)
	}

	for _, reserved := range []string{fieldSeparator, logFieldSeparator} {
		if strings.Contains(text, reserved) {
			return fmt.Errorf("%w: "+errMsgReservedChar, domain.ErrInvalidArtifact, label, reserved)
		}
	}
	if strings.TrimSpace(text) != text {
		return fmt.Errorf("%w: %s has surrounding whitespace", domain.ErrInvalidArtifact, label)
	}
	return nil
}

func parseStarChart(body string) (domain.Artifact, error) {
	dest, fields, _ := strings.Cut(body, fieldSeparator)

	risk, err := intField(fields, markerRisk, domain.KindStarChart)
	if err != nil {
		return nil, err
	}
	sector, err := intField(fields, markerSector, domain.KindStarChart)
	if err != nil {
		return nil, err
	}
	system, err := intField(fields, markerSystem, domain.KindStarChart)
	if err != nil {
		return nil, err
	}

	return domain.StarChart{Destination: dest, Risk: risk, Sector: sector, System: system}, nil
}

// field returns the text after marker up to the next ';' or the end of s
func field(s, marker string, kind domain.ArtifactKind) (string, error) {
	_, rest, ok := strings.Cut(s, marker)
	if !ok {
		return "", malformed(errMsgMissingMarker, kind, marker)
	}
	value, _, _ := strings.Cut(rest, fieldSeparator)
	return value, nil
}

func intField(s, marker string, kind domain.ArtifactKind) (int, error) {
	value, err := field(s, marker, kind)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, malformed(errMsgNotANumber, marker, value)
	}
	return n, nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrMalformedInput}, args...)...)
}
