package domain

import (
	"fmt"
	"strings"
)

// Policy is the fixed rule set a scavenger evaluates artifacts with
type Policy string

const (
	PolicyRational   Policy = "rational"
	PolicyRiskTaking Policy = "risk_taking"
)

// Valid reports whether p is one of the known policies
func (p Policy) Valid() bool {
	return p == PolicyRational || p == PolicyRiskTaking
}

// ParsePolicy accepts "rational", "risk_taking", "risk-taking" or "risktaking" in any case
func ParsePolicy(s string) (Policy, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")

	switch normalized {
	case string(PolicyRational):
		return PolicyRational, nil
	case string(PolicyRiskTaking), "risktaking":
		return PolicyRiskTaking, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}
