// Package evaluator classifies a found artifact against an owned one under a
// scavenger's policy. Evaluation is pure apart from the injected coin, which
// only the risk-taking policy uses.
package evaluator

import (
	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/random"
)

// Evaluator dispatches to the rule set of a policy
type Evaluator struct {
	rng random.Source
}

// New creates an Evaluator that flips rng for the risk-taking rock gamble
func New(rng random.Source) *Evaluator {
	return &Evaluator{rng: rng}
}

// Evaluate returns the verdict of policy on found, given owned.
// An unrecognised policy yields VerdictUnknown.
func (e *Evaluator) Evaluate(policy domain.Policy, owned, found domain.Artifact) domain.Verdict {
	switch policy {
	case domain.PolicyRational:
		return Rational(owned, found)
	case domain.PolicyRiskTaking:
		return RiskTaking(e.rng, owned, found)
	default:
		return domain.VerdictUnknown
	}
}
