package encounter

import (
	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/evaluator"
	"github.com/osse101/Scavenger_Go/internal/random"
)

// Engine applies verdicts to scavengers. It is pure logic with no DB or service dependencies.
type Engine struct {
	evaluator *evaluator.Evaluator
	shield    random.Source
}

// NewEngine creates an engine. rng is used both for the risk-taking rock gamble
// and for the shield check on hazardous finds.
func NewEngine(rng random.Source) *Engine {
	return &Engine{
		evaluator: evaluator.New(rng),
		shield:    rng,
	}
}

// Evaluate exposes the engine's evaluator
func (e *Engine) Evaluate(policy domain.Policy, owned, found domain.Artifact) domain.Verdict {
	return e.evaluator.Evaluate(policy, owned, found)
}

// Explore resolves a find. The scavenger passed in is never modified.
func (e *Engine) Explore(s domain.Scavenger, found domain.Artifact) domain.ExploreResult {
	verdict := e.evaluator.Evaluate(s.Policy, s.Held, found)

	result := domain.ExploreResult{
		Before:  s,
		Found:   found,
		Verdict: verdict,
	}

	switch verdict {
	case domain.VerdictValuable:
		result.After = s.WithHeld(found)
		result.LeftBehind = s.Held
		result.Outcome = domain.OutcomeSwapped
	case domain.VerdictHazardous:
		if e.shield.Bool() {
			result.After = s.WithHeld(found)
			result.LeftBehind = s.Held
			result.Outcome = domain.OutcomeShieldHeld
		} else {
			result.After = s.WithHeld(domain.DestroyedArtifact())
			result.LeftBehind = found
			result.Outcome = domain.OutcomeDestroyed
		}
	default:
		result.After = s
		result.LeftBehind = found
		result.Outcome = domain.OutcomeIgnored
	}

	return result
}

// Trade swaps the held artifacts of a and b when both judge the other's
// artifact valuable. Both verdicts are computed before anything changes.
func (e *Engine) Trade(a, b domain.Scavenger) domain.TradeResult {
	verdictA := e.evaluator.Evaluate(a.Policy, a.Held, b.Held)
	verdictB := e.evaluator.Evaluate(b.Policy, b.Held, a.Held)

	result := domain.TradeResult{
		A:          a,
		B:          b,
		OfferedByA: a.Held,
		OfferedByB: b.Held,
		VerdictA:   verdictA,
		VerdictB:   verdictB,
		Outcome:    domain.OutcomeDeclined,
	}

	if verdictA.IsValuable() && verdictB.IsValuable() {
		result.A = a.WithHeld(b.Held)
		result.B = b.WithHeld(a.Held)
		result.Outcome = domain.OutcomeTraded
	}

	return result
}
