package evaluator

import (
	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/random"
)

// RiskTaking wants every star chart it sees. Two rocks of different colors
// are a gamble decided by rng: heads is valuable, tails incompatible.
func RiskTaking(rng random.Source, owned, found domain.Artifact) domain.Verdict {
	if _, ok := found.(domain.StarChart); ok {
		return domain.VerdictValuable
	}

	switch o := owned.(type) {
	case domain.StarChart:
		return domain.VerdictMundane
	case domain.EnergyCrystal:
		if f, ok := found.(domain.EnergyCrystal); ok {
			return comparePower(o.Power, f.Power)
		}
		return domain.VerdictUnknown
	case domain.InertRock:
		f, ok := found.(domain.InertRock)
		if !ok {
			return domain.VerdictUnknown
		}
		if o.Color == f.Color {
			return domain.VerdictMundane
		}
		if rng.Bool() {
			return domain.VerdictValuable
		}
		return domain.VerdictIncompatible
	default:
		return domain.VerdictUnknown
	}
}
