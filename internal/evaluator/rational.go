package evaluator

import "github.com/osse101/Scavenger_Go/internal/domain"

// Rational compares like with like: charts by risk, crystals by power and
// rocks by color. A crystal holder treats any chart as hazardous.
func Rational(owned, found domain.Artifact) domain.Verdict {
	switch o := owned.(type) {
	case domain.StarChart:
		return rationalOwnedStarChart(o, found)
	case domain.EnergyCrystal:
		return rationalOwnedEnergyCrystal(o, found)
	case domain.InertRock:
		return rationalOwnedInertRock(o, found)
	default:
		return domain.VerdictUnknown
	}
}

func rationalOwnedStarChart(owned domain.StarChart, found domain.Artifact) domain.Verdict {
	switch f := found.(type) {
	case domain.StarChart:
		return compareRisk(owned.Risk, f.Risk)
	case domain.EnergyCrystal:
		return domain.VerdictMundane
	default:
		return domain.VerdictUnknown
	}
}

func rationalOwnedEnergyCrystal(owned domain.EnergyCrystal, found domain.Artifact) domain.Verdict {
	switch f := found.(type) {
	case domain.StarChart:
		return domain.VerdictHazardous
	case domain.EnergyCrystal:
		return comparePower(owned.Power, f.Power)
	default:
		return domain.VerdictUnknown
	}
}

func rationalOwnedInertRock(owned domain.InertRock, found domain.Artifact) domain.Verdict {
	if f, ok := found.(domain.InertRock); ok {
		if owned.Color == f.Color {
			return domain.VerdictMundane
		}
		return domain.VerdictIncompatible
	}
	return domain.VerdictUnknown
}

// compareRisk: a safer chart (strictly lower risk) is valuable
func compareRisk(ownedRisk, foundRisk int) domain.Verdict {
	if ownedRisk > foundRisk {
		return domain.VerdictValuable
	}
	return domain.VerdictMundane
}

// comparePower: a strictly stronger crystal is valuable
func comparePower(ownedPower, foundPower int) domain.Verdict {
	if ownedPower < foundPower {
		return domain.VerdictValuable
	}
	return domain.VerdictMundane
}
