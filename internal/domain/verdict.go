package domain

// Verdict is the qualitative result of comparing a found artifact with an owned one.
type Verdict string

const (
	// VerdictValuable means the found artifact is worth more than the owned one
	VerdictValuable Verdict = "valuable"
	// VerdictMundane means the found artifact is ordinary
	VerdictMundane Verdict = "mundane"
	// VerdictHazardous means the found artifact is dangerous to pick up
	VerdictHazardous Verdict = "hazardous"
	// VerdictIncompatible means the found artifact does not go with the owned one
	VerdictIncompatible Verdict = "incompatible"
	// VerdictUnknown means the two artifact types cannot be compared
	VerdictUnknown Verdict = "unknown"
)

// AllVerdicts lists every verdict in declaration order
var AllVerdicts = []Verdict{
	VerdictValuable,
	VerdictMundane,
	VerdictHazardous,
	VerdictIncompatible,
	VerdictUnknown,
}

func (v Verdict) IsValuable() bool { return v == VerdictValuable }
