package domain

// ArtifactKind names one of the three artifact variants.
type ArtifactKind string

const (
	KindStarChart     ArtifactKind = "StarChart"
	KindEnergyCrystal ArtifactKind = "EnergyCrystal"
	KindInertRock     ArtifactKind = "InertRock"
)

// DestroyedColor is the color of the rock left when a hazardous find goes wrong.
const DestroyedColor = "dull grey"

// Artifact is one of StarChart, EnergyCrystal or InertRock.
// The set is closed: only the types in this package implement it.
type Artifact interface {
	Kind() ArtifactKind
	isArtifact()
}

// StarChart is a navigational chart to a destination, with a risk factor
// (0 is safest) and an origin point given by sector and system.
type StarChart struct {
	Destination string `json:"destination"`
	Risk        int    `json:"risk"`
	Sector      int    `json:"sector"`
	System      int    `json:"system"`
}

// EnergyCrystal is a simple power source.
type EnergyCrystal struct {
	Power int `json:"power"`
}

// InertRock is an inert object whose only property is its color.
type InertRock struct {
	Color string `json:"color"`
}

func (StarChart) Kind() ArtifactKind     { return KindStarChart }
func (EnergyCrystal) Kind() ArtifactKind { return KindEnergyCrystal }
func (InertRock) Kind() ArtifactKind     { return KindInertRock }

func (StarChart) isArtifact()     {}
func (EnergyCrystal) isArtifact() {}
func (InertRock) isArtifact()     {}

// DestroyedArtifact returns what a scavenger holds after a failed hazardous find.
func DestroyedArtifact() Artifact {
	return InertRock{Color: DestroyedColor}
}
