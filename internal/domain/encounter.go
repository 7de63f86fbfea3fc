package domain

import (
	"time"

	"github.com/google/uuid"
)

// EncounterType is the kind of event that may change a scavenger's artifact
type EncounterType string

const (
	EncounterExplore EncounterType = "explore"
	EncounterTrade   EncounterType = "trade"
)

// LogEncounter is the encounter tag used in replay log lines
type LogEncounter string

const (
	LogEncounterAsteroid    LogEncounter = "ASTEROID"
	LogEncounterTradingPost LogEncounter = "TRADING_POST"
)

// Outcome describes what an encounter did to the held artifact
type Outcome string

const (
	// OutcomeSwapped: the found artifact replaced the held one
	OutcomeSwapped Outcome = "swapped"
	// OutcomeIgnored: the found artifact was left behind
	OutcomeIgnored Outcome = "ignored"
	// OutcomeShieldHeld: a hazardous find was picked up safely
	OutcomeShieldHeld Outcome = "shield_held"
	// OutcomeDestroyed: a hazardous find destroyed the held artifact
	OutcomeDestroyed Outcome = "destroyed"
	// OutcomeTraded: both scavengers exchanged artifacts
	OutcomeTraded Outcome = "traded"
	// OutcomeDeclined: at least one scavenger refused the trade
	OutcomeDeclined Outcome = "declined"
)

// ExploreResult is the outcome of a casual or hazardous find
type ExploreResult struct {
	Before     Scavenger `json:"-"`
	After      Scavenger `json:"-"`
	Found      Artifact  `json:"-"`
	LeftBehind Artifact  `json:"-"`
	Verdict    Verdict   `json:"verdict"`
	Outcome    Outcome   `json:"outcome"`
}

// TradeResult is the outcome of a trade between two scavengers
type TradeResult struct {
	A          Scavenger `json:"-"`
	B          Scavenger `json:"-"`
	OfferedByA Artifact  `json:"-"`
	OfferedByB Artifact  `json:"-"`
	VerdictA   Verdict   `json:"verdict_a"`
	VerdictB   Verdict   `json:"verdict_b"`
	Outcome    Outcome   `json:"outcome"`
}

// Traded reports whether the artifacts changed hands
func (r TradeResult) Traded() bool {
	return r.Outcome == OutcomeTraded
}

// JournalEntry records one encounter from a single scavenger's point of view.
// Artifacts are kept in their log text form.
type JournalEntry struct {
	ID            uuid.UUID     `json:"id"`
	ScavengerID   uuid.UUID     `json:"scavenger_id"`
	ScavengerName string        `json:"scavenger_name"`
	Encounter     EncounterType `json:"encounter"`
	Policy        Policy        `json:"policy"`
	Verdict       Verdict       `json:"verdict"`
	Outcome       Outcome       `json:"outcome"`
	Held          string        `json:"held"`
	Other         string        `json:"other"`
	LeftBehind    string        `json:"left_behind"`
	Counterparty  string        `json:"counterparty,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
