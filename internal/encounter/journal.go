package encounter

import (
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Scavenger_Go/internal/codec"
	"github.com/osse101/Scavenger_Go/internal/domain"
)

// ExploreJournal builds the journal entry for a find
func ExploreJournal(r domain.ExploreResult, at time.Time) domain.JournalEntry {
	return domain.JournalEntry{
		ID:            uuid.New(),
		ScavengerID:   r.After.ID,
		ScavengerName: r.After.Name,
		Encounter:     domain.EncounterExplore,
		Policy:        r.After.Policy,
		Verdict:       r.Verdict,
		Outcome:       r.Outcome,
		Held:          codec.Describe(r.After.Held),
		Other:         codec.Describe(r.Found),
		LeftBehind:    codec.Describe(r.LeftBehind),
		CreatedAt:     at,
	}
}

// TradeJournal builds one entry per side of a trade, A first
func TradeJournal(r domain.TradeResult, at time.Time) []domain.JournalEntry {
	return []domain.JournalEntry{
		tradeSide(r.A, r.B.Name, r.OfferedByA, r.OfferedByB, r.VerdictA, r.Outcome, at),
		tradeSide(r.B, r.A.Name, r.OfferedByB, r.OfferedByA, r.VerdictB, r.Outcome, at),
	}
}

func tradeSide(s domain.Scavenger, counterparty string, offered, received domain.Artifact, verdict domain.Verdict, outcome domain.Outcome, at time.Time) domain.JournalEntry {
	// after a declined trade each side still has its own artifact and the
	// counterparty's offer is what gets left behind
	leftBehind := received
	if outcome == domain.OutcomeTraded {
		leftBehind = offered
	}

	return domain.JournalEntry{
		ID:            uuid.New(),
		ScavengerID:   s.ID,
		ScavengerName: s.Name,
		Encounter:     domain.EncounterTrade,
		Policy:        s.Policy,
		Verdict:       verdict,
		Outcome:       outcome,
		Held:          codec.Describe(s.Held),
		Other:         codec.Describe(received),
		LeftBehind:    codec.Describe(leftBehind),
		Counterparty:  counterparty,
		CreatedAt:     at,
	}
}
