// Package repotest holds behaviour checks shared by every repository.Fleet implementation.
package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/repository"
)

// RunFleetContract exercises a Fleet implementation. newRepo must return an empty store.
func RunFleetContract(t *testing.T, newRepo func(t *testing.T) repository.Fleet) {
	t.Helper()

	t.Run("create and get", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		s := scavenger("Vega", domain.PolicyRational, domain.StarChart{Destination: "Kepler Gate", Risk: 6, Sector: 3, System: 11})
		require.NoError(t, repo.CreateScavenger(ctx, s))

		got, err := repo.GetScavenger(ctx, "Vega")
		require.NoError(t, err)
		assert.Equal(t, s.ID, got.ID)
		assert.Equal(t, s.Name, got.Name)
		assert.Equal(t, s.Policy, got.Policy)
		assert.Equal(t, s.Held, got.Held)
		assert.True(t, s.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.CreateScavenger(ctx, scavenger("Orin", domain.PolicyRiskTaking, domain.InertRock{Color: "blue"})))
		err := repo.CreateScavenger(ctx, scavenger("Orin", domain.PolicyRational, domain.InertRock{Color: "red"}))
		assert.ErrorIs(t, err, domain.ErrScavengerExists)
	})

	t.Run("missing scavenger", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.GetScavenger(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrScavengerNotFound)

		_, err = repo.GetJournal(ctx, "nobody", 10)
		assert.ErrorIs(t, err, domain.ErrScavengerNotFound)

		err = repo.UpdateScavengers(ctx, scavenger("nobody", domain.PolicyRational, domain.EnergyCrystal{Power: 1}))
		assert.ErrorIs(t, err, domain.ErrScavengerNotFound)
	})

	t.Run("list is ordered by name", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, name := range []string{"Tamsin", "Ada", "Mira"} {
			require.NoError(t, repo.CreateScavenger(ctx, scavenger(name, domain.PolicyRational, domain.EnergyCrystal{Power: 2})))
		}

		list, err := repo.ListScavengers(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "Ada", list[0].Name)
		assert.Equal(t, "Mira", list[1].Name)
		assert.Equal(t, "Tamsin", list[2].Name)
	})

	t.Run("update pair is atomic", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a := scavenger("Ada", domain.PolicyRational, domain.EnergyCrystal{Power: 2})
		require.NoError(t, repo.CreateScavenger(ctx, a))

		ghost := scavenger("Ghost", domain.PolicyRational, domain.EnergyCrystal{Power: 9})
		err := repo.UpdateScavengers(ctx, a.WithHeld(domain.InertRock{Color: "red"}), ghost)
		require.ErrorIs(t, err, domain.ErrScavengerNotFound)

		got, err := repo.GetScavenger(ctx, "Ada")
		require.NoError(t, err)
		assert.Equal(t, domain.EnergyCrystal{Power: 2}, got.Held, "failed update must not touch the first scavenger")

		b := scavenger("Bo", domain.PolicyRiskTaking, domain.InertRock{Color: "green"})
		require.NoError(t, repo.CreateScavenger(ctx, b))
		require.NoError(t, repo.UpdateScavengers(ctx, a.WithHeld(b.Held), b.WithHeld(a.Held)))

		gotA, err := repo.GetScavenger(ctx, "Ada")
		require.NoError(t, err)
		gotB, err := repo.GetScavenger(ctx, "Bo")
		require.NoError(t, err)
		assert.Equal(t, domain.InertRock{Color: "green"}, gotA.Held)
		assert.Equal(t, domain.EnergyCrystal{Power: 2}, gotB.Held)
	})

	t.Run("journal newest first with limit", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		s := scavenger("Vega", domain.PolicyRational, domain.EnergyCrystal{Power: 4})
		require.NoError(t, repo.CreateScavenger(ctx, s))

		base := time.Now().UTC().Truncate(time.Millisecond)
		for i, outcome := range []domain.Outcome{domain.OutcomeIgnored, domain.OutcomeSwapped, domain.OutcomeShieldHeld} {
			require.NoError(t, repo.AppendJournal(ctx, journalEntry(s, outcome, base.Add(time.Duration(i)*time.Second))))
		}

		all, err := repo.GetJournal(ctx, "Vega", 0)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, domain.OutcomeShieldHeld, all[0].Outcome)
		assert.Equal(t, domain.OutcomeIgnored, all[2].Outcome)
		assert.Equal(t, s.ID, all[0].ScavengerID)
		assert.Equal(t, "EnergyCrystal:POWER=4", all[0].Held)

		limited, err := repo.GetJournal(ctx, "Vega", 2)
		require.NoError(t, err)
		require.Len(t, limited, 2)
		assert.Equal(t, domain.OutcomeSwapped, limited[1].Outcome)
	})

	t.Run("journal for unknown scavenger is rejected", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		ghost := scavenger("Ghost", domain.PolicyRational, domain.EnergyCrystal{Power: 1})
		err := repo.AppendJournal(ctx, journalEntry(ghost, domain.OutcomeIgnored, time.Now().UTC()))
		assert.ErrorIs(t, err, domain.ErrScavengerNotFound)
	})

	t.Run("empty journal", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.CreateScavenger(ctx, scavenger("Quiet", domain.PolicyRational, domain.EnergyCrystal{Power: 1})))
		entries, err := repo.GetJournal(ctx, "Quiet", 5)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func scavenger(name string, policy domain.Policy, held domain.Artifact) domain.Scavenger {
	s := domain.NewScavenger(name, policy, held)
	s.CreatedAt = s.CreatedAt.Truncate(time.Millisecond)
	s.UpdatedAt = s.CreatedAt
	return s
}

func journalEntry(s domain.Scavenger, outcome domain.Outcome, at time.Time) domain.JournalEntry {
	return domain.JournalEntry{
		ID:            uuid.New(),
		ScavengerID:   s.ID,
		ScavengerName: s.Name,
		Encounter:     domain.EncounterExplore,
		Policy:        s.Policy,
		Verdict:       domain.VerdictMundane,
		Outcome:       outcome,
		Held:          "EnergyCrystal:POWER=4",
		Other:         "InertRock:COLOR=red",
		LeftBehind:    "InertRock:COLOR=red",
		CreatedAt:     at,
	}
}
