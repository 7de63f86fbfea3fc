package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Scavenger_Go/internal/database"
	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/repository"
	"github.com/osse101/Scavenger_Go/internal/repository/repotest"
)

func newTestRepository(t *testing.T) *FleetRepository {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "fleet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db, database.DialectSQLite, database.MigrateUp))
	return NewFleetRepository(db)
}

func TestFleetRepository_Contract(t *testing.T) {
	repotest.RunFleetContract(t, func(t *testing.T) repository.Fleet {
		return newTestRepository(t)
	})
}

func TestFleetRepository_CorruptHeldArtifact(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	s := domain.NewScavenger("Ada", domain.PolicyRational, domain.EnergyCrystal{Power: 3})
	require.NoError(t, repo.CreateScavenger(ctx, s))

	_, err := repo.db.ExecContext(ctx, `UPDATE scavengers SET held = 'Plutonium:YIELD=9' WHERE name = ?`, "Ada")
	require.NoError(t, err)

	_, err = repo.GetScavenger(ctx, "Ada")
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}
