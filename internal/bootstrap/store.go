package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/Scavenger_Go/internal/config"
	"github.com/osse101/Scavenger_Go/internal/database"
	"github.com/osse101/Scavenger_Go/internal/database/memory"
	"github.com/osse101/Scavenger_Go/internal/database/postgres"
	"github.com/osse101/Scavenger_Go/internal/database/sqlite"
	"github.com/osse101/Scavenger_Go/internal/repository"
)

// Store is the fleet repository chosen by configuration together with the
// handles that keep it alive.
type Store struct {
	Fleet repository.Fleet
	// Pool backs the readiness probe; nil for the in-memory driver
	Pool database.Pool

	closers []func()
}

// Close releases the store's connections in reverse order of opening
func (s *Store) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// OpenStore opens and migrates the storage driver named by cfg.StorageDriver
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	var (
		store *Store
		err   error
	)

	switch cfg.StorageDriver {
	case config.StorageMemory:
		store = &Store{Fleet: memory.NewFleetRepository()}
	case config.StorageSQLite:
		store, err = openSQLite(ctx, cfg.SQLitePath)
	case config.StoragePostgres:
		store, err = openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageDriver, cfg.StorageDriver)
	}
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgStorageReady, "driver", cfg.StorageDriver)
	return store, nil
}

func openSQLite(ctx context.Context, path string) (*Store, error) {
	db, err := database.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenStorage, err)
	}

	if err := migrateUp(ctx, db, database.DialectSQLite); err != nil {
		_ = db.Close()
		return nil, err
	}

	pool := database.WrapSQL(db)
	return &Store{
		Fleet:   sqlite.NewFleetRepository(db),
		Pool:    pool,
		closers: []func(){pool.Close},
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Store, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenStorage, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := migrateUp(ctx, db, database.DialectPostgres); err != nil {
		_ = db.Close()
		pool.Close()
		return nil, err
	}

	return &Store{
		Fleet: postgres.NewFleetRepository(pool),
		Pool:  pool,
		closers: []func(){
			pool.Close,
			func() { _ = db.Close() },
		},
	}, nil
}

func migrateUp(ctx context.Context, db *sql.DB, dialect string) error {
	if err := database.Migrate(ctx, db, dialect, database.MigrateUp); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrateStorage, err)
	}

	version, err := database.MigrationStatus(ctx, db, dialect)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrateStorage, err)
	}
	slog.Info(LogMsgMigrationsApplied, "dialect", dialect, "version", version)
	return nil
}
