package main

import (
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/Scavenger_Go/internal/config"
	"github.com/osse101/Scavenger_Go/internal/database"
)

// openSQL opens the configured database without migrating it.
// The returned close func releases everything opened.
func openSQL(cfg *config.Config) (*sql.DB, string, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, "", nil, err
		}
		return db, database.DialectSQLite, func() { _ = db.Close() }, nil
	case config.StoragePostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
		if err != nil {
			return nil, "", nil, err
		}
		db := stdlib.OpenDBFromPool(pool)
		return db, database.DialectPostgres, func() {
			_ = db.Close()
			pool.Close()
		}, nil
	default:
		return nil, "", nil, fmt.Errorf("storage driver %q has no database; set STORAGE_DRIVER to sqlite or postgres", cfg.StorageDriver)
	}
}
