package main

import (
	"context"
	"fmt"

	"github.com/osse101/Scavenger_Go/internal/config"
	"github.com/osse101/Scavenger_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status")
	}
	subcmd := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, dialect, closeDB, err := openSQL(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	ctx := context.Background()

	switch subcmd {
	case database.MigrateUp:
		PrintHeader(fmt.Sprintf("Migrating %s up", dialect))
		if err := database.Migrate(ctx, db, dialect, database.MigrateUp); err != nil {
			return err
		}
	case database.MigrateDown:
		if !confirm("Rolling back drops the newest schema version and its data. Continue?") {
			PrintWarning("Rollback cancelled")
			return nil
		}
		PrintHeader(fmt.Sprintf("Rolling back %s one version", dialect))
		if err := database.Migrate(ctx, db, dialect, database.MigrateDown); err != nil {
			return err
		}
	case "status":
	default:
		return fmt.Errorf("unknown subcommand %q: use up, down, status", subcmd)
	}

	version, err := database.MigrationStatus(ctx, db, dialect)
	if err != nil {
		return err
	}
	PrintSuccess("%s schema at version %d", dialect, version)
	return nil
}
