package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/osse101/Scavenger_Go/internal/database/migrations"
)

// goose keeps its dialect and filesystem in package globals
var gooseMu sync.Mutex

// Migrate runs the embedded migrations for dialect in the given direction.
// Down rolls back a single version.
func Migrate(ctx context.Context, db *sql.DB, dialect, direction string) error {
	return withGoose(dialect, func(dir string) error {
		var err error
		switch direction {
		case MigrateUp:
			err = goose.UpContext(ctx, db, dir)
		case MigrateDown:
			err = goose.DownContext(ctx, db, dir)
		default:
			return fmt.Errorf("%s: %q", ErrMsgUnknownDirection, direction)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
		}

		slog.Default().Info(LogMsgMigrationsApplied, "dialect", dialect, "direction", direction)
		return nil
	})
}

// MigrationStatus logs the state of every migration and returns the current version
func MigrationStatus(ctx context.Context, db *sql.DB, dialect string) (int64, error) {
	var version int64
	err := withGoose(dialect, func(dir string) error {
		if err := goose.StatusContext(ctx, db, dir); err != nil {
			return err
		}
		v, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return err
		}
		version = v
		return nil
	})
	return version, err
}

func withGoose(dialect string, fn func(dir string) error) error {
	gooseDialect, err := gooseDialectFor(dialect)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{})

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}

	if _, err := fs.Stat(migrations.FS, dialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	return fn(dialect)
}

func gooseDialectFor(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", nil
	case DialectSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("%s: %q", ErrMsgUnknownDialect, dialect)
	}
}

// gooseLogger routes goose output through slog
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	slog.Default().Info(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Default().Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
	os.Exit(1)
}
