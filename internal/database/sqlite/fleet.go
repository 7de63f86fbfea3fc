// Package sqlite provides a SQLite-backed fleet store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/osse101/Scavenger_Go/internal/codec"
	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/repository"
)

const scavengerColumns = `scavenger_id, name, policy, held, created_at, updated_at`

const journalColumns = `entry_id, scavenger_id, scavenger_name, encounter, policy, verdict, outcome,
	held, other, left_behind, counterparty, created_at`

// FleetRepository persists scavengers and journal entries in SQLite
type FleetRepository struct {
	db *sql.DB
}

var _ repository.Fleet = (*FleetRepository)(nil)

// NewFleetRepository wraps an open, migrated SQLite handle
func NewFleetRepository(db *sql.DB) *FleetRepository {
	return &FleetRepository{db: db}
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// CreateScavenger inserts a new scavenger
func (r *FleetRepository) CreateScavenger(ctx context.Context, s domain.Scavenger) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO scavengers (`+scavengerColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID.String(), s.Name, string(s.Policy), codec.Describe(s.Held),
		toMillis(s.CreatedAt), toMillis(s.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrScavengerExists, s.Name)
		}
		return fmt.Errorf("failed to insert scavenger: %w", err)
	}
	return nil
}

// GetScavenger loads a scavenger by name
func (r *FleetRepository) GetScavenger(ctx context.Context, name string) (*domain.Scavenger, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+scavengerColumns+` FROM scavengers WHERE name = ?`, name)
	s, err := scanScavenger(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrScavengerNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scavenger: %w", err)
	}
	return &s, nil
}

// ListScavengers returns every scavenger ordered by name
func (r *FleetRepository) ListScavengers(ctx context.Context) ([]domain.Scavenger, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+scavengerColumns+` FROM scavengers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scavengers: %w", err)
	}
	defer rows.Close()

	var list []domain.Scavenger
	for rows.Next() {
		s, err := scanScavenger(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scavenger: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// UpdateScavengers writes every held artifact in one transaction
func (r *FleetRepository) UpdateScavengers(ctx context.Context, scavengers ...domain.Scavenger) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, s := range scavengers {
		res, err := tx.ExecContext(ctx,
			`UPDATE scavengers SET held = ?, updated_at = ? WHERE name = ?`,
			codec.Describe(s.Held), toMillis(s.UpdatedAt), s.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to update scavenger: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to update scavenger: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrScavengerNotFound, s.Name)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AppendJournal inserts entries in one transaction
func (r *FleetRepository) AppendJournal(ctx context.Context, entries ...domain.JournalEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, e := range entries {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO journal_entries (`+journalColumns+`)
			 SELECT ?, scavenger_id, name, ?, ?, ?, ?, ?, ?, ?, ?, ?
			 FROM scavengers WHERE name = ?`,
			e.ID.String(), string(e.Encounter), string(e.Policy), string(e.Verdict), string(e.Outcome),
			e.Held, e.Other, e.LeftBehind, e.Counterparty, toMillis(e.CreatedAt),
			e.ScavengerName,
		)
		if err != nil {
			return fmt.Errorf("failed to insert journal entry: %w", err)
		}
		if affected, err := res.RowsAffected(); err != nil || affected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrScavengerNotFound, e.ScavengerName)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetJournal returns up to limit entries, newest first
func (r *FleetRepository) GetJournal(ctx context.Context, name string, limit int) ([]domain.JournalEntry, error) {
	if _, err := r.GetScavenger(ctx, name); err != nil {
		return nil, err
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + journalColumns + ` FROM journal_entries WHERE scavenger_name = ? ORDER BY seq DESC`)
	args := []interface{}{name}
	if limit > 0 {
		queryBuilder.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var (
			e                                   domain.JournalEntry
			id, scavengerID                     string
			encounter, policy, verdict, outcome string
			createdAt                           int64
		)
		if err := rows.Scan(&id, &scavengerID, &e.ScavengerName, &encounter, &policy, &verdict, &outcome,
			&e.Held, &e.Other, &e.LeftBehind, &e.Counterparty, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		if e.ScavengerID, err = uuid.Parse(scavengerID); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		e.Encounter = domain.EncounterType(encounter)
		e.Policy = domain.Policy(policy)
		e.Verdict = domain.Verdict(verdict)
		e.Outcome = domain.Outcome(outcome)
		e.CreatedAt = fromMillis(createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanScavenger(row rowScanner) (domain.Scavenger, error) {
	var (
		s                    domain.Scavenger
		id, policy, held     string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&id, &s.Name, &policy, &held, &createdAt, &updatedAt); err != nil {
		return domain.Scavenger{}, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return domain.Scavenger{}, err
	}
	artifact, err := codec.ParseArtifact(held)
	if err != nil {
		return domain.Scavenger{}, err
	}

	s.ID = parsedID
	s.Policy = domain.Policy(policy)
	s.Held = artifact
	s.CreatedAt = fromMillis(createdAt)
	s.UpdatedAt = fromMillis(updatedAt)
	return s, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
