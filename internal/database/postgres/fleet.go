package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Scavenger_Go/internal/codec"
	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/repository"
)

const scavengerColumns = `scavenger_id, name, policy, held, created_at, updated_at`

const journalColumns = `entry_id, scavenger_id, scavenger_name, encounter, policy, verdict, outcome,
	held, other, left_behind, counterparty, created_at`

type fleetRepository struct {
	db *pgxpool.Pool
}

// NewFleetRepository creates a new PostgreSQL fleet repository
func NewFleetRepository(db *pgxpool.Pool) repository.Fleet {
	return &fleetRepository{db: db}
}

// CreateScavenger inserts a new scavenger
func (r *fleetRepository) CreateScavenger(ctx context.Context, s domain.Scavenger) error {
	query := `INSERT INTO scavengers (` + scavengerColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, s.ID, s.Name, string(s.Policy), codec.Describe(s.Held), s.CreatedAt, s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrScavengerExists, s.Name)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertScavenger, err)
	}
	return nil
}

// GetScavenger loads a scavenger by name
func (r *fleetRepository) GetScavenger(ctx context.Context, name string) (*domain.Scavenger, error) {
	query := `SELECT ` + scavengerColumns + ` FROM scavengers WHERE name = $1`

	s, err := scanScavenger(r.db.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrScavengerNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetScavenger, err)
	}
	return &s, nil
}

// ListScavengers returns every scavenger ordered by name
func (r *fleetRepository) ListScavengers(ctx context.Context) ([]domain.Scavenger, error) {
	rows, err := r.db.Query(ctx, `SELECT `+scavengerColumns+` FROM scavengers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListScavengers, err)
	}
	defer rows.Close()

	var list []domain.Scavenger
	for rows.Next() {
		s, err := scanScavenger(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListScavengers, err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// UpdateScavengers writes every held artifact in one transaction
func (r *fleetRepository) UpdateScavengers(ctx context.Context, scavengers ...domain.Scavenger) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	for _, s := range scavengers {
		tag, err := tx.Exec(ctx,
			`UPDATE scavengers SET held = $1, updated_at = $2 WHERE name = $3`,
			codec.Describe(s.Held), s.UpdatedAt, s.Name,
		)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateScavenger, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", domain.ErrScavengerNotFound, s.Name)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// AppendJournal inserts entries in one transaction
func (r *fleetRepository) AppendJournal(ctx context.Context, entries ...domain.JournalEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO journal_entries (` + journalColumns + `)
		SELECT $1, scavenger_id, name, $2, $3, $4, $5, $6, $7, $8, $9, $10
		FROM scavengers WHERE name = $11`

	for _, e := range entries {
		tag, err := tx.Exec(ctx, query,
			e.ID, string(e.Encounter), string(e.Policy), string(e.Verdict), string(e.Outcome),
			e.Held, e.Other, e.LeftBehind, e.Counterparty, e.CreatedAt,
			e.ScavengerName,
		)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertJournal, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", domain.ErrScavengerNotFound, e.ScavengerName)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// GetJournal returns up to limit entries, newest first
func (r *fleetRepository) GetJournal(ctx context.Context, name string, limit int) ([]domain.JournalEntry, error) {
	if _, err := r.GetScavenger(ctx, name); err != nil {
		return nil, err
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + journalColumns + ` FROM journal_entries WHERE scavenger_name = $1 ORDER BY seq DESC`)
	args := []interface{}{name}
	if limit > 0 {
		queryBuilder.WriteString(` LIMIT $2`)
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetJournal, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var (
			e                                   domain.JournalEntry
			encounter, policy, verdict, outcome string
		)
		if err := rows.Scan(&e.ID, &e.ScavengerID, &e.ScavengerName, &encounter, &policy, &verdict, &outcome,
			&e.Held, &e.Other, &e.LeftBehind, &e.Counterparty, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetJournal, err)
		}
		e.Encounter = domain.EncounterType(encounter)
		e.Policy = domain.Policy(policy)
		e.Verdict = domain.Verdict(verdict)
		e.Outcome = domain.Outcome(outcome)
		e.CreatedAt = e.CreatedAt.UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanScavenger(row pgx.Row) (domain.Scavenger, error) {
	var (
		s            domain.Scavenger
		policy, held string
	)
	if err := row.Scan(&s.ID, &s.Name, &policy, &held, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return domain.Scavenger{}, err
	}

	artifact, err := codec.ParseArtifact(held)
	if err != nil {
		return domain.Scavenger{}, err
	}
	s.Policy = domain.Policy(policy)
	s.Held = artifact
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
