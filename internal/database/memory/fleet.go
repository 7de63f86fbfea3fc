// Package memory provides an in-process fleet store used by default and in tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/repository"
)

// FleetRepository keeps scavengers and journal entries in memory
type FleetRepository struct {
	mu         sync.RWMutex
	scavengers map[string]domain.Scavenger
	journal    map[string][]domain.JournalEntry
}

var _ repository.Fleet = (*FleetRepository)(nil)

// NewFleetRepository creates an empty in-memory fleet store
func NewFleetRepository() *FleetRepository {
	return &FleetRepository{
		scavengers: make(map[string]domain.Scavenger),
		journal:    make(map[string][]domain.JournalEntry),
	}
}

// CreateScavenger stores a new scavenger
func (r *FleetRepository) CreateScavenger(ctx context.Context, s domain.Scavenger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scavengers[s.Name]; ok {
		return fmt.Errorf("%w: %s", domain.ErrScavengerExists, s.Name)
	}
	r.scavengers[s.Name] = s
	return nil
}

// GetScavenger returns a copy of the named scavenger
func (r *FleetRepository) GetScavenger(ctx context.Context, name string) (*domain.Scavenger, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.scavengers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrScavengerNotFound, name)
	}
	return &s, nil
}

// ListScavengers returns every scavenger ordered by name
func (r *FleetRepository) ListScavengers(ctx context.Context) ([]domain.Scavenger, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Scavenger, 0, len(r.scavengers))
	for _, s := range r.scavengers {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// UpdateScavengers replaces the held artifact of each scavenger. Nothing is
// written unless every scavenger exists.
func (r *FleetRepository) UpdateScavengers(ctx context.Context, scavengers ...domain.Scavenger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range scavengers {
		if _, ok := r.scavengers[s.Name]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrScavengerNotFound, s.Name)
		}
	}
	for _, s := range scavengers {
		stored := r.scavengers[s.Name]
		stored.Held = s.Held
		stored.UpdatedAt = s.UpdatedAt
		r.scavengers[s.Name] = stored
	}
	return nil
}

// AppendJournal stores entries under their scavenger's name
func (r *FleetRepository) AppendJournal(ctx context.Context, entries ...domain.JournalEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range entries {
		if _, ok := r.scavengers[e.ScavengerName]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrScavengerNotFound, e.ScavengerName)
		}
	}
	for _, e := range entries {
		r.journal[e.ScavengerName] = append(r.journal[e.ScavengerName], e)
	}
	return nil
}

// GetJournal returns up to limit entries, newest first
func (r *FleetRepository) GetJournal(ctx context.Context, name string, limit int) ([]domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.scavengers[name]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrScavengerNotFound, name)
	}

	stored := r.journal[name]
	n := len(stored)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]domain.JournalEntry, 0, n)
	for i := len(stored) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, stored[i])
	}
	return out, nil
}
