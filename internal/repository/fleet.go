package repository

import (
	"context"

	"github.com/osse101/Scavenger_Go/internal/domain"
)

// Fleet defines the storage operations for scavengers and their encounter journal
type Fleet interface {
	// CreateScavenger stores a new scavenger. Returns domain.ErrScavengerExists on a name clash.
	CreateScavenger(ctx context.Context, s domain.Scavenger) error

	// GetScavenger returns domain.ErrScavengerNotFound when no scavenger has the name
	GetScavenger(ctx context.Context, name string) (*domain.Scavenger, error)

	// ListScavengers returns every scavenger ordered by name
	ListScavengers(ctx context.Context) ([]domain.Scavenger, error)

	// UpdateScavengers persists the held artifact of one or two scavengers atomically
	UpdateScavengers(ctx context.Context, scavengers ...domain.Scavenger) error

	// AppendJournal stores journal entries in the given order
	AppendJournal(ctx context.Context, entries ...domain.JournalEntry) error

	// GetJournal returns up to limit entries for the named scavenger, newest first.
	// A limit of zero or less returns every entry.
	GetJournal(ctx context.Context, name string, limit int) ([]domain.JournalEntry, error)
}
