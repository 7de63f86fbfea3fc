// Package fleet manages registered scavengers and runs their encounters against
// persistent storage.
package fleet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/Scavenger_Go/internal/codec"
	"github.com/osse101/Scavenger_Go/internal/concurrency"
	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/encounter"
	"github.com/osse101/Scavenger_Go/internal/logger"
	"github.com/osse101/Scavenger_Go/internal/metrics"
	"github.com/osse101/Scavenger_Go/internal/repository"
	"github.com/osse101/Scavenger_Go/internal/validation"
)

// Service defines the interface for fleet operations
type Service interface {
	Register(ctx context.Context, name string, policy domain.Policy, held domain.Artifact) (*domain.Scavenger, error)
	Get(ctx context.Context, name string) (*domain.Scavenger, error)
	List(ctx context.Context) ([]domain.Scavenger, error)
	Explore(ctx context.Context, name string, found domain.Artifact) (*domain.ExploreResult, error)
	Trade(ctx context.Context, nameA, nameB string) (*domain.TradeResult, error)
	Journal(ctx context.Context, name string, limit int) ([]domain.JournalEntry, error)
	Evaluate(policy domain.Policy, owned, found domain.Artifact) domain.Verdict
	LoadRoster(ctx context.Context, path string) (int, error)
}

type service struct {
	repo    repository.Fleet
	engine  *encounter.Engine
	schemas validation.SchemaValidator
	cache   *scavengerCache
	locks   *concurrency.LockManager
	now     func() time.Time
}

// NewService creates a new fleet service. Zero cache settings fall back to the defaults.
func NewService(
	repo repository.Fleet,
	engine *encounter.Engine,
	schemas validation.SchemaValidator,
	cacheSize int,
	cacheTTL time.Duration,
) Service {
	return &service{
		repo:    repo,
		engine:  engine,
		schemas: schemas,
		cache:   newScavengerCache(cacheSize, cacheTTL),
		locks:   concurrency.NewLockManager(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func lockKey(name string) string {
	return "scavenger:" + name
}

// Register validates and stores a new scavenger
func (s *service) Register(ctx context.Context, name string, policy domain.Policy, held domain.Artifact) (*domain.Scavenger, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !policy.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPolicy, policy)
	}
	if err := codec.Validate(held); err != nil {
		return nil, err
	}

	scavenger := domain.NewScavenger(name, policy, held)
	if err := s.repo.CreateScavenger(ctx, scavenger); err != nil {
		if errors.Is(err, domain.ErrScavengerExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToRegister, err)
	}

	metrics.ScavengersRegistered.Inc()
	logger.FromContext(ctx).Info(LogMsgScavengerRegistered,
		"name", scavenger.Name, "policy", scavenger.Policy, "held", codec.Describe(held))
	return &scavenger, nil
}

// Get returns a scavenger, serving repeat reads from the cache
func (s *service) Get(ctx context.Context, name string) (*domain.Scavenger, error) {
	if cached, ok := s.cache.Get(name); ok {
		metrics.RecordCacheLookup(true)
		return &cached, nil
	}
	metrics.RecordCacheLookup(false)

	// fill under the scavenger's lock so a concurrent encounter cannot be overwritten by a stale read
	unlock := s.locks.LockKeys(lockKey(name))
	defer unlock()

	scavenger, err := s.repo.GetScavenger(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache.Set(*scavenger)
	return scavenger, nil
}

// List returns every scavenger ordered by name
func (s *service) List(ctx context.Context) ([]domain.Scavenger, error) {
	list, err := s.repo.ListScavengers(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Scavenger{}
	}
	return list, nil
}

// Explore resolves a find for the named scavenger and persists the result
func (s *service) Explore(ctx context.Context, name string, found domain.Artifact) (*domain.ExploreResult, error) {
	if err := codec.Validate(found); err != nil {
		return nil, err
	}

	unlock := s.locks.LockKeys(lockKey(name))
	defer unlock()

	scavenger, err := s.repo.GetScavenger(ctx, name)
	if err != nil {
		return nil, err
	}

	result := s.engine.Explore(*scavenger, found)
	at := s.now()
	result.After.UpdatedAt = at

	if err := s.repo.UpdateScavengers(ctx, result.After); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPersist, err)
	}
	s.cache.Invalidate(name)

	s.appendJournal(ctx, encounter.ExploreJournal(result, at))
	metrics.RecordExplore(result)

	logger.FromContext(ctx).Info(LogMsgExploreResolved,
		"name", name,
		"found", codec.Describe(found),
		"verdict", result.Verdict,
		"outcome", result.Outcome,
		"held", codec.Describe(result.After.Held))
	return &result, nil
}

// Trade offers each scavenger's artifact to the other and persists both sides atomically
func (s *service) Trade(ctx context.Context, nameA, nameB string) (*domain.TradeResult, error) {
	if nameA == nameB {
		return nil, fmt.Errorf("%w: %s", domain.ErrSelfTrade, nameA)
	}

	unlock := s.locks.LockKeys(lockKey(nameA), lockKey(nameB))
	defer unlock()

	a, err := s.repo.GetScavenger(ctx, nameA)
	if err != nil {
		return nil, err
	}
	b, err := s.repo.GetScavenger(ctx, nameB)
	if err != nil {
		return nil, err
	}

	result := s.engine.Trade(*a, *b)
	at := s.now()

	if result.Traded() {
		result.A.UpdatedAt = at
		result.B.UpdatedAt = at
		if err := s.repo.UpdateScavengers(ctx, result.A, result.B); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPersist, err)
		}
		s.cache.Invalidate(nameA, nameB)
	}

	s.appendJournal(ctx, encounter.TradeJournal(result, at)...)
	metrics.RecordTrade(result)

	logger.FromContext(ctx).Info(LogMsgTradeResolved,
		"a", nameA, "b", nameB,
		"verdict_a", result.VerdictA, "verdict_b", result.VerdictB,
		"outcome", result.Outcome)
	return &result, nil
}

// appendJournal records entries after the held artifacts are already committed.
// A failure here is logged rather than returned so the caller still sees the outcome.
func (s *service) appendJournal(ctx context.Context, entries ...domain.JournalEntry) {
	if err := s.repo.AppendJournal(ctx, entries...); err != nil {
		logger.FromContext(ctx).Error(LogMsgJournalWriteFailed, "error", err)
	}
}

// Journal returns recent encounters for a scavenger, newest first
func (s *service) Journal(ctx context.Context, name string, limit int) ([]domain.JournalEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultJournalLimit
	case limit > MaxJournalLimit:
		limit = MaxJournalLimit
	}
	return s.repo.GetJournal(ctx, name, limit)
}

// Evaluate judges found against owned without touching any scavenger
func (s *service) Evaluate(policy domain.Policy, owned, found domain.Artifact) domain.Verdict {
	verdict := s.engine.Evaluate(policy, owned, found)
	metrics.RecordVerdict(policy, verdict)
	return verdict
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyName)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameTooLong)
	}
	return nil
}
