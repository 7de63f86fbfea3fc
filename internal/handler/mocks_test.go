package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Scavenger_Go/internal/domain"
)

// MockFleetService mocks fleet.Service
type MockFleetService struct {
	mock.Mock
}

func (m *MockFleetService) Register(ctx context.Context, name string, policy domain.Policy, held domain.Artifact) (*domain.Scavenger, error) {
	args := m.Called(ctx, name, policy, held)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scavenger), args.Error(1)
}

func (m *MockFleetService) Get(ctx context.Context, name string) (*domain.Scavenger, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scavenger), args.Error(1)
}

func (m *MockFleetService) List(ctx context.Context) ([]domain.Scavenger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Scavenger), args.Error(1)
}

func (m *MockFleetService) Explore(ctx context.Context, name string, found domain.Artifact) (*domain.ExploreResult, error) {
	args := m.Called(ctx, name, found)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExploreResult), args.Error(1)
}

func (m *MockFleetService) Trade(ctx context.Context, nameA, nameB string) (*domain.TradeResult, error) {
	args := m.Called(ctx, nameA, nameB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TradeResult), args.Error(1)
}

func (m *MockFleetService) Journal(ctx context.Context, name string, limit int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, name, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockFleetService) Evaluate(policy domain.Policy, owned, found domain.Artifact) domain.Verdict {
	args := m.Called(policy, owned, found)
	return args.Get(0).(domain.Verdict)
}

func (m *MockFleetService) LoadRoster(ctx context.Context, path string) (int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Error(1)
}
