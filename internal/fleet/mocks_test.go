package fleet

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Scavenger_Go/internal/domain"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateScavenger(ctx context.Context, s domain.Scavenger) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) GetScavenger(ctx context.Context, name string) (*domain.Scavenger, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scavenger), args.Error(1)
}

func (m *MockRepository) ListScavengers(ctx context.Context) ([]domain.Scavenger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Scavenger), args.Error(1)
}

func (m *MockRepository) UpdateScavengers(ctx context.Context, scavengers ...domain.Scavenger) error {
	args := m.Called(ctx, scavengers)
	return args.Error(0)
}

func (m *MockRepository) AppendJournal(ctx context.Context, entries ...domain.JournalEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockRepository) GetJournal(ctx context.Context, name string, limit int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, name, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// MockSchemaValidator
type MockSchemaValidator struct {
	mock.Mock
}

func (m *MockSchemaValidator) ValidateFile(dataPath, schemaName string) error {
	args := m.Called(dataPath, schemaName)
	return args.Error(0)
}

func (m *MockSchemaValidator) ValidateBytes(data []byte, schemaName string) error {
	args := m.Called(data, schemaName)
	return args.Error(0)
}
