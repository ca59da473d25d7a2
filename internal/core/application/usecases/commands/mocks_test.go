package commands_test

import (
	"context"
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/core/application/usecases/commands"
	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/collection"
	"github.com/ayobami7/click-and-collect-notif/internal/core/domain/model/kernel"
	"github.com/ayobami7/click-and-collect-notif/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCollectionRepository struct{ mock.Mock }

func (m *MockCollectionRepository) Add(ctx context.Context, aggregate *collection.Collection) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCollectionRepository) Update(ctx context.Context, aggregate *collection.Collection) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCollectionRepository) Get(ctx context.Context, id int64) (*collection.Collection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.Collection), args.Error(1)
}

func (m *MockCollectionRepository) GetByBarcode(ctx context.Context, barcode kernel.Barcode) (*collection.Collection, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.Collection), args.Error(1)
}

func (m *MockCollectionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCollectionRepository) GetAll(ctx context.Context, statusFilter *collection.Status) ([]*collection.Collection, error) {
	args := m.Called(ctx, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*collection.Collection), args.Error(1)
}

func (m *MockCollectionRepository) DeleteTerminalOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockCollectionUoW struct{ mock.Mock }

func (m *MockCollectionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCollectionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCollectionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCollectionUoW) CollectionRepository() ports.CollectionRepository {
	args := m.Called()
	return args.Get(0).(ports.CollectionRepository)
}

type MockCollectionUoWFactory struct{ mock.Mock }

func (m *MockCollectionUoWFactory) Create() commands.CollectionUoW {
	args := m.Called()
	return args.Get(0).(commands.CollectionUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.Event) {
	m.Called(ctx, event)
}
