package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bakehouse/internal/domain/entity"
)

// MockFastFoodRepository mocks repository.FastFoodRepository.
type MockFastFoodRepository struct {
	mock.Mock
}

func NewMockFastFoodRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFastFoodRepository {
	m := &MockFastFoodRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFastFoodRepository) List(ctx context.Context) ([]*entity.FastFoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.FastFoodItem), args.Error(1)
}

func (m *MockFastFoodRepository) FindByID(ctx context.Context, id string) (*entity.FastFoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.FastFoodItem), args.Error(1)
}

func (m *MockFastFoodRepository) Create(ctx context.Context, item *entity.FastFoodItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockFastFoodRepository) Update(ctx context.Context, item *entity.FastFoodItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockFastFoodRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFastFoodRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}
