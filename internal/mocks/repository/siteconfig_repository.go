package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bakehouse/internal/domain/entity"
)

// MockSiteConfigRepository mocks repository.SiteConfigRepository.
type MockSiteConfigRepository struct {
	mock.Mock
}

func NewMockSiteConfigRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSiteConfigRepository {
	m := &MockSiteConfigRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSiteConfigRepository) Load(ctx context.Context) (*entity.SiteConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.SiteConfig), args.Error(1)
}

func (m *MockSiteConfigRepository) Save(ctx context.Context, cfg *entity.SiteConfig) error {
	return m.Called(ctx, cfg).Error(0)
}
