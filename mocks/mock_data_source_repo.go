package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bananadb/internal/domain"
)

// MockDataSourceRepo is a mock implementation of port.DataSourceRepository.
type MockDataSourceRepo struct {
	mock.Mock
}

func (m *MockDataSourceRepo) List(ctx context.Context) ([]domain.DataSource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DataSource), args.Error(1)
}

func (m *MockDataSourceRepo) Create(ctx context.Context, source *domain.DataSource) error {
	args := m.Called(ctx, source)
	return args.Error(0)
}

func (m *MockDataSourceRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDataSourceRepo) UpsertByName(ctx context.Context, source *domain.DataSource) error {
	args := m.Called(ctx, source)
	return args.Error(0)
}
