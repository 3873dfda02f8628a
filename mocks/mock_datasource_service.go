package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bananadb/internal/domain"
	"bananadb/internal/service"
)

// MockDataSourceService is a mock implementation of service.DataSourceService.
type MockDataSourceService struct {
	mock.Mock
}

func (m *MockDataSourceService) List(ctx context.Context) ([]domain.DataSource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DataSource), args.Error(1)
}

func (m *MockDataSourceService) Create(ctx context.Context, input service.CreateDataSourceInput) (*domain.DataSource, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DataSource), args.Error(1)
}

func (m *MockDataSourceService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
