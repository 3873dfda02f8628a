package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bananadb/internal/domain"
	"bananadb/internal/service"
)

// MockSettingsService is a mock implementation of service.SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetAll(ctx context.Context) (*service.AllSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AllSettings), args.Error(1)
}

func (m *MockSettingsService) UpdateProvider(ctx context.Context, provider domain.AIProvider, input service.ProviderSettingsInput) error {
	args := m.Called(ctx, provider, input)
	return args.Error(0)
}

func (m *MockSettingsService) SetActiveProvider(ctx context.Context, provider domain.AIProvider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *MockSettingsService) Status(ctx context.Context) ([]service.ProviderStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ProviderStatus), args.Error(1)
}
