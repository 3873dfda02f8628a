package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bananadb/internal/domain"
)

// MockParseService is a mock implementation of service.ParseService.
type MockParseService struct {
	mock.Mock
}

func (m *MockParseService) Parse(ctx context.Context, rawText string) ([]domain.ParsedCarListing, error) {
	args := m.Called(ctx, rawText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ParsedCarListing), args.Error(1)
}
