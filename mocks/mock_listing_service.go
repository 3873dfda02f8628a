package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"bananadb/internal/domain"
	"bananadb/internal/service"
)

// MockListingService is a mock implementation of service.ListingService.
type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) List(ctx context.Context, actor *service.Claims, projectID *uuid.UUID) ([]domain.CarListing, error) {
	args := m.Called(ctx, actor, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CarListing), args.Error(1)
}

func (m *MockListingService) Submit(ctx context.Context, actor *service.Claims, input service.SubmitInput) (*service.SubmitResult, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmitResult), args.Error(1)
}

func (m *MockListingService) Update(ctx context.Context, actor *service.Claims, listingID uuid.UUID, input service.UpdateListingInput) (*domain.CarListing, error) {
	args := m.Called(ctx, actor, listingID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarListing), args.Error(1)
}

func (m *MockListingService) Delete(ctx context.Context, actor *service.Claims, listingID uuid.UUID) error {
	args := m.Called(ctx, actor, listingID)
	return args.Error(0)
}
