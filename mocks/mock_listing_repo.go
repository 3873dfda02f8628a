package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"bananadb/internal/domain"
	"bananadb/internal/port"
)

// MockListingRepo is a mock implementation of port.ListingRepository.
type MockListingRepo struct {
	mock.Mock
}

func (m *MockListingRepo) Create(ctx context.Context, l *domain.CarListing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepo) GetByID(ctx context.Context, listingID uuid.UUID) (*domain.CarListing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarListing), args.Error(1)
}

func (m *MockListingRepo) List(ctx context.Context, filter port.ListingFilter) ([]domain.CarListing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CarListing), args.Error(1)
}

func (m *MockListingRepo) Update(ctx context.Context, l *domain.CarListing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepo) Delete(ctx context.Context, listingID uuid.UUID) error {
	args := m.Called(ctx, listingID)
	return args.Error(0)
}
