package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"bananadb/internal/domain"
	"bananadb/internal/service"
)

// MockProjectService is a mock implementation of service.ProjectService.
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, userID uuid.UUID, input service.CreateProjectInput) (*domain.Project, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) GetByID(ctx context.Context, actor *service.Claims, projectID uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, actor, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, actor *service.Claims) ([]domain.ProjectWithStats, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectWithStats), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, actor *service.Claims, projectID uuid.UUID, input service.UpdateProjectInput) (*domain.Project, error) {
	args := m.Called(ctx, actor, projectID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, actor *service.Claims, projectID uuid.UUID) error {
	args := m.Called(ctx, actor, projectID)
	return args.Error(0)
}
