package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bananadb/internal/domain"
	"bananadb/internal/service"
	"bananadb/mocks"
)

func validProjectInput() service.CreateProjectInput {
	return service.CreateProjectInput{
		Make:           "BMW",
		Model:          "320d",
		YearRangeStart: 2018,
		YearRangeEnd:   2021,
		Freename:       "estate",
	}
}

func TestProjectService_Create_Success(t *testing.T) {
	repo := new(mocks.MockProjectRepo)
	svc := service.NewProjectService(repo)
	userID := uuid.New()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
		return p.UserID == userID && p.Make == "BMW"
	})).Return(nil)

	project, err := svc.Create(context.Background(), userID, validProjectInput())

	require.NoError(t, err)
	assert.Equal(t, userID, project.UserID)
	repo.AssertExpectations(t)
}

func TestProjectService_Create_InvalidYearRange(t *testing.T) {
	repo := new(mocks.MockProjectRepo)
	svc := service.NewProjectService(repo)

	input := validProjectInput()
	input.YearRangeStart = 2022
	input.YearRangeEnd = 2018

	_, err := svc.Create(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domain.ErrInvalidYearRange)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectService_Create_InvalidEngineRange(t *testing.T) {
	repo := new(mocks.MockProjectRepo)
	svc := service.NewProjectService(repo)

	input := validProjectInput()
	input.EngineCapacityStart = 3000
	input.EngineCapacityEnd = 2000

	_, err := svc.Create(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domain.ErrInvalidEngineRange)
}

func TestProjectService_GetByID_OwnerAllowed(t *testing.T) {
	repo := new(mocks.MockProjectRepo)
	svc := service.NewProjectService(repo)
	userID := uuid.New()
	projectID := uuid.New()

	repo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{
		ID:     projectID,
		UserID: userID,
	}, nil)

	project, err := svc.GetByID(context.Background(), userClaims(userID), projectID)

	require.NoError(t, err)
	assert.Equal(t, projectID, project.ID)
}

func TestProjectService_GetByID_NonOwnerForbidden(t *testing.T) {
	repo := new(mocks.MockProjectRepo)
	svc := service.NewProjectService(repo)
	projectID := uuid.New()

	repo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{
		ID:     projectID,
		UserID: uuid.New(),
	}, nil)

	_, err := svc.GetByID(context.Background(), userClaims(uuid.New()), projectID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProjectService_GetByID_AdminSeesAny(t *testing.T) {
	repo := new(mocks.MockProjectRepo)
	svc := service.NewProjectService(repo)
	projectID := uuid.New()

	repo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{
		ID:     projectID,
		UserID: uuid.New(),
	}, nil)

	project, err := svc.GetByID(context.Background(), adminClaims(), projectID)

	require.NoError(t, err)
	assert.Equal(t, projectID, project.ID)
}

func TestProjectService_Update_OwnerAllowed(t *testing.T) {
	repo := new(mocks.MockProjectRepo)
	svc := service.NewProjectService(repo)
	userID := uuid.New()
	projectID := uuid.New()

	repo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{
		ID:             projectID,
		UserID:         userID,
		Make:           "BMW",
		Model:          "320d",
		YearRangeStart: 2018,
		YearRangeEnd:   2021,
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
		return p.Model == "330i"
	})).Return(nil)

	model := "330i"
	project, err := svc.Update(context.Background(), userClaims(userID), projectID, service.UpdateProjectInput{Model: &model})

	require.NoError(t, err)
	assert.Equal(t, "330i", project.Model)
	repo.AssertExpectations(t)
}

func TestProjectService_Update_NonOwnerForbidden(t *testing.T) {
	repo := new(mocks.MockProjectRepo)
	svc := service.NewProjectService(repo)
	projectID := uuid.New()

	repo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{
		ID:     projectID,
		UserID: uuid.New(),
	}, nil)

	model := "330i"
	_, err := svc.Update(context.Background(), userClaims(uuid.New()), projectID, service.UpdateProjectInput{Model: &model})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProjectService_Update_RangeRevalidated(t *testing.T) {
	repo := new(mocks.MockProjectRepo)
	svc := service.NewProjectService(repo)
	userID := uuid.New()
	projectID := uuid.New()

	repo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{
		ID:             projectID,
		UserID:         userID,
		YearRangeStart: 2018,
		YearRangeEnd:   2021,
	}, nil)

	// Moving only the start past the existing end must fail.
	start := 2023
	_, err := svc.Update(context.Background(), userClaims(userID), projectID, service.UpdateProjectInput{YearRangeStart: &start})

	assert.ErrorIs(t, err, domain.ErrInvalidYearRange)
}

func TestProjectService_Delete_AdminOnly(t *testing.T) {
	repo := new(mocks.MockProjectRepo)
	svc := service.NewProjectService(repo)
	projectID := uuid.New()

	err := svc.Delete(context.Background(), userClaims(uuid.New()), projectID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProjectService_Delete_AdminSuccess(t *testing.T) {
	repo := new(mocks.MockProjectRepo)
	svc := service.NewProjectService(repo)
	projectID := uuid.New()

	repo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID}, nil)
	repo.On("Delete", mock.Anything, projectID).Return(nil)

	err := svc.Delete(context.Background(), adminClaims(), projectID)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProjectService_Delete_MissingProject(t *testing.T) {
	repo := new(mocks.MockProjectRepo)
	svc := service.NewProjectService(repo)
	projectID := uuid.New()

	repo.On("GetByID", mock.Anything, projectID).Return(nil, domain.ErrNotFound)

	err := svc.Delete(context.Background(), adminClaims(), projectID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProjectService_List_NonAdminScopedToOwner(t *testing.T) {
	repo := new(mocks.MockProjectRepo)
	svc := service.NewProjectService(repo)
	userID := uuid.New()

	repo.On("ListWithStats", mock.Anything, mock.MatchedBy(func(ownerID *uuid.UUID) bool {
		return ownerID != nil && *ownerID == userID
	})).Return([]domain.ProjectWithStats{}, nil)

	_, err := svc.List(context.Background(), userClaims(userID))

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProjectService_List_FillsDisplayName(t *testing.T) {
	repo := new(mocks.MockProjectRepo)
	svc := service.NewProjectService(repo)

	created := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	repo.On("ListWithStats", mock.Anything, mock.Anything).Return([]domain.ProjectWithStats{
		{Project: domain.Project{
			Make:           "BMW",
			Model:          "320d",
			YearRangeStart: 2019,
			YearRangeEnd:   2021,
			Freename:       "estate",
			CreatedAt:      created,
		}},
	}, nil)

	projects, err := svc.List(context.Background(), adminClaims())

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "07.03.2024.BMW.320D.19/21.ESTATE", projects[0].DisplayName)
}

func TestDisplayName_SingleYearCollapses(t *testing.T) {
	p := &domain.Project{
		Make:           "Audi",
		Model:          "A4",
		YearRangeStart: 2019,
		YearRangeEnd:   2019,
		Freename:       "avant",
		CreatedAt:      time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "02.01.2024.AUDI.A4.19.AVANT", service.DisplayName(p))
}
