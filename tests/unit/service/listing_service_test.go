package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bananadb/internal/domain"
	"bananadb/internal/port"
	"bananadb/internal/service"
	"bananadb/mocks"
)

func userClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{UserID: userID, Email: "user@test.com"}
}

func adminClaims() *service.Claims {
	return &service.Claims{UserID: uuid.New(), Email: "admin@test.com", IsAdmin: true}
}

func parsedListing(model string) domain.ParsedCarListing {
	return domain.ParsedCarListing{
		Make:    "BMW",
		Model:   model,
		Year:    2019,
		Mileage: 85000,
		Price:   21500,
	}
}

func TestListingService_Submit_AllSucceed(t *testing.T) {
	repo := new(mocks.MockListingRepo)
	svc := service.NewListingService(repo)
	userID := uuid.New()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CarListing")).Return(nil).Times(3)

	result, err := svc.Submit(context.Background(), userClaims(userID), service.SubmitInput{
		Listings: []domain.ParsedCarListing{parsedListing("320d"), parsedListing("330i"), parsedListing("M3")},
		Source:   "mobile.de",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.SuccessCount)
	assert.Empty(t, result.Failures)
	repo.AssertExpectations(t)
}

func TestListingService_Submit_DuplicateDoesNotAbort(t *testing.T) {
	repo := new(mocks.MockListingRepo)
	svc := service.NewListingService(repo)
	userID := uuid.New()

	// Item 2 hits the uniqueness constraint; items 1 and 3 still persist.
	repo.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.CarListing) bool {
		return l.Model == "320d"
	})).Return(nil).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.CarListing) bool {
		return l.Model == "330i"
	})).Return(domain.ErrDuplicateListing).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.CarListing) bool {
		return l.Model == "M3"
	})).Return(nil).Once()

	result, err := svc.Submit(context.Background(), userClaims(userID), service.SubmitInput{
		Listings: []domain.ParsedCarListing{parsedListing("320d"), parsedListing("330i"), parsedListing("M3")},
		Source:   "mobile.de",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	require.Len(t, result.Failures, 1)
	assert.True(t, result.Failures[0].Duplicate)
	assert.Equal(t, "330i", result.Failures[0].Listing.Model)
	repo.AssertExpectations(t)
}

func TestListingService_Submit_AllFail(t *testing.T) {
	repo := new(mocks.MockListingRepo)
	svc := service.NewListingService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CarListing")).
		Return(errors.New("insert failed")).Times(2)

	_, err := svc.Submit(context.Background(), userClaims(uuid.New()), service.SubmitInput{
		Listings: []domain.ParsedCarListing{parsedListing("320d"), parsedListing("330i")},
		Source:   "mobile.de",
	})

	var allFailed *domain.AllSubmissionsFailedError
	require.True(t, errors.As(err, &allFailed))
	assert.Equal(t, 2, allFailed.FailureCount)
}

func TestListingService_Submit_SetsIdentifierAndOwnership(t *testing.T) {
	repo := new(mocks.MockListingRepo)
	svc := service.NewListingService(repo)
	userID := uuid.New()
	projectID := uuid.New()

	var captured *domain.CarListing
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CarListing")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.CarListing)
		}).Return(nil).Once()

	_, err := svc.Submit(context.Background(), userClaims(userID), service.SubmitInput{
		Listings:  []domain.ParsedCarListing{parsedListing("320d")},
		Source:    "mobile.de",
		ProjectID: &projectID,
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "mobile.de", captured.Source)
	assert.Regexp(t, `^mobile\.de-[0-9a-f]{8,12}$`, captured.UniqueIdentifier)
	assert.Equal(t, userID, captured.UserID)
	require.NotNil(t, captured.ProjectID)
	assert.Equal(t, projectID, *captured.ProjectID)
}

func TestListingService_Submit_ResubmitSameBatchIsDuplicate(t *testing.T) {
	repo := new(mocks.MockListingRepo)
	svc := service.NewListingService(repo)
	claims := userClaims(uuid.New())
	input := service.SubmitInput{
		Listings: []domain.ParsedCarListing{parsedListing("320d")},
		Source:   "mobile.de",
	}

	var firstID, secondID string
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CarListing")).
		Run(func(args mock.Arguments) {
			firstID = args.Get(1).(*domain.CarListing).UniqueIdentifier
		}).Return(nil).Once()

	_, err := svc.Submit(context.Background(), claims, input)
	require.NoError(t, err)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CarListing")).
		Run(func(args mock.Arguments) {
			secondID = args.Get(1).(*domain.CarListing).UniqueIdentifier
		}).Return(domain.ErrDuplicateListing).Once()

	_, err = svc.Submit(context.Background(), claims, input)

	// The resubmission regenerates the same identifier and collapses into
	// the all-failed outcome, not a crash.
	var allFailed *domain.AllSubmissionsFailedError
	require.True(t, errors.As(err, &allFailed))
	assert.Equal(t, firstID, secondID)
}

func TestListingService_List_NonAdminScopedToOwner(t *testing.T) {
	repo := new(mocks.MockListingRepo)
	svc := service.NewListingService(repo)
	userID := uuid.New()

	repo.On("List", mock.Anything, mock.MatchedBy(func(f port.ListingFilter) bool {
		return f.OwnerID != nil && *f.OwnerID == userID
	})).Return([]domain.CarListing{}, nil)

	_, err := svc.List(context.Background(), userClaims(userID), nil)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListingService_List_AdminSeesAll(t *testing.T) {
	repo := new(mocks.MockListingRepo)
	svc := service.NewListingService(repo)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f port.ListingFilter) bool {
		return f.OwnerID == nil
	})).Return([]domain.CarListing{}, nil)

	_, err := svc.List(context.Background(), adminClaims(), nil)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListingService_Update_NonOwnerForbidden(t *testing.T) {
	repo := new(mocks.MockListingRepo)
	svc := service.NewListingService(repo)
	listingID := uuid.New()

	repo.On("GetByID", mock.Anything, listingID).Return(&domain.CarListing{
		ID:     listingID,
		UserID: uuid.New(),
	}, nil)

	fav := true
	_, err := svc.Update(context.Background(), userClaims(uuid.New()), listingID, service.UpdateListingInput{IsFavorite: &fav})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListingService_Update_FavoriteToggle(t *testing.T) {
	repo := new(mocks.MockListingRepo)
	svc := service.NewListingService(repo)
	userID := uuid.New()
	listingID := uuid.New()

	repo.On("GetByID", mock.Anything, listingID).Return(&domain.CarListing{
		ID:     listingID,
		UserID: userID,
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(l *domain.CarListing) bool {
		return l.IsFavorite
	})).Return(nil)

	fav := true
	record, err := svc.Update(context.Background(), userClaims(userID), listingID, service.UpdateListingInput{IsFavorite: &fav})

	require.NoError(t, err)
	assert.True(t, record.IsFavorite)
	repo.AssertExpectations(t)
}

func TestListingService_Delete_AdminAllowed(t *testing.T) {
	repo := new(mocks.MockListingRepo)
	svc := service.NewListingService(repo)
	listingID := uuid.New()

	repo.On("GetByID", mock.Anything, listingID).Return(&domain.CarListing{
		ID:     listingID,
		UserID: uuid.New(),
	}, nil)
	repo.On("Delete", mock.Anything, listingID).Return(nil)

	err := svc.Delete(context.Background(), adminClaims(), listingID)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
