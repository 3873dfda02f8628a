package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"bananadb/internal/domain"
	"bananadb/internal/listing"
	"bananadb/internal/port"
)

// SubmitInput is the DTO for persisting reviewed listings.
type SubmitInput struct {
	Listings  []domain.ParsedCarListing `json:"listings" binding:"required"`
	Source    string                    `json:"source" binding:"required"`
	ProjectID *uuid.UUID                `json:"project_id"`
}

// SubmitFailure records one listing that could not be persisted and why.
// Duplicate is set when the store rejected the row on the
// (source, unique_identifier) constraint.
type SubmitFailure struct {
	Listing   domain.ParsedCarListing `json:"listing"`
	Reason    string                  `json:"reason"`
	Duplicate bool                    `json:"duplicate"`
}

// SubmitResult summarizes a submission batch: how many listings were
// stored and which ones were not, duplicates included. Partial success
// is a normal outcome, not an error.
type SubmitResult struct {
	SuccessCount int             `json:"success_count"`
	Failures     []SubmitFailure `json:"failures,omitempty"`
}

// UpdateListingInput is the DTO for editing a persisted listing. Nil
// fields are left unchanged.
type UpdateListingInput struct {
	Make         *string    `json:"make"`
	Model        *string    `json:"model"`
	Year         *int       `json:"year"`
	Mileage      *int       `json:"mileage"`
	Price        *float64   `json:"price"`
	Location     *string    `json:"location"`
	Seller       *string    `json:"seller"`
	IsFavorite   *bool      `json:"is_favorite"`
	ProjectID    *uuid.UUID `json:"project_id"`
	ClearProject bool       `json:"clear_project"`
}

// ListingService defines the listing review and persistence contract.
type ListingService interface {
	List(ctx context.Context, actor *Claims, projectID *uuid.UUID) ([]domain.CarListing, error)
	Submit(ctx context.Context, actor *Claims, input SubmitInput) (*SubmitResult, error)
	Update(ctx context.Context, actor *Claims, listingID uuid.UUID, input UpdateListingInput) (*domain.CarListing, error)
	Delete(ctx context.Context, actor *Claims, listingID uuid.UUID) error
}

type listingService struct {
	repo port.ListingRepository
}

// NewListingService creates a new ListingService implementation.
func NewListingService(repo port.ListingRepository) ListingService {
	return &listingService{repo: repo}
}

func (s *listingService) List(ctx context.Context, actor *Claims, projectID *uuid.UUID) ([]domain.CarListing, error) {
	filter := port.ListingFilter{ProjectID: projectID}
	if !actor.IsAdmin {
		filter.OwnerID = &actor.UserID
	}
	return s.repo.List(ctx, filter)
}

// Submit persists the reviewed batch one listing at a time, in order.
// A failure never aborts the loop: duplicates and other persistence
// errors are both recorded per item and the next item proceeds. The
// batch as a whole fails only when not a single listing was stored.
func (s *listingService) Submit(ctx context.Context, actor *Claims, input SubmitInput) (*SubmitResult, error) {
	result := &SubmitResult{}

	for _, parsed := range input.Listings {
		record := toCarListing(parsed, input.Source, actor.UserID, input.ProjectID)
		record.UniqueIdentifier = listing.Identifier(parsed, input.Source)

		err := s.repo.Create(ctx, record)
		if err == nil {
			result.SuccessCount++
			continue
		}
		result.Failures = append(result.Failures, SubmitFailure{
			Listing:   parsed,
			Reason:    err.Error(),
			Duplicate: errors.Is(err, domain.ErrDuplicateListing),
		})
	}

	if result.SuccessCount == 0 && len(result.Failures) > 0 {
		return nil, &domain.AllSubmissionsFailedError{FailureCount: len(result.Failures)}
	}
	return result, nil
}

func (s *listingService) Update(ctx context.Context, actor *Claims, listingID uuid.UUID, input UpdateListingInput) (*domain.CarListing, error) {
	record, err := s.repo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if record.UserID != actor.UserID && !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}

	if input.Make != nil {
		record.Make = *input.Make
	}
	if input.Model != nil {
		record.Model = *input.Model
	}
	if input.Year != nil {
		record.Year = *input.Year
	}
	if input.Mileage != nil {
		record.Mileage = *input.Mileage
	}
	if input.Price != nil {
		record.Price = *input.Price
	}
	if input.Location != nil {
		record.Location = input.Location
	}
	if input.Seller != nil {
		record.Seller = input.Seller
	}
	if input.IsFavorite != nil {
		record.IsFavorite = *input.IsFavorite
	}
	if input.ClearProject {
		record.ProjectID = nil
	} else if input.ProjectID != nil {
		record.ProjectID = input.ProjectID
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *listingService) Delete(ctx context.Context, actor *Claims, listingID uuid.UUID) error {
	record, err := s.repo.GetByID(ctx, listingID)
	if err != nil {
		return err
	}
	if record.UserID != actor.UserID && !actor.IsAdmin {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, listingID)
}

func toCarListing(parsed domain.ParsedCarListing, source string, userID uuid.UUID, projectID *uuid.UUID) *domain.CarListing {
	return &domain.CarListing{
		Make:                  parsed.Make,
		Model:                 parsed.Model,
		Year:                  parsed.Year,
		Mileage:               parsed.Mileage,
		Price:                 parsed.Price,
		CO2:                   parsed.CO2,
		FuelType:              parsed.FuelType,
		FirstRegistrationDate: parsed.FirstRegistrationDate,
		PowerKW:               parsed.PowerKW,
		PowerHP:               parsed.PowerHP,
		GearType:              parsed.GearType,
		NumberOfDoors:         parsed.NumberOfDoors,
		NumberOfSeats:         parsed.NumberOfSeats,
		Seller:                parsed.Seller,
		Location:              parsed.Location,
		ListingURL:            parsed.ListingURL,
		Source:                source,
		UserID:                userID,
		ProjectID:             projectID,
	}
}
