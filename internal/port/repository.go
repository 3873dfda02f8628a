package port

import (
	"context"

	"github.com/google/uuid"

	"bananadb/internal/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	// ListWithStats returns projects newest-first, decorated with listing
	// counts and first/last listing timestamps. A nil ownerID lists all
	// projects (admin view); otherwise results are scoped to the owner.
	ListWithStats(ctx context.Context, ownerID *uuid.UUID) ([]domain.ProjectWithStats, error)
	Update(ctx context.Context, project *domain.Project) error
	// Delete removes the project. Associated listings are detached, not
	// deleted (FK ON DELETE SET NULL).
	Delete(ctx context.Context, projectID uuid.UUID) error
}

// ListingFilter narrows listing queries. Nil fields are ignored.
type ListingFilter struct {
	OwnerID   *uuid.UUID
	ProjectID *uuid.UUID
}

// ListingRepository defines persistence operations for car listings.
type ListingRepository interface {
	// Create inserts one listing. A (source, unique_identifier) conflict
	// is reported as domain.ErrDuplicateListing.
	Create(ctx context.Context, listing *domain.CarListing) error
	GetByID(ctx context.Context, listingID uuid.UUID) (*domain.CarListing, error)
	List(ctx context.Context, filter ListingFilter) ([]domain.CarListing, error)
	Update(ctx context.Context, listing *domain.CarListing) error
	Delete(ctx context.Context, listingID uuid.UUID) error
}

// DataSourceRepository defines persistence operations for the data-source
// reference table.
type DataSourceRepository interface {
	List(ctx context.Context) ([]domain.DataSource, error)
	Create(ctx context.Context, source *domain.DataSource) error
	Delete(ctx context.Context, id int) error
	// UpsertByName inserts the source or updates its country if a source
	// with the same name already exists. Used by the seed tool.
	UpsertByName(ctx context.Context, source *domain.DataSource) error
}

// SettingsRepository provides access to the app_settings key/value table.
// Get returns the empty string (not an error) for keys that were never set,
// matching the original RPC surface where unset settings read as null.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
