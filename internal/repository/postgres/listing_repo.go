package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"bananadb/internal/domain"
	"bananadb/internal/port"
)

type listingRepo struct {
	db *sqlx.DB
}

// NewListingRepo creates a new PostgreSQL-backed ListingRepository.
func NewListingRepo(db *sqlx.DB) port.ListingRepository {
	return &listingRepo{db: db}
}

func (r *listingRepo) Create(ctx context.Context, l *domain.CarListing) error {
	l.ID = uuid.New()
	l.CreatedAt = time.Now().UTC()

	query := `INSERT INTO car_listings (id, make, model, year, mileage, price, co2, fuel_type,
		first_registration_date, power_kw, power_hp, gear_type, number_of_doors, number_of_seats,
		seller, location, listing_url, listing_date, is_favorite, source, unique_identifier,
		user_id, project_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
		$19, $20, $21, $22, $23, $24)`

	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.Make, l.Model, l.Year, l.Mileage, l.Price, l.CO2, l.FuelType,
		l.FirstRegistrationDate, l.PowerKW, l.PowerHP, l.GearType, l.NumberOfDoors,
		l.NumberOfSeats, l.Seller, l.Location, l.ListingURL, l.ListingDate, l.IsFavorite,
		l.Source, l.UniqueIdentifier, l.UserID, l.ProjectID, l.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateListing
		}
		return fmt.Errorf("listingRepo.Create: %w", err)
	}
	return nil
}

func (r *listingRepo) GetByID(ctx context.Context, listingID uuid.UUID) (*domain.CarListing, error) {
	var l domain.CarListing
	err := r.db.GetContext(ctx, &l, "SELECT * FROM car_listings WHERE id = $1", listingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("listingRepo.GetByID: %w", err)
	}
	return &l, nil
}

func (r *listingRepo) List(ctx context.Context, filter port.ListingFilter) ([]domain.CarListing, error) {
	query := "SELECT * FROM car_listings"
	var clauses []string
	var args []interface{}

	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		clauses = append(clauses, "user_id = $"+strconv.Itoa(len(args)))
	}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		clauses = append(clauses, "project_id = $"+strconv.Itoa(len(args)))
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY created_at DESC"

	var listings []domain.CarListing
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		return nil, fmt.Errorf("listingRepo.List: %w", err)
	}
	return listings, nil
}

func (r *listingRepo) Update(ctx context.Context, l *domain.CarListing) error {
	query := `UPDATE car_listings SET make = $1, model = $2, year = $3, mileage = $4, price = $5,
		co2 = $6, fuel_type = $7, first_registration_date = $8, power_kw = $9, power_hp = $10,
		gear_type = $11, number_of_doors = $12, number_of_seats = $13, seller = $14,
		location = $15, listing_url = $16, listing_date = $17, is_favorite = $18, project_id = $19
		WHERE id = $20`
	result, err := r.db.ExecContext(ctx, query,
		l.Make, l.Model, l.Year, l.Mileage, l.Price, l.CO2, l.FuelType,
		l.FirstRegistrationDate, l.PowerKW, l.PowerHP, l.GearType, l.NumberOfDoors,
		l.NumberOfSeats, l.Seller, l.Location, l.ListingURL, l.ListingDate, l.IsFavorite,
		l.ProjectID, l.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateListing
		}
		return fmt.Errorf("listingRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *listingRepo) Delete(ctx context.Context, listingID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM car_listings WHERE id = $1", listingID)
	if err != nil {
		return fmt.Errorf("listingRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
