package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user of the curation UI.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	IsAdmin      bool      `db:"is_admin" json:"is_admin"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Project is a saved set of vehicle search criteria used to group listings.
type Project struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	Make                string    `db:"make" json:"make"`
	Model               string    `db:"model" json:"model"`
	YearRangeStart      int       `db:"year_range_start" json:"year_range_start"`
	YearRangeEnd        int       `db:"year_range_end" json:"year_range_end"`
	EngineCapacityStart int       `db:"engine_capacity_start" json:"engine_capacity_start"`
	EngineCapacityEnd   int       `db:"engine_capacity_end" json:"engine_capacity_end"`
	FuelType            string    `db:"fuel_type" json:"fuel_type"`
	CO2Emissions        float64   `db:"co2_emissions" json:"co2_emissions"`
	DoorsConfig         string    `db:"doors_config" json:"doors_config"`
	Freename            string    `db:"freename" json:"freename"`
	TransportCost       float64   `db:"transport_cost" json:"transport_cost"`
	RegistrationTax     float64   `db:"registration_tax" json:"registration_tax"`
	PlatesInsuranceCost float64   `db:"plates_insurance_cost" json:"plates_insurance_cost"`
	UserID              uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}

// ProjectWithStats is a project decorated with listing aggregates for the
// projects overview table.
type ProjectWithStats struct {
	Project
	DisplayName   string     `db:"-" json:"display_name"`
	ListingsCount int        `db:"listings_count" json:"listings_count"`
	FirstListing  *time.Time `db:"first_listing" json:"first_listing"`
	LastListing   *time.Time `db:"last_listing" json:"last_listing"`
}

// CarListing is one persisted vehicle-for-sale record. The (source,
// unique_identifier) pair is unique; violating it is how duplicate
// submissions are detected.
type CarListing struct {
	ID                    uuid.UUID  `db:"id" json:"id"`
	Make                  string     `db:"make" json:"make"`
	Model                 string     `db:"model" json:"model"`
	Year                  int        `db:"year" json:"year"`
	Mileage               int        `db:"mileage" json:"mileage"`
	Price                 float64    `db:"price" json:"price"`
	CO2                   *float64   `db:"co2" json:"co2"`
	FuelType              *string    `db:"fuel_type" json:"fuel_type"`
	FirstRegistrationDate *string    `db:"first_registration_date" json:"first_registration_date"`
	PowerKW               *float64   `db:"power_kw" json:"power_kw"`
	PowerHP               *float64   `db:"power_hp" json:"power_hp"`
	GearType              *string    `db:"gear_type" json:"gear_type"`
	NumberOfDoors         *int       `db:"number_of_doors" json:"number_of_doors"`
	NumberOfSeats         *int       `db:"number_of_seats" json:"number_of_seats"`
	Seller                *string    `db:"seller" json:"seller"`
	Location              *string    `db:"location" json:"location"`
	ListingURL            *string    `db:"listing_url" json:"listing_url"`
	ListingDate           *string    `db:"listing_date" json:"listing_date"`
	IsFavorite            bool       `db:"is_favorite" json:"is_favorite"`
	Source                string     `db:"source" json:"source"`
	UniqueIdentifier      string     `db:"unique_identifier" json:"unique_identifier"`
	UserID                uuid.UUID  `db:"user_id" json:"user_id"`
	ProjectID             *uuid.UUID `db:"project_id" json:"project_id"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`
}

// ParsedCarListing is the transient, validated-but-not-yet-persisted shape
// produced by the AI response validator. Required fields are make, model,
// year, mileage and price; everything else is optional and passed through
// as extracted.
type ParsedCarListing struct {
	Make                  string   `json:"make"`
	Model                 string   `json:"model"`
	Year                  int      `json:"year"`
	Mileage               int      `json:"mileage"`
	Price                 float64  `json:"price"`
	CO2                   *float64 `json:"co2,omitempty"`
	FuelType              *string  `json:"fuel_type,omitempty"`
	FirstRegistrationDate *string  `json:"first_registration_date,omitempty"`
	PowerKW               *float64 `json:"power_kw,omitempty"`
	PowerHP               *float64 `json:"power_hp,omitempty"`
	GearType              *string  `json:"gear_type,omitempty"`
	NumberOfDoors         *int     `json:"number_of_doors,omitempty"`
	NumberOfSeats         *int     `json:"number_of_seats,omitempty"`
	Seller                *string  `json:"seller,omitempty"`
	Location              *string  `json:"location,omitempty"`
	ListingURL            *string  `json:"listing_url,omitempty"`
}

// DataSource is a reference-table entry used for provenance tagging.
type DataSource struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Country   string    `db:"country" json:"country"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// AISettings is the fully resolved configuration for the active provider.
// SiteURL and SiteName are only meaningful for OpenRouter, which sends
// them as referral headers.
type AISettings struct {
	Provider AIProvider `json:"provider"`
	APIKey   string     `json:"api_key"`
	Prompt   string     `json:"prompt"`
	SiteURL  string     `json:"site_url,omitempty"`
	SiteName string     `json:"site_name,omitempty"`
}
