package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"bananadb/internal/domain"
	"bananadb/internal/port"
)

type projectRepo struct {
	db *sqlx.DB
}

// NewProjectRepo creates a new PostgreSQL-backed ProjectRepository.
func NewProjectRepo(db *sqlx.DB) port.ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	project.ID = uuid.New()
	project.CreatedAt = time.Now().UTC()

	query := `INSERT INTO projects (id, make, model, year_range_start, year_range_end,
		engine_capacity_start, engine_capacity_end, fuel_type, co2_emissions, doors_config,
		freename, transport_cost, registration_tax, plates_insurance_cost, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(ctx, query,
		project.ID, project.Make, project.Model, project.YearRangeStart, project.YearRangeEnd,
		project.EngineCapacityStart, project.EngineCapacityEnd, project.FuelType,
		project.CO2Emissions, project.DoorsConfig, project.Freename,
		project.TransportCost, project.RegistrationTax, project.PlatesInsuranceCost,
		project.UserID, project.CreatedAt)
	if err != nil {
		return fmt.Errorf("projectRepo.Create: %w", err)
	}
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.GetContext(ctx, &project, "SELECT * FROM projects WHERE id = $1", projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("projectRepo.GetByID: %w", err)
	}
	return &project, nil
}

func (r *projectRepo) ListWithStats(ctx context.Context, ownerID *uuid.UUID) ([]domain.ProjectWithStats, error) {
	query := `SELECT p.*,
		COUNT(l.id) AS listings_count,
		MIN(l.created_at) AS first_listing,
		MAX(l.created_at) AS last_listing
		FROM projects p
		LEFT JOIN car_listings l ON l.project_id = p.id`
	args := []interface{}{}
	if ownerID != nil {
		query += " WHERE p.user_id = $1"
		args = append(args, *ownerID)
	}
	query += " GROUP BY p.id ORDER BY p.created_at DESC"

	var projects []domain.ProjectWithStats
	if err := r.db.SelectContext(ctx, &projects, query, args...); err != nil {
		return nil, fmt.Errorf("projectRepo.ListWithStats: %w", err)
	}
	return projects, nil
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	query := `UPDATE projects SET make = $1, model = $2, year_range_start = $3, year_range_end = $4,
		engine_capacity_start = $5, engine_capacity_end = $6, fuel_type = $7, co2_emissions = $8,
		doors_config = $9, freename = $10, transport_cost = $11, registration_tax = $12,
		plates_insurance_cost = $13
		WHERE id = $14`
	result, err := r.db.ExecContext(ctx, query,
		project.Make, project.Model, project.YearRangeStart, project.YearRangeEnd,
		project.EngineCapacityStart, project.EngineCapacityEnd, project.FuelType,
		project.CO2Emissions, project.DoorsConfig, project.Freename,
		project.TransportCost, project.RegistrationTax, project.PlatesInsuranceCost,
		project.ID)
	if err != nil {
		return fmt.Errorf("projectRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, projectID uuid.UUID) error {
	// car_listings.project_id is ON DELETE SET NULL: listings are detached,
	// never cascade-deleted.
	result, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = $1", projectID)
	if err != nil {
		return fmt.Errorf("projectRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
