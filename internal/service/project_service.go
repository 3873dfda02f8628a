package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"bananadb/internal/domain"
	"bananadb/internal/port"
)

// CreateProjectInput is the DTO for creating a project.
type CreateProjectInput struct {
	Make                string  `json:"make" binding:"required"`
	Model               string  `json:"model" binding:"required"`
	YearRangeStart      int     `json:"year_range_start" binding:"required"`
	YearRangeEnd        int     `json:"year_range_end" binding:"required"`
	EngineCapacityStart int     `json:"engine_capacity_start"`
	EngineCapacityEnd   int     `json:"engine_capacity_end"`
	FuelType            string  `json:"fuel_type"`
	CO2Emissions        float64 `json:"co2_emissions"`
	DoorsConfig         string  `json:"doors_config"`
	Freename            string  `json:"freename"`
	TransportCost       float64 `json:"transport_cost"`
	RegistrationTax     float64 `json:"registration_tax"`
	PlatesInsuranceCost float64 `json:"plates_insurance_cost"`
}

// UpdateProjectInput is the DTO for updating a project. Nil fields are
// left unchanged.
type UpdateProjectInput struct {
	Make                *string  `json:"make"`
	Model               *string  `json:"model"`
	YearRangeStart      *int     `json:"year_range_start"`
	YearRangeEnd        *int     `json:"year_range_end"`
	EngineCapacityStart *int     `json:"engine_capacity_start"`
	EngineCapacityEnd   *int     `json:"engine_capacity_end"`
	FuelType            *string  `json:"fuel_type"`
	CO2Emissions        *float64 `json:"co2_emissions"`
	DoorsConfig         *string  `json:"doors_config"`
	Freename            *string  `json:"freename"`
	TransportCost       *float64 `json:"transport_cost"`
	RegistrationTax     *float64 `json:"registration_tax"`
	PlatesInsuranceCost *float64 `json:"plates_insurance_cost"`
}

// ProjectService defines the project management contract.
type ProjectService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateProjectInput) (*domain.Project, error)
	GetByID(ctx context.Context, actor *Claims, projectID uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, actor *Claims) ([]domain.ProjectWithStats, error)
	Update(ctx context.Context, actor *Claims, projectID uuid.UUID, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, actor *Claims, projectID uuid.UUID) error
}

type projectService struct {
	repo port.ProjectRepository
}

// NewProjectService creates a new ProjectService implementation.
func NewProjectService(repo port.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) Create(ctx context.Context, userID uuid.UUID, input CreateProjectInput) (*domain.Project, error) {
	if input.YearRangeStart > input.YearRangeEnd {
		return nil, domain.ErrInvalidYearRange
	}
	if input.EngineCapacityStart > input.EngineCapacityEnd {
		return nil, domain.ErrInvalidEngineRange
	}

	project := &domain.Project{
		Make:                input.Make,
		Model:               input.Model,
		YearRangeStart:      input.YearRangeStart,
		YearRangeEnd:        input.YearRangeEnd,
		EngineCapacityStart: input.EngineCapacityStart,
		EngineCapacityEnd:   input.EngineCapacityEnd,
		FuelType:            input.FuelType,
		CO2Emissions:        input.CO2Emissions,
		DoorsConfig:         input.DoorsConfig,
		Freename:            input.Freename,
		TransportCost:       input.TransportCost,
		RegistrationTax:     input.RegistrationTax,
		PlatesInsuranceCost: input.PlatesInsuranceCost,
		UserID:              userID,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, actor *Claims, projectID uuid.UUID) (*domain.Project, error) {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != actor.UserID && !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context, actor *Claims) ([]domain.ProjectWithStats, error) {
	var ownerID *uuid.UUID
	if !actor.IsAdmin {
		ownerID = &actor.UserID
	}
	projects, err := s.repo.ListWithStats(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].DisplayName = DisplayName(&projects[i].Project)
	}
	return projects, nil
}

func (s *projectService) Update(ctx context.Context, actor *Claims, projectID uuid.UUID, input UpdateProjectInput) (*domain.Project, error) {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != actor.UserID && !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}

	if input.Make != nil {
		project.Make = *input.Make
	}
	if input.Model != nil {
		project.Model = *input.Model
	}
	if input.YearRangeStart != nil {
		project.YearRangeStart = *input.YearRangeStart
	}
	if input.YearRangeEnd != nil {
		project.YearRangeEnd = *input.YearRangeEnd
	}
	if input.EngineCapacityStart != nil {
		project.EngineCapacityStart = *input.EngineCapacityStart
	}
	if input.EngineCapacityEnd != nil {
		project.EngineCapacityEnd = *input.EngineCapacityEnd
	}
	if input.FuelType != nil {
		project.FuelType = *input.FuelType
	}
	if input.CO2Emissions != nil {
		project.CO2Emissions = *input.CO2Emissions
	}
	if input.DoorsConfig != nil {
		project.DoorsConfig = *input.DoorsConfig
	}
	if input.Freename != nil {
		project.Freename = *input.Freename
	}
	if input.TransportCost != nil {
		project.TransportCost = *input.TransportCost
	}
	if input.RegistrationTax != nil {
		project.RegistrationTax = *input.RegistrationTax
	}
	if input.PlatesInsuranceCost != nil {
		project.PlatesInsuranceCost = *input.PlatesInsuranceCost
	}

	if project.YearRangeStart > project.YearRangeEnd {
		return nil, domain.ErrInvalidYearRange
	}
	if project.EngineCapacityStart > project.EngineCapacityEnd {
		return nil, domain.ErrInvalidEngineRange
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, actor *Claims, projectID uuid.UUID) error {
	if !actor.IsAdmin {
		return domain.ErrForbidden
	}
	if _, err := s.repo.GetByID(ctx, projectID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, projectID)
}

// DisplayName renders the overview label for a project:
// DD.MM.YYYY.MAKE.MODEL.YY/YY.FREENAME. A single-year range collapses
// to one two-digit year.
func DisplayName(p *domain.Project) string {
	date := p.CreatedAt.Format("02.01.2006")
	return fmt.Sprintf("%s.%s.%s.%s.%s",
		date,
		strings.ToUpper(p.Make),
		strings.ToUpper(p.Model),
		formatYearRange(p.YearRangeStart, p.YearRangeEnd),
		strings.ToUpper(p.Freename))
}

func formatYearRange(start, end int) string {
	if start == end {
		return lastTwo(start)
	}
	return lastTwo(start) + "/" + lastTwo(end)
}

func lastTwo(year int) string {
	s := fmt.Sprintf("%d", year)
	if len(s) > 2 {
		s = s[len(s)-2:]
	}
	return s
}
