package service

import (
	"context"

	"bananadb/internal/domain"
	"bananadb/internal/port"
)

// CreateDataSourceInput is the DTO for adding a data source.
type CreateDataSourceInput struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required"`
}

// DataSourceService defines the data-source reference table contract.
type DataSourceService interface {
	List(ctx context.Context) ([]domain.DataSource, error)
	Create(ctx context.Context, input CreateDataSourceInput) (*domain.DataSource, error)
	Delete(ctx context.Context, id int) error
}

type dataSourceService struct {
	repo port.DataSourceRepository
}

// NewDataSourceService creates a new DataSourceService implementation.
func NewDataSourceService(repo port.DataSourceRepository) DataSourceService {
	return &dataSourceService{repo: repo}
}

func (s *dataSourceService) List(ctx context.Context) ([]domain.DataSource, error) {
	return s.repo.List(ctx)
}

func (s *dataSourceService) Create(ctx context.Context, input CreateDataSourceInput) (*domain.DataSource, error) {
	source := &domain.DataSource{Name: input.Name, Country: input.Country}
	if err := s.repo.Create(ctx, source); err != nil {
		return nil, err
	}
	return source, nil
}

func (s *dataSourceService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
