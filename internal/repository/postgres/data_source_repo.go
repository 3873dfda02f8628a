package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"bananadb/internal/domain"
	"bananadb/internal/port"
)

type dataSourceRepo struct {
	db *sqlx.DB
}

// NewDataSourceRepo creates a new PostgreSQL-backed DataSourceRepository.
func NewDataSourceRepo(db *sqlx.DB) port.DataSourceRepository {
	return &dataSourceRepo{db: db}
}

func (r *dataSourceRepo) List(ctx context.Context) ([]domain.DataSource, error) {
	var sources []domain.DataSource
	err := r.db.SelectContext(ctx, &sources, "SELECT * FROM data_sources ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("dataSourceRepo.List: %w", err)
	}
	return sources, nil
}

func (r *dataSourceRepo) Create(ctx context.Context, source *domain.DataSource) error {
	source.CreatedAt = time.Now().UTC()
	err := r.db.GetContext(ctx, &source.ID,
		"INSERT INTO data_sources (name, country, created_at) VALUES ($1, $2, $3) RETURNING id",
		source.Name, source.Country, source.CreatedAt)
	if err != nil {
		return fmt.Errorf("dataSourceRepo.Create: %w", err)
	}
	return nil
}

func (r *dataSourceRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM data_sources WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("dataSourceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *dataSourceRepo) UpsertByName(ctx context.Context, source *domain.DataSource) error {
	source.CreatedAt = time.Now().UTC()
	err := r.db.GetContext(ctx, &source.ID,
		`INSERT INTO data_sources (name, country, created_at) VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO UPDATE SET country = EXCLUDED.country
		 RETURNING id`,
		source.Name, source.Country, source.CreatedAt)
	if err != nil {
		return fmt.Errorf("dataSourceRepo.UpsertByName: %w", err)
	}
	return nil
}
