package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"bini/internal/domain"
	"bini/internal/port"
)

type siteRepo struct {
	db *sqlx.DB
}

// NewSiteRepo creates a new PostgreSQL-backed SiteRepository.
func NewSiteRepo(db *sqlx.DB) port.SiteRepository {
	return &siteRepo{db: db}
}

func (r *siteRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Site, error) {
	var site domain.Site
	err := r.db.GetContext(ctx, &site, "SELECT * FROM sites WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSiteNotFound
		}
		return nil, fmt.Errorf("siteRepo.GetByID: %w", err)
	}
	return &site, nil
}

func (r *siteRepo) ListActive(ctx context.Context) ([]domain.Site, error) {
	var sites []domain.Site
	err := r.db.SelectContext(ctx, &sites,
		"SELECT * FROM sites WHERE is_active = true ORDER BY created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("siteRepo.ListActive: %w", err)
	}
	return sites, nil
}

func (r *siteRepo) TopRated(ctx context.Context, limit int) ([]domain.Site, error) {
	var sites []domain.Site
	err := r.db.SelectContext(ctx, &sites,
		"SELECT * FROM sites WHERE is_active = true ORDER BY rating DESC, name ASC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("siteRepo.TopRated: %w", err)
	}
	return sites, nil
}
