package port

import (
	"context"

	"github.com/google/uuid"

	"bini/internal/domain"
)

// SiteRepository defines the contract for site persistence.
// Rating is written exclusively through rating propagation (see
// ReviewRepository.Moderate); no other writer touches it.
type SiteRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Site, error)
	ListActive(ctx context.Context) ([]domain.Site, error)
	TopRated(ctx context.Context, limit int) ([]domain.Site, error)
}
