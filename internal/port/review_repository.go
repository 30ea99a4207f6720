package port

import (
	"context"

	"github.com/google/uuid"

	"bini/internal/domain"
)

// ReviewRepository defines the contract for review persistence and rating
// propagation.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ListApproved(ctx context.Context) ([]domain.Review, error)
	ListApprovedBySite(ctx context.Context, siteID uuid.UUID) ([]domain.Review, error)

	// Moderate moves a review to the given status and, in the same
	// transaction, recomputes the owning site's cached rating from its
	// approved reviews. A failed rating write rolls the status change back,
	// so the two can never diverge.
	Moderate(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) (*domain.Review, error)
}
