package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"bini/internal/domain"
	"bini/internal/metrics"
	"bini/internal/port"
)

type reviewRepo struct {
	db *sqlx.DB
}

// NewReviewRepo creates a new PostgreSQL-backed ReviewRepository.
func NewReviewRepo(db *sqlx.DB) port.ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(ctx context.Context, review *domain.Review) error {
	review.ID = uuid.New()
	now := time.Now().UTC()
	review.CreatedAt = now
	review.UpdatedAt = now

	query := `INSERT INTO reviews (id, site_id, user_id, rating, comment, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		review.ID, review.SiteID, review.UserID, review.Rating, review.Comment,
		review.Status, review.CreatedAt, review.UpdatedAt)
	if err != nil {
		return fmt.Errorf("reviewRepo.Create: %w", err)
	}
	return nil
}

func (r *reviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var review domain.Review
	err := r.db.GetContext(ctx, &review, "SELECT * FROM reviews WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("reviewRepo.GetByID: %w", err)
	}
	return &review, nil
}

func (r *reviewRepo) ListApproved(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.SelectContext(ctx, &reviews,
		"SELECT * FROM reviews WHERE status = $1 ORDER BY created_at DESC",
		domain.ReviewStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("reviewRepo.ListApproved: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepo) ListApprovedBySite(ctx context.Context, siteID uuid.UUID) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.SelectContext(ctx, &reviews,
		"SELECT * FROM reviews WHERE site_id = $1 AND status = $2 ORDER BY created_at DESC",
		siteID, domain.ReviewStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("reviewRepo.ListApprovedBySite: %w", err)
	}
	return reviews, nil
}

// Moderate updates a review's status and recomputes the owning site's cached
// rating from its approved reviews inside one transaction. Readers of
// sites.rating never observe the status change without the matching rating,
// and a failed rating write rolls the moderation back entirely.
func (r *reviewRepo) Moderate(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) (*domain.Review, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("reviewRepo.Moderate begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var review domain.Review
	err = tx.GetContext(ctx, &review,
		`UPDATE reviews SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING *`,
		status, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("reviewRepo.Moderate update: %w", err)
	}

	var ratings []int
	err = tx.SelectContext(ctx, &ratings,
		"SELECT rating FROM reviews WHERE site_id = $1 AND status = $2",
		review.SiteID, domain.ReviewStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("reviewRepo.Moderate ratings: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE sites SET rating = $1, updated_at = NOW() WHERE id = $2",
		metrics.AverageRatingValues(ratings), review.SiteID)
	if err != nil {
		return nil, fmt.Errorf("reviewRepo.Moderate rating write: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("reviewRepo.Moderate commit: %w", err)
	}
	return &review, nil
}
