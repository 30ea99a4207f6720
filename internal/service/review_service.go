package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bini/internal/domain"
	"bini/internal/metrics"
	"bini/internal/port"
)

// CreateReviewInput carries the fields a caller supplies to submit a review.
type CreateReviewInput struct {
	SiteID  uuid.UUID
	UserID  *uuid.UUID
	Rating  int
	Comment string
}

// ReviewService manages review intake, moderation and per-site review stats.
// Moderation triggers rating propagation on the owning site.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	Reject(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	SiteStats(ctx context.Context, siteID uuid.UUID) (*domain.ReviewStats, error)
}

type reviewService struct {
	reviewRepo port.ReviewRepository
	siteRepo   port.SiteRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo port.ReviewRepository, siteRepo port.SiteRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, siteRepo: siteRepo}
}

// Create stores a new review as pending. Pending reviews never influence
// the site's cached rating until approved.
func (s *reviewService) Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	if _, err := s.siteRepo.GetByID(ctx, input.SiteID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		SiteID:  input.SiteID,
		UserID:  input.UserID,
		Rating:  input.Rating,
		Comment: input.Comment,
		Status:  domain.ReviewStatusPending,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("reviewService.Create: %w", err)
	}
	return review, nil
}

func (s *reviewService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

// Approve marks the review approved and recomputes the owning site's cached
// rating in the same transaction. A failed recompute fails the approval.
func (s *reviewService) Approve(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return s.reviewRepo.Moderate(ctx, id, domain.ReviewStatusApproved)
}

// Reject marks the review rejected. Rejecting a previously approved review
// also recomputes the site's rating, since the review leaves the approved set.
func (s *reviewService) Reject(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return s.reviewRepo.Moderate(ctx, id, domain.ReviewStatusRejected)
}

// SiteStats summarizes one site's approved reviews: count, average rating
// and the star distribution.
func (s *reviewService) SiteStats(ctx context.Context, siteID uuid.UUID) (*domain.ReviewStats, error) {
	if _, err := s.siteRepo.GetByID(ctx, siteID); err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.ListApprovedBySite(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("reviewService.SiteStats: %w", err)
	}
	return &domain.ReviewStats{
		TotalReviews: len(reviews),
		AvgRating:    metrics.AverageRating(reviews),
		Distribution: metrics.RatingDistribution(reviews),
	}, nil
}
