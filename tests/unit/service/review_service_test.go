package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bini/internal/domain"
	"bini/internal/service"
	"bini/mocks"
)

func newReviewService() (service.ReviewService, *mocks.MockReviewRepo, *mocks.MockSiteRepo) {
	reviewRepo := new(mocks.MockReviewRepo)
	siteRepo := new(mocks.MockSiteRepo)
	return service.NewReviewService(reviewRepo, siteRepo), reviewRepo, siteRepo
}

func TestReviewService_Create_DefaultsToPending(t *testing.T) {
	svc, reviewRepo, siteRepo := newReviewService()

	siteID := uuid.New()
	siteRepo.On("GetByID", mock.Anything, siteID).Return(&domain.Site{ID: siteID}, nil)
	reviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)

	review, err := svc.Create(context.Background(), service.CreateReviewInput{
		SiteID: siteID,
		Rating: 5,
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.ReviewStatusPending, review.Status)
	reviewRepo.AssertExpectations(t)
}

func TestReviewService_Create_InvalidRating(t *testing.T) {
	svc, _, _ := newReviewService()

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.Create(context.Background(), service.CreateReviewInput{SiteID: uuid.New(), Rating: rating})
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	}
}

func TestReviewService_Create_SiteNotFound(t *testing.T) {
	svc, _, siteRepo := newReviewService()

	siteID := uuid.New()
	siteRepo.On("GetByID", mock.Anything, siteID).Return(nil, domain.ErrSiteNotFound)

	_, err := svc.Create(context.Background(), service.CreateReviewInput{SiteID: siteID, Rating: 4})
	assert.ErrorIs(t, err, domain.ErrSiteNotFound)
}

func TestReviewService_Approve_DelegatesToModerate(t *testing.T) {
	svc, reviewRepo, _ := newReviewService()

	id := uuid.New()
	approved := &domain.Review{ID: id, Status: domain.ReviewStatusApproved}
	reviewRepo.On("Moderate", mock.Anything, id, domain.ReviewStatusApproved).Return(approved, nil)

	review, err := svc.Approve(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, approved, review)
}

func TestReviewService_Reject_DelegatesToModerate(t *testing.T) {
	svc, reviewRepo, _ := newReviewService()

	id := uuid.New()
	rejected := &domain.Review{ID: id, Status: domain.ReviewStatusRejected}
	reviewRepo.On("Moderate", mock.Anything, id, domain.ReviewStatusRejected).Return(rejected, nil)

	review, err := svc.Reject(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, rejected, review)
}

func TestReviewService_Approve_NotFound(t *testing.T) {
	svc, reviewRepo, _ := newReviewService()

	id := uuid.New()
	reviewRepo.On("Moderate", mock.Anything, id, domain.ReviewStatusApproved).Return(nil, domain.ErrReviewNotFound)

	_, err := svc.Approve(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}

func TestReviewService_SiteStats(t *testing.T) {
	svc, reviewRepo, siteRepo := newReviewService()

	siteID := uuid.New()
	reviews := []domain.Review{
		{SiteID: siteID, Rating: 5},
		{SiteID: siteID, Rating: 4},
		{SiteID: siteID, Rating: 5},
	}
	siteRepo.On("GetByID", mock.Anything, siteID).Return(&domain.Site{ID: siteID}, nil)
	reviewRepo.On("ListApprovedBySite", mock.Anything, siteID).Return(reviews, nil)

	stats, err := svc.SiteStats(context.Background(), siteID)
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalReviews)
	assert.Equal(t, 4.7, stats.AvgRating)
	assert.Equal(t, 2, stats.Distribution[5])
	assert.Equal(t, 1, stats.Distribution[4])
	assert.Zero(t, stats.Distribution[1])
}

func TestReviewService_SiteStats_NoReviews(t *testing.T) {
	svc, reviewRepo, siteRepo := newReviewService()

	siteID := uuid.New()
	siteRepo.On("GetByID", mock.Anything, siteID).Return(&domain.Site{ID: siteID}, nil)
	reviewRepo.On("ListApprovedBySite", mock.Anything, siteID).Return([]domain.Review{}, nil)

	stats, err := svc.SiteStats(context.Background(), siteID)
	assert.NoError(t, err)
	assert.Zero(t, stats.TotalReviews)
	assert.Zero(t, stats.AvgRating)
}
