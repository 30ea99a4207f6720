package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bini/internal/domain"
	"bini/internal/service"
	"bini/mocks"
)

func newStatsService() (service.StatsService, *mocks.MockStatsRepo) {
	mockRepo := new(mocks.MockStatsRepo)
	return service.NewStatsService(mockRepo), mockRepo
}

func TestStatsService_Dashboard_Success(t *testing.T) {
	svc, mockRepo := newStatsService()

	mockRepo.On("CountUsers", mock.Anything).Return(42, nil)
	mockRepo.On("CountSites", mock.Anything).Return(7, nil)
	mockRepo.On("CountBookings", mock.Anything).Return(310, nil)
	mockRepo.On("CountReviews", mock.Anything).Return(55, nil)
	mockRepo.On("ApprovedRatingAverage", mock.Anything).Return(4.3, nil)

	stats, err := svc.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 42, stats.TotalUsers)
	assert.Equal(t, 7, stats.TotalSites)
	assert.Equal(t, 310, stats.TotalBookings)
	assert.Equal(t, 55, stats.TotalReviews)
	assert.Equal(t, 4.3, stats.AvgRating)
	mockRepo.AssertExpectations(t)
}

func TestStatsService_Dashboard_EmptyPlatform(t *testing.T) {
	svc, mockRepo := newStatsService()

	mockRepo.On("CountUsers", mock.Anything).Return(0, nil)
	mockRepo.On("CountSites", mock.Anything).Return(0, nil)
	mockRepo.On("CountBookings", mock.Anything).Return(0, nil)
	mockRepo.On("CountReviews", mock.Anything).Return(0, nil)
	mockRepo.On("ApprovedRatingAverage", mock.Anything).Return(0.0, nil)

	stats, err := svc.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, &domain.DashboardStats{}, stats)
}

func TestStatsService_Dashboard_RepoError(t *testing.T) {
	svc, mockRepo := newStatsService()

	mockRepo.On("CountUsers", mock.Anything).Return(0, errors.New("db error"))
	mockRepo.On("CountSites", mock.Anything).Return(0, nil).Maybe()
	mockRepo.On("CountBookings", mock.Anything).Return(0, nil).Maybe()
	mockRepo.On("CountReviews", mock.Anything).Return(0, nil).Maybe()
	mockRepo.On("ApprovedRatingAverage", mock.Anything).Return(0.0, nil).Maybe()

	stats, err := svc.Dashboard(context.Background())
	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestStatsService_Summary_NilStatusRowsBecomeEmpty(t *testing.T) {
	svc, mockRepo := newStatsService()

	mockRepo.On("CountUsers", mock.Anything).Return(1, nil)
	mockRepo.On("CountSites", mock.Anything).Return(1, nil)
	mockRepo.On("CountBookings", mock.Anything).Return(0, nil)
	mockRepo.On("CountReviews", mock.Anything).Return(0, nil)
	mockRepo.On("BookingsByStatus", mock.Anything).Return(nil, nil)

	summary, err := svc.Summary(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, summary.BookingsByStatus)
	assert.Empty(t, summary.BookingsByStatus)
}

func TestStatsService_Summary_Success(t *testing.T) {
	svc, mockRepo := newStatsService()

	rows := []domain.BookingStatusCount{
		{Status: domain.BookingStatusConfirmed, Count: 12, Revenue: 2400},
		{Status: domain.BookingStatusPending, Count: 3, Revenue: 450},
	}
	mockRepo.On("CountUsers", mock.Anything).Return(10, nil)
	mockRepo.On("CountSites", mock.Anything).Return(2, nil)
	mockRepo.On("CountBookings", mock.Anything).Return(15, nil)
	mockRepo.On("CountReviews", mock.Anything).Return(4, nil)
	mockRepo.On("BookingsByStatus", mock.Anything).Return(rows, nil)

	summary, err := svc.Summary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 15, summary.Bookings)
	assert.Equal(t, rows, summary.BookingsByStatus)
	assert.Equal(t, 2400.0, summary.BookingsByStatus[0].Revenue)
}

func TestStatsService_Revenue_Success(t *testing.T) {
	svc, mockRepo := newStatsService()

	expected := &domain.RevenueStats{TotalRevenue: 12500, AvgReservation: 250.5, TotalBookings: 50}
	mockRepo.On("RevenueTotals", mock.Anything).Return(expected, nil)

	revenue, err := svc.Revenue(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, revenue)
}

func TestStatsService_PdgDashboard_Success(t *testing.T) {
	svc, mockRepo := newStatsService()

	siteA := uuid.New()
	siteB := uuid.New()
	rows := []domain.SiteOccupancyRow{
		{SiteID: siteA, SiteName: "Museum", MaxCapacity: 100, TotalPeople: 25},
		{SiteID: siteB, SiteName: "Fort", MaxCapacity: 50, TotalPeople: 75},
	}
	mockRepo.On("CountUsers", mock.Anything).Return(20, nil)
	mockRepo.On("CountSites", mock.Anything).Return(2, nil)
	mockRepo.On("CountBookings", mock.Anything).Return(40, nil)
	mockRepo.On("ApprovedRatingAverage", mock.Anything).Return(4.1, nil)
	mockRepo.On("RevenueTotals", mock.Anything).Return(&domain.RevenueStats{TotalRevenue: 9000}, nil)
	mockRepo.On("SiteOccupancyRows", mock.Anything).Return(rows, nil)

	dashboard, err := svc.PdgDashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 9000.0, dashboard.RevenueStats)
	assert.Equal(t, 100, dashboard.TotalPeople)
	assert.Equal(t, 150, dashboard.TotalCapacity)
	assert.Len(t, dashboard.SiteOccupations, 2)
	assert.Equal(t, 25.0, dashboard.SiteOccupations[0].OccupationRate)
	// 75 people against 50 seats clamps at 100.
	assert.Equal(t, 100.0, dashboard.SiteOccupations[1].OccupationRate)
	assert.Equal(t, 66.67, dashboard.GlobalOccupationRate)
}

func TestStatsService_PdgDashboard_NoSites(t *testing.T) {
	svc, mockRepo := newStatsService()

	mockRepo.On("CountUsers", mock.Anything).Return(0, nil)
	mockRepo.On("CountSites", mock.Anything).Return(0, nil)
	mockRepo.On("CountBookings", mock.Anything).Return(0, nil)
	mockRepo.On("ApprovedRatingAverage", mock.Anything).Return(0.0, nil)
	mockRepo.On("RevenueTotals", mock.Anything).Return(&domain.RevenueStats{}, nil)
	mockRepo.On("SiteOccupancyRows", mock.Anything).Return([]domain.SiteOccupancyRow{}, nil)

	dashboard, err := svc.PdgDashboard(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, dashboard.GlobalOccupationRate)
	assert.Zero(t, dashboard.TotalCapacity)
	assert.Empty(t, dashboard.SiteOccupations)
}
