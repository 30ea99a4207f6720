package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"bini/internal/config"
	"bini/internal/domain"
	"bini/internal/metrics"
	"bini/internal/port"
)

// AnalyticsService computes the advanced per-site analytics report.
type AnalyticsService interface {
	AdvancedAnalytics(ctx context.Context) (*domain.AnalyticsReport, error)
}

type analyticsService struct {
	siteRepo    port.SiteRepository
	bookingRepo port.BookingRepository
	reviewRepo  port.ReviewRepository
	periodDays  int
	// now anchors every time-relative window in a single report run.
	now func() time.Time
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	siteRepo port.SiteRepository,
	bookingRepo port.BookingRepository,
	reviewRepo port.ReviewRepository,
	cfg config.AnalyticsConfig,
) AnalyticsService {
	periodDays := cfg.OccupancyPeriodDays
	if periodDays <= 0 {
		periodDays = metrics.DefaultOccupancyPeriodDays
	}
	return &analyticsService{
		siteRepo:    siteRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
		periodDays:  periodDays,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// AdvancedAnalytics builds the per-site metrics report over active sites,
// revenue-bearing bookings and approved reviews, plus the cross-site
// superlatives. Best-site fields stay nil when no active site exists.
func (s *analyticsService) AdvancedAnalytics(ctx context.Context) (*domain.AnalyticsReport, error) {
	var (
		sites    []domain.Site
		bookings []domain.Booking
		reviews  []domain.Review
		firstAt  *time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sites, err = s.siteRepo.ListActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = s.bookingRepo.ListByStatuses(gctx, domain.RevenueStatuses)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = s.reviewRepo.ListApproved(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		firstAt, err = s.bookingRepo.FirstBookingTime(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyticsService.AdvancedAnalytics: %w", err)
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodStart := now.AddDate(0, 0, -s.periodDays)

	bookingsBySite := make(map[uuid.UUID][]domain.Booking)
	for _, b := range bookings {
		bookingsBySite[b.SiteID] = append(bookingsBySite[b.SiteID], b)
	}
	reviewsBySite := make(map[uuid.UUID][]domain.Review)
	for _, r := range reviews {
		reviewsBySite[r.SiteID] = append(reviewsBySite[r.SiteID], r)
	}

	report := &domain.AnalyticsReport{
		Sites: make([]domain.SiteMetrics, 0, len(sites)),
	}

	for _, site := range sites {
		siteBookings := bookingsBySite[site.ID]
		siteReviews := reviewsBySite[site.ID]

		var monthly, recent []domain.Booking
		for _, b := range siteBookings {
			if !b.CreatedAt.Before(monthStart) {
				monthly = append(monthly, b)
			}
			if !b.CreatedAt.Before(periodStart) {
				recent = append(recent, b)
			}
		}

		visitors := metrics.PeopleSum(recent)
		m := domain.SiteMetrics{
			ID:             site.ID,
			Name:           site.Name,
			Location:       site.Location,
			MonthlyRevenue: metrics.RevenueSum(monthly),
			TotalRevenue:   metrics.RevenueSum(siteBookings),
			OccupancyRate:  metrics.OccupancyRate(visitors, site.MaxCapacity, s.periodDays),
			TotalBookings:  len(siteBookings),
			TotalVisitors:  visitors,
			AvgRating:      metrics.AverageRating(siteReviews),
			ReviewCount:    len(siteReviews),
		}
		report.Sites = append(report.Sites, m)
		report.GlobalMetrics.TotalVisitors += visitors
	}

	// Superlatives: strict comparison, so the first site wins ties.
	if len(report.Sites) > 0 {
		best := report.Sites[0]
		bestOcc := report.Sites[0]
		for _, m := range report.Sites[1:] {
			if m.MonthlyRevenue > best.MonthlyRevenue {
				best = m
			}
			if m.OccupancyRate > bestOcc.OccupancyRate {
				bestOcc = m
			}
		}
		report.GlobalMetrics.BestRevenueSite = &best.Name
		report.GlobalMetrics.BestOccupancySite = &bestOcc.Name
	}

	if firstAt != nil {
		report.GlobalMetrics.DaysSinceLaunch = metrics.DaysSince(*firstAt, now)
	}

	return report, nil
}
