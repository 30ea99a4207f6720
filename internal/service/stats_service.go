package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"bini/internal/domain"
	"bini/internal/metrics"
	"bini/internal/port"
)

// StatsService computes platform-wide dashboard statistics.
type StatsService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	Summary(ctx context.Context) (*domain.StatsSummary, error)
	Revenue(ctx context.Context) (*domain.RevenueStats, error)
	PdgDashboard(ctx context.Context) (*domain.PdgDashboard, error)
}

type statsService struct {
	statsRepo port.StatsRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(statsRepo port.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

// Dashboard returns the public dashboard counters. The five reads are
// independent, so they run concurrently; any failure fails the whole call.
func (s *statsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.TotalUsers, err = s.statsRepo.CountUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalSites, err = s.statsRepo.CountSites(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalBookings, err = s.statsRepo.CountBookings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalReviews, err = s.statsRepo.CountReviews(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.AvgRating, err = s.statsRepo.ApprovedRatingAverage(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("statsService.Dashboard: %w", err)
	}

	return stats, nil
}

// Summary returns entity counts plus the bookings-by-status grouping.
func (s *statsService) Summary(ctx context.Context) (*domain.StatsSummary, error) {
	summary := &domain.StatsSummary{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary.Users, err = s.statsRepo.CountUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary.Sites, err = s.statsRepo.CountSites(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary.Bookings, err = s.statsRepo.CountBookings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary.Reviews, err = s.statsRepo.CountReviews(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary.BookingsByStatus, err = s.statsRepo.BookingsByStatus(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("statsService.Summary: %w", err)
	}

	if summary.BookingsByStatus == nil {
		summary.BookingsByStatus = []domain.BookingStatusCount{}
	}
	return summary, nil
}

// Revenue returns platform-wide revenue totals over revenue-bearing bookings.
func (s *statsService) Revenue(ctx context.Context) (*domain.RevenueStats, error) {
	revenue, err := s.statsRepo.RevenueTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("statsService.Revenue: %w", err)
	}
	return revenue, nil
}

// PdgDashboard returns the company-wide dashboard: entity counts, revenue,
// the global lifetime occupancy rate, and each site's occupancy snapshot.
// With zero sites every figure is zero and the per-site list is empty.
func (s *statsService) PdgDashboard(ctx context.Context) (*domain.PdgDashboard, error) {
	dashboard := &domain.PdgDashboard{}

	var revenue *domain.RevenueStats
	var occupancyRows []domain.SiteOccupancyRow

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dashboard.UserStats, err = s.statsRepo.CountUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		dashboard.SiteStats, err = s.statsRepo.CountSites(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		dashboard.BookingStats, err = s.statsRepo.CountBookings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		dashboard.ReviewStats, err = s.statsRepo.ApprovedRatingAverage(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		revenue, err = s.statsRepo.RevenueTotals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		occupancyRows, err = s.statsRepo.SiteOccupancyRows(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("statsService.PdgDashboard: %w", err)
	}

	if revenue != nil {
		dashboard.RevenueStats = revenue.TotalRevenue
	}

	occupations := make([]domain.SiteOccupation, 0, len(occupancyRows))
	for _, row := range occupancyRows {
		occupations = append(occupations, domain.SiteOccupation{
			SiteID:         row.SiteID,
			SiteName:       row.SiteName,
			TotalPeople:    row.TotalPeople,
			MaxCapacity:    row.MaxCapacity,
			OccupationRate: metrics.SnapshotOccupancyRate(row.TotalPeople, row.MaxCapacity),
		})
		dashboard.TotalPeople += row.TotalPeople
		dashboard.TotalCapacity += row.MaxCapacity
	}
	dashboard.SiteOccupations = occupations
	dashboard.GlobalOccupationRate = metrics.SnapshotOccupancyRate(dashboard.TotalPeople, dashboard.TotalCapacity)

	return dashboard, nil
}
