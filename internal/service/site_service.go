package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bini/internal/config"
	"bini/internal/domain"
	"bini/internal/metrics"
	"bini/internal/port"
)

// SiteService exposes site reads and per-site occupancy.
type SiteService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Site, error)
	ListActive(ctx context.Context) ([]domain.Site, error)
	TopRated(ctx context.Context, limit int) ([]domain.Site, error)
	Occupancy(ctx context.Context, siteID uuid.UUID) (*domain.SiteOccupancy, error)
}

type siteService struct {
	siteRepo     port.SiteRepository
	bookingRepo  port.BookingRepository
	defaultLimit int
}

// NewSiteService creates a new site service.
func NewSiteService(siteRepo port.SiteRepository, bookingRepo port.BookingRepository, cfg config.AnalyticsConfig) SiteService {
	limit := cfg.TopSitesLimit
	if limit <= 0 {
		limit = 5
	}
	return &siteService{siteRepo: siteRepo, bookingRepo: bookingRepo, defaultLimit: limit}
}

func (s *siteService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Site, error) {
	return s.siteRepo.GetByID(ctx, id)
}

func (s *siteService) ListActive(ctx context.Context) ([]domain.Site, error) {
	sites, err := s.siteRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("siteService.ListActive: %w", err)
	}
	return sites, nil
}

// TopRated returns the highest-rated sites. A non-positive limit falls back
// to the configured default.
func (s *siteService) TopRated(ctx context.Context, limit int) ([]domain.Site, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	sites, err := s.siteRepo.TopRated(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("siteService.TopRated: %w", err)
	}
	return sites, nil
}

// Occupancy returns one site's lifetime occupancy snapshot over its
// completed bookings.
func (s *siteService) Occupancy(ctx context.Context, siteID uuid.UUID) (*domain.SiteOccupancy, error) {
	site, err := s.siteRepo.GetByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	totalPeople, err := s.bookingRepo.SumPeople(ctx, siteID, domain.BookingStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("siteService.Occupancy: %w", err)
	}
	return &domain.SiteOccupancy{
		SiteID:         site.ID,
		MaxCapacity:    site.MaxCapacity,
		TotalPeople:    totalPeople,
		OccupationRate: metrics.SnapshotOccupancyRate(totalPeople, site.MaxCapacity),
	}, nil
}
