package port

import (
	"context"

	"bini/internal/domain"
)

// StatsRepository provides the aggregate counting queries behind dashboard
// statistics. All reads are independent and side-effect free, so callers may
// issue them concurrently.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountSites(ctx context.Context) (int, error)
	CountBookings(ctx context.Context) (int, error)
	CountReviews(ctx context.Context) (int, error)

	// ApprovedRatingAverage returns the mean rating over all approved
	// reviews platform-wide, 0 when there are none.
	ApprovedRatingAverage(ctx context.Context) (float64, error)

	BookingsByStatus(ctx context.Context) ([]domain.BookingStatusCount, error)
	RevenueTotals(ctx context.Context) (*domain.RevenueStats, error)

	// SiteOccupancyRows returns one row per site with the total number of
	// people served by its completed bookings.
	SiteOccupancyRows(ctx context.Context) ([]domain.SiteOccupancyRow, error)
}
