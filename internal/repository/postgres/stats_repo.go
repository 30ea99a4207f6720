package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bini/internal/domain"
	"bini/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) count(ctx context.Context, name, query string) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("statsRepo.%s: %w", name, err)
	}
	return total, nil
}

func (r *statsRepo) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, "CountUsers", "SELECT COUNT(*) FROM users")
}

func (r *statsRepo) CountSites(ctx context.Context) (int, error) {
	return r.count(ctx, "CountSites", "SELECT COUNT(*) FROM sites")
}

func (r *statsRepo) CountBookings(ctx context.Context) (int, error) {
	return r.count(ctx, "CountBookings", "SELECT COUNT(*) FROM bookings")
}

func (r *statsRepo) CountReviews(ctx context.Context) (int, error) {
	return r.count(ctx, "CountReviews", "SELECT COUNT(*) FROM reviews")
}

func (r *statsRepo) ApprovedRatingAverage(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.GetContext(ctx, &avg,
		"SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE status = $1",
		domain.ReviewStatusApproved)
	if err != nil {
		return 0, fmt.Errorf("statsRepo.ApprovedRatingAverage: %w", err)
	}
	return avg, nil
}

func (r *statsRepo) BookingsByStatus(ctx context.Context) ([]domain.BookingStatusCount, error) {
	var rows []domain.BookingStatusCount
	err := r.db.SelectContext(ctx, &rows,
		`SELECT status, COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS revenue
		FROM bookings GROUP BY status ORDER BY count DESC, status ASC`)
	if err != nil {
		return nil, fmt.Errorf("statsRepo.BookingsByStatus: %w", err)
	}
	return rows, nil
}

func (r *statsRepo) RevenueTotals(ctx context.Context) (*domain.RevenueStats, error) {
	var stats domain.RevenueStats
	err := r.db.GetContext(ctx, &stats, `SELECT
		COALESCE(SUM(total_price), 0) AS total_revenue,
		ROUND(COALESCE(AVG(total_price), 0)::numeric, 2) AS avg_reservation,
		COUNT(*) AS total_bookings
	FROM bookings
	WHERE status IN ($1, $2)`,
		domain.BookingStatusConfirmed, domain.BookingStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("statsRepo.RevenueTotals: %w", err)
	}
	return &stats, nil
}

func (r *statsRepo) SiteOccupancyRows(ctx context.Context) ([]domain.SiteOccupancyRow, error) {
	var rows []domain.SiteOccupancyRow
	err := r.db.SelectContext(ctx, &rows, `SELECT
		s.id AS site_id,
		s.name AS site_name,
		s.max_capacity,
		COALESCE(SUM(CASE WHEN b.status = 'completed' THEN b.number_of_people ELSE 0 END), 0) AS total_people
	FROM sites s
	LEFT JOIN bookings b ON b.site_id = s.id
	GROUP BY s.id, s.name, s.max_capacity, s.created_at
	ORDER BY s.created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("statsRepo.SiteOccupancyRows: %w", err)
	}
	return rows, nil
}
