package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bini/internal/domain"
)

// BookingRepository defines the contract for booking persistence and the
// filtered reads the report orchestrators aggregate over.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error

	// ListByStatuses returns all bookings in any of the given statuses,
	// across all sites.
	ListByStatuses(ctx context.Context, statuses []domain.BookingStatus) ([]domain.Booking, error)

	// ListForReport returns bookings in any of the given statuses narrowed
	// by the filters (inclusive date range on start_date, site, and an
	// effective-method match against provider or method).
	ListForReport(ctx context.Context, statuses []domain.BookingStatus, filters domain.ReportFilters) ([]domain.Booking, error)

	// SumPeople totals number_of_people over one site's bookings in the
	// given status.
	SumPeople(ctx context.Context, siteID uuid.UUID, status domain.BookingStatus) (int, error)

	// FirstBookingTime returns the created_at of the chronologically first
	// booking, or nil when no booking exists.
	FirstBookingTime(ctx context.Context) (*time.Time, error)
}
