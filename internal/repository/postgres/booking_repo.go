package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"bini/internal/domain"
	"bini/internal/port"
)

type bookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepo creates a new PostgreSQL-backed BookingRepository.
func NewBookingRepo(db *sqlx.DB) port.BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	booking.ID = uuid.New()
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	query := `INSERT INTO bookings (id, reference, site_id, user_id, start_date, number_of_people,
		total_price, status, payment_method, payment_provider, payment_status,
		visitor_name, visitor_email, visitor_phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID, booking.Reference, booking.SiteID, booking.UserID, booking.StartDate,
		booking.NumberOfPeople, booking.TotalPrice, booking.Status, booking.PaymentMethod,
		booking.PaymentProvider, booking.PaymentStatus, booking.VisitorName,
		booking.VisitorEmail, booking.VisitorPhone, booking.Notes,
		booking.CreatedAt, booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("bookingRepo.Create: %w", err)
	}
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.GetContext(ctx, &booking, "SELECT * FROM bookings WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("bookingRepo.GetByID: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepo) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.GetContext(ctx, &booking, "SELECT * FROM bookings WHERE reference = $1", reference)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("bookingRepo.GetByReference: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("bookingRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// statusInClause expands a status list into "status IN ($n, ...)" with
// positional arguments starting at argN.
func statusInClause(statuses []domain.BookingStatus, argN int) (clause string, args []interface{}) {
	placeholders := make([]string, len(statuses))
	for i, s := range statuses {
		placeholders[i] = fmt.Sprintf("$%d", argN+i)
		args = append(args, s)
	}
	return fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ", ")), args
}

func (r *bookingRepo) ListByStatuses(ctx context.Context, statuses []domain.BookingStatus) ([]domain.Booking, error) {
	clause, args := statusInClause(statuses, 1)
	query := fmt.Sprintf("SELECT * FROM bookings WHERE %s ORDER BY created_at ASC", clause)

	var bookings []domain.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("bookingRepo.ListByStatuses: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepo) ListForReport(ctx context.Context, statuses []domain.BookingStatus, filters domain.ReportFilters) ([]domain.Booking, error) {
	clause, args := statusInClause(statuses, 1)
	where := "WHERE " + clause
	argN := len(args) + 1

	if filters.From != nil {
		where += fmt.Sprintf(" AND start_date >= $%d", argN)
		args = append(args, *filters.From)
		argN++
	}
	if filters.To != nil {
		where += fmt.Sprintf(" AND start_date <= $%d", argN)
		args = append(args, *filters.To)
		argN++
	}
	if filters.SiteID != nil {
		where += fmt.Sprintf(" AND site_id = $%d", argN)
		args = append(args, *filters.SiteID)
		argN++
	}
	if filters.Method != "" {
		where += fmt.Sprintf(" AND (payment_provider = $%d OR payment_method = $%d)", argN, argN)
		args = append(args, filters.Method)
		argN++ //nolint:ineffassign // argN kept incremented for consistency
	}

	query := fmt.Sprintf("SELECT * FROM bookings %s ORDER BY start_date DESC", where)

	var bookings []domain.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("bookingRepo.ListForReport: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepo) SumPeople(ctx context.Context, siteID uuid.UUID, status domain.BookingStatus) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COALESCE(SUM(number_of_people), 0) FROM bookings WHERE site_id = $1 AND status = $2",
		siteID, status)
	if err != nil {
		return 0, fmt.Errorf("bookingRepo.SumPeople: %w", err)
	}
	return total, nil
}

func (r *bookingRepo) FirstBookingTime(ctx context.Context) (*time.Time, error) {
	var first time.Time
	err := r.db.GetContext(ctx, &first,
		"SELECT created_at FROM bookings ORDER BY created_at ASC LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("bookingRepo.FirstBookingTime: %w", err)
	}
	return &first, nil
}
