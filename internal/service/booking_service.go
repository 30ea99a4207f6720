package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"bini/internal/domain"
	"bini/internal/port"
)

// CreateBookingInput carries the fields a caller supplies to create a
// booking. Zero-value optional fields are filled by the service.
type CreateBookingInput struct {
	SiteID          uuid.UUID
	UserID          *uuid.UUID
	StartDate       time.Time
	NumberOfPeople  int
	TotalPrice      *float64
	PaymentMethod   string
	PaymentProvider string
	PaymentStatus   string
	VisitorName     string
	VisitorEmail    string
	VisitorPhone    string
	Notes           string
}

// BookingService manages the booking lifecycle.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	Confirm(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

type bookingService struct {
	bookingRepo port.BookingRepository
	siteRepo    port.SiteRepository
	now         func() time.Time
}

// NewBookingService creates a new booking service.
func NewBookingService(bookingRepo port.BookingRepository, siteRepo port.SiteRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		siteRepo:    siteRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create validates the party size against the site's capacity, prices the
// booking from the site's unit price when the caller did not, and stores it
// as pending.
func (s *bookingService) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.NumberOfPeople <= 0 {
		return nil, domain.ErrInvalidPeopleCount
	}

	site, err := s.siteRepo.GetByID(ctx, input.SiteID)
	if err != nil {
		return nil, err
	}
	if input.NumberOfPeople > site.MaxCapacity {
		return nil, domain.ErrCapacityExceeded
	}

	price := input.TotalPrice
	if price == nil {
		computed := site.Price * float64(input.NumberOfPeople)
		price = &computed
	}

	booking := &domain.Booking{
		Reference:       s.newReference(),
		SiteID:          input.SiteID,
		UserID:          input.UserID,
		StartDate:       input.StartDate,
		NumberOfPeople:  input.NumberOfPeople,
		TotalPrice:      price,
		Status:          domain.BookingStatusPending,
		PaymentMethod:   input.PaymentMethod,
		PaymentProvider: input.PaymentProvider,
		PaymentStatus:   input.PaymentStatus,
		VisitorName:     input.VisitorName,
		VisitorEmail:    input.VisitorEmail,
		VisitorPhone:    input.VisitorPhone,
		Notes:           input.Notes,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("bookingService.Create: %w", err)
	}
	return booking, nil
}

// newReference builds a visitor-facing booking reference from the current
// millisecond timestamp in base36.
func (s *bookingService) newReference() string {
	return "BINI-" + strings.ToUpper(strconv.FormatInt(s.now().UnixMilli(), 36))
}

func (s *bookingService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookingRepo.GetByReference(ctx, reference)
}

// Confirm moves a pending booking to confirmed.
func (s *bookingService) Confirm(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingStatusConfirmed)
}

// Complete moves a confirmed booking to completed.
func (s *bookingService) Complete(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingStatusCompleted)
}

// Cancel moves a pending or confirmed booking to cancelled.
func (s *bookingService) Cancel(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingStatusCancelled)
}

func (s *bookingService) transition(ctx context.Context, id uuid.UUID, next domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidStatusTransition
	}
	if err := s.bookingRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, fmt.Errorf("bookingService.transition: %w", err)
	}
	booking.Status = next
	return booking, nil
}
