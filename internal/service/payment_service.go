package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"bini/internal/domain"
	"bini/internal/metrics"
	"bini/internal/port"
)

// minTrendYear bounds how far back a yearly trend may reach.
const minTrendYear = 2000

// PaymentService computes payment-method reports over revenue-bearing
// bookings.
type PaymentService interface {
	Breakdown(ctx context.Context, filters domain.ReportFilters) (*domain.PaymentReport, error)
	Details(ctx context.Context, method string, filters domain.ReportFilters) (*domain.PaymentMethodDetails, error)
	Trends(ctx context.Context, year int) (*domain.TrendReport, error)
	Distribution(ctx context.Context, siteID *uuid.UUID) (*domain.DistributionReport, error)
}

type paymentService struct {
	bookingRepo port.BookingRepository
	siteRepo    port.SiteRepository
	now         func() time.Time
}

// NewPaymentService creates a new payment report service.
func NewPaymentService(bookingRepo port.BookingRepository, siteRepo port.SiteRepository) PaymentService {
	return &paymentService{
		bookingRepo: bookingRepo,
		siteRepo:    siteRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// validateFilters rejects an inverted date range and an unknown site before
// any aggregation runs.
func (s *paymentService) validateFilters(ctx context.Context, filters domain.ReportFilters) error {
	if filters.From != nil && filters.To != nil && filters.From.After(*filters.To) {
		return domain.ErrInvalidRange
	}
	if filters.SiteID != nil {
		if _, err := s.siteRepo.GetByID(ctx, *filters.SiteID); err != nil {
			return err
		}
	}
	return nil
}

// Breakdown groups revenue-bearing bookings by effective payment method.
// An empty booking set yields empty groups and zeroed totals, never an error.
func (s *paymentService) Breakdown(ctx context.Context, filters domain.ReportFilters) (*domain.PaymentReport, error) {
	if err := s.validateFilters(ctx, filters); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListForReport(ctx, domain.RevenueStatuses, filters)
	if err != nil {
		return nil, fmt.Errorf("paymentService.Breakdown: %w", err)
	}

	groups := metrics.PaymentMethodBreakdown(bookings)
	return &domain.PaymentReport{
		Data:    groups,
		Summary: buildPaymentSummary(bookings, len(groups)),
	}, nil
}

// Details returns the transactions and totals of a single effective payment
// method. Passing "all" lifts the method filter.
func (s *paymentService) Details(ctx context.Context, method string, filters domain.ReportFilters) (*domain.PaymentMethodDetails, error) {
	if method != "" && method != "all" {
		filters.Method = method
	}
	if err := s.validateFilters(ctx, filters); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListForReport(ctx, domain.RevenueStatuses, filters)
	if err != nil {
		return nil, fmt.Errorf("paymentService.Details: %w", err)
	}

	totalRevenue := metrics.RevenueSum(bookings)
	details := &domain.PaymentMethodDetails{
		Method:            method,
		TotalRevenue:      totalRevenue,
		TotalTransactions: len(bookings),
		Transactions:      bookings,
	}
	if len(bookings) > 0 {
		details.AverageTransaction = math.Round(totalRevenue / float64(len(bookings)))
	}
	if details.Transactions == nil {
		details.Transactions = []domain.Booking{}
	}
	return details, nil
}

// Trends returns the month-by-method revenue trend of one calendar year.
// Year 0 defaults to the current year; anything outside [2000, next year]
// is rejected.
func (s *paymentService) Trends(ctx context.Context, year int) (*domain.TrendReport, error) {
	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if year < minTrendYear || year > now.Year()+1 {
		return nil, domain.ErrInvalidYear
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 999999999, time.UTC)
	filters := domain.ReportFilters{From: &from, To: &to, Year: year}

	bookings, err := s.bookingRepo.ListForReport(ctx, domain.RevenueStatuses, filters)
	if err != nil {
		return nil, fmt.Errorf("paymentService.Trends: %w", err)
	}

	rows := metrics.MonthlyTrend(bookings, year)
	return &domain.TrendReport{
		Year:          year,
		Trends:        rows,
		MethodSummary: buildMethodSummary(rows),
		Summary:       buildPaymentSummary(bookings, countMethods(rows)),
	}, nil
}

// Distribution returns each effective payment method's transaction count and
// revenue, ordered by revenue descending, plus overall totals. A non-nil
// siteID narrows the report to that site's bookings.
func (s *paymentService) Distribution(ctx context.Context, siteID *uuid.UUID) (*domain.DistributionReport, error) {
	filters := domain.ReportFilters{SiteID: siteID}
	if err := s.validateFilters(ctx, filters); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListForReport(ctx, domain.RevenueStatuses, filters)
	if err != nil {
		return nil, fmt.Errorf("paymentService.Distribution: %w", err)
	}

	groups := metrics.PaymentMethodBreakdown(bookings)
	rows := make([]domain.DistributionRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, domain.DistributionRow{
			Method:       g.Method,
			Transactions: g.Transactions,
			Revenue:      g.Revenue,
		})
	}
	return &domain.DistributionReport{
		Distribution: rows,
		Total: domain.DistributionTotal{
			Bookings: len(bookings),
			Revenue:  metrics.RevenueSum(bookings),
		},
	}, nil
}

// buildPaymentSummary totals a booking set into report summary figures.
func buildPaymentSummary(bookings []domain.Booking, methodsCount int) domain.PaymentSummary {
	summary := domain.PaymentSummary{
		TotalRevenue:      metrics.RevenueSum(bookings),
		TotalTransactions: len(bookings),
		MethodsCount:      methodsCount,
	}
	if summary.TotalTransactions > 0 {
		summary.AverageTransactionValue = math.Round(summary.TotalRevenue / float64(summary.TotalTransactions))
	}
	return summary
}

// buildMethodSummary regroups trend rows per method, preserving month order
// within each method. Methods are ordered by total revenue descending.
func buildMethodSummary(rows []domain.MonthlyTrendRow) []domain.TrendMethodSummary {
	byMethod := make(map[string]*domain.TrendMethodSummary)
	var order []string
	for _, row := range rows {
		summary, ok := byMethod[row.Method]
		if !ok {
			summary = &domain.TrendMethodSummary{Method: row.Method}
			byMethod[row.Method] = summary
			order = append(order, row.Method)
		}
		summary.TotalRevenue += row.Revenue
		summary.TotalTransactions += row.Transactions
		summary.Months = append(summary.Months, domain.TrendMonth{
			Month:        row.Month,
			Revenue:      row.Revenue,
			Transactions: row.Transactions,
		})
	}

	summaries := make([]domain.TrendMethodSummary, 0, len(order))
	for _, method := range order {
		summaries = append(summaries, *byMethod[method])
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalRevenue != summaries[j].TotalRevenue {
			return summaries[i].TotalRevenue > summaries[j].TotalRevenue
		}
		return summaries[i].Method < summaries[j].Method
	})
	return summaries
}

// countMethods counts distinct effective methods across trend rows.
func countMethods(rows []domain.MonthlyTrendRow) int {
	seen := make(map[string]struct{})
	for _, row := range rows {
		seen[row.Method] = struct{}{}
	}
	return len(seen)
}
