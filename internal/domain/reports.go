package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportFilters narrows the booking set a payment report aggregates over.
// Date bounds are inclusive on both ends. A nil field means "no filter".
type ReportFilters struct {
	From   *time.Time
	To     *time.Time
	SiteID *uuid.UUID
	Method string
	Year   int
}

// PaymentMethodGroup is one row of a payment-method breakdown, keyed by the
// effective payment method (provider over method, "unspecified" fallback).
type PaymentMethodGroup struct {
	Method             string  `json:"method"`
	Revenue            float64 `json:"revenue"`
	Transactions       int     `json:"transactions"`
	Percentage         float64 `json:"percentage"`
	AverageTransaction float64 `json:"average_transaction"`
}

// PaymentSummary totals a payment-method report.
type PaymentSummary struct {
	TotalRevenue            float64 `json:"total_revenue"`
	TotalTransactions       int     `json:"total_transactions"`
	MethodsCount            int     `json:"methods_count"`
	AverageTransactionValue float64 `json:"average_transaction_value"`
}

// PaymentReport is the composite payment-method breakdown response.
type PaymentReport struct {
	Data    []PaymentMethodGroup `json:"data"`
	Summary PaymentSummary       `json:"summary"`
}

// PaymentMethodDetails describes the transactions of a single effective
// payment method.
type PaymentMethodDetails struct {
	Method             string    `json:"method"`
	TotalRevenue       float64   `json:"total_revenue"`
	TotalTransactions  int       `json:"total_transactions"`
	AverageTransaction float64   `json:"average_transaction"`
	Transactions       []Booking `json:"transactions"`
}

// DistributionRow is one effective payment method's share of a booking set:
// how many transactions it carried and the revenue they brought in.
type DistributionRow struct {
	Method       string  `json:"method"`
	Transactions int     `json:"transactions"`
	Revenue      float64 `json:"revenue"`
}

// DistributionTotal totals a distribution report across all methods.
type DistributionTotal struct {
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// DistributionReport is the payment-method distribution response, optionally
// narrowed to a single site. Rows are ordered by revenue descending.
type DistributionReport struct {
	Distribution []DistributionRow `json:"distribution"`
	Total        DistributionTotal `json:"total"`
}

// MonthlyTrendRow is one (month, method) cell of a yearly payment trend.
type MonthlyTrendRow struct {
	Month        int     `json:"month"`
	Method       string  `json:"method"`
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
}

// TrendMonth is a single month entry inside a per-method trend summary.
type TrendMonth struct {
	Month        int     `json:"month"`
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
}

// TrendMethodSummary aggregates a payment method across a whole year.
type TrendMethodSummary struct {
	Method            string       `json:"method"`
	TotalRevenue      float64      `json:"total_revenue"`
	TotalTransactions int          `json:"total_transactions"`
	Months            []TrendMonth `json:"months"`
}

// TrendReport is the composite yearly payment-trend response.
type TrendReport struct {
	Year          int                  `json:"year"`
	Trends        []MonthlyTrendRow    `json:"trends"`
	MethodSummary []TrendMethodSummary `json:"method_summary"`
	Summary       PaymentSummary       `json:"summary"`
}

// SiteMetrics carries the per-site derived numbers of the advanced
// analytics report.
type SiteMetrics struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	MonthlyRevenue float64   `json:"monthly_revenue"`
	TotalRevenue   float64   `json:"total_revenue"`
	OccupancyRate  float64   `json:"occupancy_rate"`
	TotalBookings  int       `json:"total_bookings"`
	TotalVisitors  int       `json:"total_visitors"`
	AvgRating      float64   `json:"avg_rating"`
	ReviewCount    int       `json:"review_count"`
}

// GlobalMetrics carries the cross-site superlatives of the advanced
// analytics report. Best-site fields are nil when no site exists.
type GlobalMetrics struct {
	TotalVisitors     int     `json:"total_visitors"`
	DaysSinceLaunch   int     `json:"days_since_launch"`
	BestRevenueSite   *string `json:"best_revenue_site"`
	BestOccupancySite *string `json:"best_occupancy_site"`
}

// AnalyticsReport is the advanced analytics response.
type AnalyticsReport struct {
	Sites         []SiteMetrics `json:"sites"`
	GlobalMetrics GlobalMetrics `json:"global_metrics"`
}

// SiteOccupation is the per-site slice of the company-wide occupancy report.
type SiteOccupation struct {
	SiteID         uuid.UUID `json:"site_id"`
	SiteName       string    `json:"site_name"`
	TotalPeople    int       `json:"total_people"`
	MaxCapacity    int       `json:"max_capacity"`
	OccupationRate float64   `json:"occupation_rate"`
}

// PdgDashboard is the company-wide dashboard: entity counts, revenue, the
// global lifetime occupancy rate, and each site's occupancy snapshot.
type PdgDashboard struct {
	UserStats            int              `json:"user_stats"`
	SiteStats            int              `json:"site_stats"`
	BookingStats         int              `json:"booking_stats"`
	RevenueStats         float64          `json:"revenue_stats"`
	ReviewStats          float64          `json:"review_stats"`
	GlobalOccupationRate float64          `json:"global_occupation_rate"`
	TotalPeople          int              `json:"total_people"`
	TotalCapacity        int              `json:"total_capacity"`
	SiteOccupations      []SiteOccupation `json:"site_occupations"`
}

// DashboardStats carries the public dashboard counters.
type DashboardStats struct {
	TotalUsers    int     `json:"total_users"`
	TotalSites    int     `json:"total_sites"`
	TotalBookings int     `json:"total_bookings"`
	TotalReviews  int     `json:"total_reviews"`
	AvgRating     float64 `json:"avg_rating"`
}

// BookingStatusCount is one row of the bookings-by-status grouping, with the
// revenue booked under that status.
type BookingStatusCount struct {
	Status  BookingStatus `db:"status" json:"status"`
	Count   int           `db:"count" json:"count"`
	Revenue float64       `db:"revenue" json:"revenue"`
}

// StatsSummary carries entity counts plus the booking status grouping.
type StatsSummary struct {
	Users            int                  `json:"users"`
	Sites            int                  `json:"sites"`
	Bookings         int                  `json:"bookings"`
	Reviews          int                  `json:"reviews"`
	BookingsByStatus []BookingStatusCount `json:"bookings_by_status"`
}

// RevenueStats aggregates booking revenue platform-wide.
type RevenueStats struct {
	TotalRevenue   float64 `db:"total_revenue" json:"total_revenue"`
	AvgReservation float64 `db:"avg_reservation" json:"avg_reservation"`
	TotalBookings  int     `db:"total_bookings" json:"total_bookings"`
}

// ReviewStats summarizes the approved reviews of one site.
type ReviewStats struct {
	TotalReviews int         `json:"total_reviews"`
	AvgRating    float64     `json:"avg_rating"`
	Distribution map[int]int `json:"distribution"`
}

// SiteOccupancy is the lifetime occupancy snapshot of a single site over
// its completed bookings.
type SiteOccupancy struct {
	SiteID         uuid.UUID `json:"site_id"`
	MaxCapacity    int       `json:"max_capacity"`
	TotalPeople    int       `json:"total_people"`
	OccupationRate float64   `json:"occupation_rate"`
}

// SiteOccupancyRow is the raw persistence row behind occupancy reports:
// a site and the number of people its completed bookings served.
type SiteOccupancyRow struct {
	SiteID      uuid.UUID `db:"site_id"`
	SiteName    string    `db:"site_name"`
	MaxCapacity int       `db:"max_capacity"`
	TotalPeople int       `db:"total_people"`
}
