// Package metrics holds the pure calculators behind every report: occupancy,
// ratings, revenue, and payment-method groupings. Functions here never touch
// the database and never mutate their inputs; empty input always yields a
// well-defined zero result.
package metrics

import (
	"math"
	"sort"
	"time"

	"bini/internal/domain"
)

// UnspecifiedMethod is the grouping key for bookings that carry neither a
// payment provider nor a payment method.
const UnspecifiedMethod = "unspecified"

// DefaultOccupancyPeriodDays is the period length used by monthly occupancy
// when no explicit period is configured.
const DefaultOccupancyPeriodDays = 30

// round1 rounds half away from zero to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AverageRating returns the mean rating of the given reviews, rounded to one
// decimal place. An empty set yields 0.
func AverageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return round1(float64(sum) / float64(len(reviews)))
}

// AverageRatingValues is AverageRating over bare rating values, for callers
// that fetched ratings without full review records.
func AverageRatingValues(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return round1(float64(sum) / float64(len(ratings)))
}

// OccupancyRate returns the percentage of capacity used over a period:
// people served against maxCapacity × periodDays, clamped to [0,100].
// A non-positive denominator yields 0.
func OccupancyRate(totalPeople, maxCapacity, periodDays int) float64 {
	denominator := maxCapacity * periodDays
	if denominator <= 0 || totalPeople <= 0 {
		return 0
	}
	rate := float64(totalPeople) / float64(denominator) * 100
	if rate > 100 {
		return 100
	}
	return round2(rate)
}

// SnapshotOccupancyRate is the lifetime occupancy variant: people served
// against maxCapacity alone, with no period denominator. Clamped to [0,100];
// non-positive capacity yields 0.
func SnapshotOccupancyRate(totalPeople, maxCapacity int) float64 {
	return OccupancyRate(totalPeople, maxCapacity, 1)
}

// RevenueSum sums TotalPrice over the bookings. A nil price contributes 0.
func RevenueSum(bookings []domain.Booking) float64 {
	total := 0.0
	for _, b := range bookings {
		if b.TotalPrice != nil {
			total += *b.TotalPrice
		}
	}
	return total
}

// PeopleSum sums NumberOfPeople over the bookings.
func PeopleSum(bookings []domain.Booking) int {
	total := 0
	for _, b := range bookings {
		total += b.NumberOfPeople
	}
	return total
}

// EffectiveMethod resolves the grouping key of a booking's payment:
// provider takes precedence over method, and both empty fall back to
// UnspecifiedMethod.
func EffectiveMethod(b domain.Booking) string {
	if b.PaymentProvider != "" {
		return b.PaymentProvider
	}
	if b.PaymentMethod != "" {
		return b.PaymentMethod
	}
	return UnspecifiedMethod
}

// PaymentMethodBreakdown groups bookings by effective payment method and
// computes each group's revenue, transaction count, share of total revenue,
// and average transaction value. Groups are ordered by descending revenue,
// ties broken by key.
func PaymentMethodBreakdown(bookings []domain.Booking) []domain.PaymentMethodGroup {
	byMethod := make(map[string]*domain.PaymentMethodGroup)
	for _, b := range bookings {
		method := EffectiveMethod(b)
		group, ok := byMethod[method]
		if !ok {
			group = &domain.PaymentMethodGroup{Method: method}
			byMethod[method] = group
		}
		if b.TotalPrice != nil {
			group.Revenue += *b.TotalPrice
		}
		group.Transactions++
	}

	totalRevenue := 0.0
	for _, g := range byMethod {
		totalRevenue += g.Revenue
	}

	groups := make([]domain.PaymentMethodGroup, 0, len(byMethod))
	for _, g := range byMethod {
		if totalRevenue > 0 {
			g.Percentage = round1(g.Revenue / totalRevenue * 100)
		}
		if g.Transactions > 0 {
			g.AverageTransaction = math.Round(g.Revenue / float64(g.Transactions))
		}
		groups = append(groups, *g)
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Revenue != groups[j].Revenue {
			return groups[i].Revenue > groups[j].Revenue
		}
		return groups[i].Method < groups[j].Method
	})
	return groups
}

// MonthlyTrend restricts bookings to those whose StartDate falls within the
// given year and groups them by (month, effective method). Rows are ordered
// by month ascending, then revenue descending, then key.
func MonthlyTrend(bookings []domain.Booking, year int) []domain.MonthlyTrendRow {
	type key struct {
		month  int
		method string
	}
	byKey := make(map[key]*domain.MonthlyTrendRow)
	for _, b := range bookings {
		if b.StartDate.Year() != year {
			continue
		}
		k := key{month: int(b.StartDate.Month()), method: EffectiveMethod(b)}
		row, ok := byKey[k]
		if !ok {
			row = &domain.MonthlyTrendRow{Month: k.month, Method: k.method}
			byKey[k] = row
		}
		if b.TotalPrice != nil {
			row.Revenue += *b.TotalPrice
		}
		row.Transactions++
	}

	rows := make([]domain.MonthlyTrendRow, 0, len(byKey))
	for _, row := range byKey {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month < rows[j].Month
		}
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		return rows[i].Method < rows[j].Method
	})
	return rows
}

// DaysSince returns the number of whole days between from and now.
// Negative spans collapse to 0.
func DaysSince(from, now time.Time) int {
	days := int(now.Sub(from).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// RatingDistribution counts reviews per star value 1 through 5.
func RatingDistribution(reviews []domain.Review) map[int]int {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			dist[r.Rating]++
		}
	}
	return dist
}
