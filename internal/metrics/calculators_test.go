package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bini/internal/domain"
)

func price(v float64) *float64 { return &v }

func TestAverageRating_Empty(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 0.0, AverageRating([]domain.Review{}))
}

func TestAverageRating_RoundsToOneDecimal(t *testing.T) {
	reviews := []domain.Review{{Rating: 4}, {Rating: 5}, {Rating: 4}}
	// 13/3 = 4.333... -> 4.3
	assert.Equal(t, 4.3, AverageRating(reviews))
}

func TestAverageRating_HalfRoundsAwayFromZero(t *testing.T) {
	// 3+4 = 7/2 = 3.5 exactly at one decimal; 1+2+2+2 = 7/4 = 1.75 -> 1.8
	assert.Equal(t, 3.5, AverageRating([]domain.Review{{Rating: 3}, {Rating: 4}}))
	assert.Equal(t, 1.8, AverageRating([]domain.Review{{Rating: 1}, {Rating: 2}, {Rating: 2}, {Rating: 2}}))
}

func TestAverageRating_WithinBoundsForValidReviews(t *testing.T) {
	for _, reviews := range [][]domain.Review{
		{{Rating: 1}},
		{{Rating: 5}, {Rating: 5}},
		{{Rating: 1}, {Rating: 3}, {Rating: 5}},
	} {
		avg := AverageRating(reviews)
		assert.GreaterOrEqual(t, avg, 1.0)
		assert.LessOrEqual(t, avg, 5.0)
	}
}

func TestAverageRatingValues(t *testing.T) {
	assert.Equal(t, 0.0, AverageRatingValues(nil))
	assert.Equal(t, 4.0, AverageRatingValues([]int{4}))
	assert.Equal(t, 4.5, AverageRatingValues([]int{4, 5}))
}

func TestOccupancyRate_MonthlyDenominator(t *testing.T) {
	// 750 people over 30 days at capacity 100 -> 750/3000 = 25%
	assert.Equal(t, 25.0, OccupancyRate(750, 100, 30))
}

func TestOccupancyRate_ClampedAt100(t *testing.T) {
	assert.Equal(t, 100.0, OccupancyRate(1_000_000, 10, 30))
}

func TestOccupancyRate_ZeroOrNegativeCapacity(t *testing.T) {
	assert.Equal(t, 0.0, OccupancyRate(50, 0, 30))
	assert.Equal(t, 0.0, OccupancyRate(50, -5, 30))
	assert.Equal(t, 0.0, OccupancyRate(50, 100, 0))
}

func TestOccupancyRate_ZeroPeople(t *testing.T) {
	assert.Equal(t, 0.0, OccupancyRate(0, 100, 30))
}

func TestSnapshotOccupancyRate(t *testing.T) {
	// Lifetime variant: capacity alone as denominator.
	assert.Equal(t, 25.0, SnapshotOccupancyRate(25, 100))
	assert.Equal(t, 100.0, SnapshotOccupancyRate(500, 100))
	assert.Equal(t, 0.0, SnapshotOccupancyRate(25, 0))
}

func TestRevenueSum(t *testing.T) {
	assert.Equal(t, 0.0, RevenueSum(nil))
	bookings := []domain.Booking{
		{TotalPrice: price(100)},
		{TotalPrice: nil},
	}
	assert.Equal(t, 100.0, RevenueSum(bookings))
}

func TestPeopleSum(t *testing.T) {
	assert.Equal(t, 0, PeopleSum(nil))
	assert.Equal(t, 7, PeopleSum([]domain.Booking{{NumberOfPeople: 3}, {NumberOfPeople: 4}}))
}

func TestEffectiveMethod_ProviderTakesPrecedence(t *testing.T) {
	b := domain.Booking{PaymentProvider: "mtn", PaymentMethod: "mobile_money"}
	assert.Equal(t, "mtn", EffectiveMethod(b))

	b = domain.Booking{PaymentMethod: "orange"}
	assert.Equal(t, "orange", EffectiveMethod(b))

	assert.Equal(t, UnspecifiedMethod, EffectiveMethod(domain.Booking{}))
}

func TestPaymentMethodBreakdown_ProviderAndMethodNotMerged(t *testing.T) {
	bookings := []domain.Booking{
		{PaymentProvider: "mtn", TotalPrice: price(300)},
		{PaymentMethod: "orange", TotalPrice: price(100)},
	}
	groups := PaymentMethodBreakdown(bookings)
	assert.Len(t, groups, 2)
	assert.Equal(t, "mtn", groups[0].Method)
	assert.Equal(t, "orange", groups[1].Method)
	assert.Equal(t, 75.0, groups[0].Percentage)
	assert.Equal(t, 25.0, groups[1].Percentage)
}

func TestPaymentMethodBreakdown_PercentagesSumTo100(t *testing.T) {
	bookings := []domain.Booking{
		{PaymentProvider: "mtn", TotalPrice: price(333)},
		{PaymentProvider: "orange", TotalPrice: price(333)},
		{PaymentProvider: "wave", TotalPrice: price(334)},
	}
	groups := PaymentMethodBreakdown(bookings)
	sum := 0.0
	for _, g := range groups {
		sum += g.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.1)
}

func TestPaymentMethodBreakdown_ZeroRevenue(t *testing.T) {
	bookings := []domain.Booking{
		{PaymentProvider: "mtn"},
		{PaymentProvider: "orange"},
	}
	for _, g := range PaymentMethodBreakdown(bookings) {
		assert.Equal(t, 0.0, g.Percentage)
		assert.Equal(t, 0.0, g.AverageTransaction)
		assert.Equal(t, 1, g.Transactions)
	}
}

func TestPaymentMethodBreakdown_OrderedByRevenueThenKey(t *testing.T) {
	bookings := []domain.Booking{
		{PaymentProvider: "wave", TotalPrice: price(50)},
		{PaymentProvider: "mtn", TotalPrice: price(50)},
		{PaymentProvider: "orange", TotalPrice: price(200)},
	}
	groups := PaymentMethodBreakdown(bookings)
	assert.Equal(t, []string{"orange", "mtn", "wave"},
		[]string{groups[0].Method, groups[1].Method, groups[2].Method})
}

func TestPaymentMethodBreakdown_AverageTransaction(t *testing.T) {
	bookings := []domain.Booking{
		{PaymentProvider: "mtn", TotalPrice: price(100)},
		{PaymentProvider: "mtn", TotalPrice: price(101)},
	}
	groups := PaymentMethodBreakdown(bookings)
	assert.Len(t, groups, 1)
	// 201/2 = 100.5 rounded to nearest whole value
	assert.Equal(t, 101.0, groups[0].AverageTransaction)
}

func TestMonthlyTrend_FiltersByYearAndGroups(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}
	bookings := []domain.Booking{
		{StartDate: date(2025, time.January, 10), PaymentProvider: "mtn", TotalPrice: price(100)},
		{StartDate: date(2025, time.January, 20), PaymentProvider: "mtn", TotalPrice: price(50)},
		{StartDate: date(2025, time.March, 5), PaymentMethod: "orange", TotalPrice: price(80)},
		{StartDate: date(2024, time.March, 5), PaymentMethod: "orange", TotalPrice: price(999)},
	}

	rows := MonthlyTrend(bookings, 2025)
	assert.Len(t, rows, 2)
	assert.Equal(t, domain.MonthlyTrendRow{Month: 1, Method: "mtn", Revenue: 150, Transactions: 2}, rows[0])
	assert.Equal(t, domain.MonthlyTrendRow{Month: 3, Method: "orange", Revenue: 80, Transactions: 1}, rows[1])
}

func TestMonthlyTrend_DecemberThirtyFirstIncluded(t *testing.T) {
	bookings := []domain.Booking{
		{StartDate: time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC), TotalPrice: price(10)},
		{StartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), TotalPrice: price(10)},
	}
	assert.Len(t, MonthlyTrend(bookings, 2025), 2)
}

func TestMonthlyTrend_RevenueDescWithinMonth(t *testing.T) {
	jan := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	bookings := []domain.Booking{
		{StartDate: jan, PaymentProvider: "orange", TotalPrice: price(40)},
		{StartDate: jan, PaymentProvider: "mtn", TotalPrice: price(90)},
	}
	rows := MonthlyTrend(bookings, 2025)
	assert.Equal(t, "mtn", rows[0].Method)
	assert.Equal(t, "orange", rows[1].Method)
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysSince(now, now))
	assert.Equal(t, 0, DaysSince(now.Add(time.Hour), now))
	assert.Equal(t, 9, DaysSince(now.AddDate(0, 0, -9), now))
	// Partial days truncate down.
	assert.Equal(t, 9, DaysSince(now.AddDate(0, 0, -9).Add(-12*time.Hour), now))
}

func TestRatingDistribution(t *testing.T) {
	reviews := []domain.Review{{Rating: 5}, {Rating: 5}, {Rating: 3}}
	dist := RatingDistribution(reviews)
	assert.Equal(t, 2, dist[5])
	assert.Equal(t, 1, dist[3])
	assert.Equal(t, 0, dist[1])
}
