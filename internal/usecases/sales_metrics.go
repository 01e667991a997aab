package usecases

import (
	"math"
	"time"

	"pay-chain.backend/internal/domain/entities"
)

// minRecordsForTrend is the minimum history length (days) before a growth
// trend carries any signal. Below it the trend is reported as 0.
const minRecordsForTrend = 60

// SalesMetricsCalculator reduces a daily sales series into aggregate statistics.
// Pure and deterministic: no side effects, same input always yields the same output.
type SalesMetricsCalculator struct{}

// NewSalesMetricsCalculator creates a new sales metrics calculator
func NewSalesMetricsCalculator() *SalesMetricsCalculator {
	return &SalesMetricsCalculator{}
}

// Calculate derives aggregate metrics from an ordered daily sales series.
// Returns nil when the series is empty (the no-data sentinel).
func (c *SalesMetricsCalculator) Calculate(records []entities.DailySalesRecord) *entities.SalesMetrics {
	if len(records) == 0 {
		return nil
	}

	var totalSales float64
	var totalTransactions, activeDays int
	for _, rec := range records {
		totalSales += rec.GrossAmount
		totalTransactions += rec.TransactionCount
		if rec.GrossAmount > 0 {
			activeDays++
		}
	}

	averageTicket := 0.0
	if totalTransactions > 0 {
		averageTicket = math.Round(totalSales / float64(totalTransactions))
	}

	return &entities.SalesMetrics{
		TotalSales:        math.Round(totalSales),
		AverageDailySales: math.Round(totalSales / float64(len(records))),
		TotalTransactions: totalTransactions,
		ActiveDaysCount:   activeDays,
		WeeklyConsistency: weeklyConsistency(records),
		AverageTicketSize: averageTicket,
		GrowthTrend:       growthTrend(records),
		TenureMonths:      len(records) / 30,
	}
}

// weeklyConsistency measures week-over-week stability as
// max(0, 1 - stddev/mean) over calendar-week sums. 1 means perfectly uniform.
func weeklyConsistency(records []entities.DailySalesRecord) float64 {
	weekSums := groupByWeek(records)
	if len(weekSums) == 0 {
		return 0
	}

	var total float64
	for _, sum := range weekSums {
		total += sum
	}
	mean := total / float64(len(weekSums))
	if mean == 0 {
		return 0
	}

	var variance float64
	for _, sum := range weekSums {
		variance += (sum - mean) * (sum - mean)
	}
	stddev := math.Sqrt(variance / float64(len(weekSums)))

	return math.Max(0, 1-stddev/mean)
}

// groupByWeek sums gross amounts per calendar week. Weeks start on the most
// recent Sunday on or before each record's date (fixed Sunday-start policy).
func groupByWeek(records []entities.DailySalesRecord) []float64 {
	weeks := make(map[time.Time]float64)
	var order []time.Time

	for _, rec := range records {
		start := weekStart(rec.Date)
		if _, seen := weeks[start]; !seen {
			order = append(order, start)
		}
		weeks[start] += rec.GrossAmount
	}

	sums := make([]float64, 0, len(order))
	for _, start := range order {
		sums = append(sums, weeks[start])
	}
	return sums
}

func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// growthTrend compares the second-half average against the first-half average
// as a signed ratio. Requires at least minRecordsForTrend days of history.
func growthTrend(records []entities.DailySalesRecord) float64 {
	if len(records) < minRecordsForTrend {
		return 0
	}

	half := len(records) / 2
	firstMean := meanAmount(records[:half])
	secondMean := meanAmount(records[half:])

	if firstMean == 0 {
		return 0
	}
	return (secondMean - firstMean) / firstMean
}

func meanAmount(records []entities.DailySalesRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var total float64
	for _, rec := range records {
		total += rec.GrossAmount
	}
	return total / float64(len(records))
}
