package usecases

import (
	"math"

	"pay-chain.backend/internal/domain/entities"
)

// Factor weights for the composite trust score. They must sum to 1.
const (
	weightConsistency = 0.4
	weightVolume      = 0.3
	weightGrowth      = 0.2
	weightTenure      = 0.1
)

// TrustScoreEngine computes the weighted multi-factor trust score (0-100)
// from sales metrics. Pure and deterministic.
type TrustScoreEngine struct {
	metrics *SalesMetricsCalculator
}

// NewTrustScoreEngine creates a new trust score engine
func NewTrustScoreEngine(metrics *SalesMetricsCalculator) *TrustScoreEngine {
	return &TrustScoreEngine{metrics: metrics}
}

// Compute derives the trust score from sales metrics. Returns nil for the
// no-data sentinel; callers treat that as score 0.
//
// The weighted combination uses unrounded factor values; only the final total
// and the displayed per-factor values are rounded.
func (e *TrustScoreEngine) Compute(m *entities.SalesMetrics) *entities.TrustScore {
	if m == nil {
		return nil
	}

	consistency := e.consistencyFactor(m)
	volume := e.volumeFactor(m)
	growth := e.growthFactor(m)
	tenure := e.tenureFactor(m)

	total := consistency*weightConsistency +
		volume*weightVolume +
		growth*weightGrowth +
		tenure*weightTenure

	return &entities.TrustScore{
		TotalScore: int(math.Round(clamp(total, 0, 100))),
		Factors: entities.FactorScores{
			Consistency: int(math.Round(consistency)),
			Volume:      int(math.Round(volume)),
			Growth:      int(math.Round(growth)),
			Tenure:      int(math.Round(tenure)),
		},
		Details: entities.ScoreDetails{
			AverageDailySales:  m.AverageDailySales,
			FlowConsistencyPct: int(math.Round(m.WeeklyConsistency * 100)),
			GrowthTrendPct:     int(math.Round(m.GrowthTrend * 100)),
			TenureMonths:       m.TenureMonths,
		},
	}
}

// Simulate applies hypothetical improvements to a copied record sequence and
// re-scores it. The original records are never mutated.
func (e *TrustScoreEngine) Simulate(records []entities.DailySalesRecord, improvements entities.ScoreImprovements) *entities.TrustScore {
	if len(records) == 0 {
		return nil
	}

	adjusted := make([]entities.DailySalesRecord, len(records))
	copy(adjusted, records)

	if improvements.SalesIncrease > 0 {
		for i := range adjusted {
			adjusted[i].GrossAmount *= 1 + improvements.SalesIncrease
		}
	}

	if improvements.ConsistencyBoost > 0 {
		// Pull every day toward the mean to shrink variability.
		var total float64
		for _, rec := range adjusted {
			total += rec.GrossAmount
		}
		mean := total / float64(len(adjusted))
		for i := range adjusted {
			diff := adjusted[i].GrossAmount - mean
			adjusted[i].GrossAmount = mean + diff*(1-improvements.ConsistencyBoost)
		}
	}

	return e.Compute(e.metrics.Calculate(adjusted))
}

// consistencyFactor scores how regular weekly sales are, penalized when less
// than half of the tenure days saw any sales.
func (e *TrustScoreEngine) consistencyFactor(m *entities.SalesMetrics) float64 {
	base := m.WeeklyConsistency * 100

	tenureDays := m.TenureMonths * 30
	if tenureDays == 0 {
		// Under a month of history there is no activity window to penalize.
		return math.Max(0, base)
	}

	activityRatio := float64(m.ActiveDaysCount) / float64(tenureDays)
	if activityRatio < 0.5 {
		base -= (0.5 - activityRatio) * 100
	}
	return math.Max(0, base)
}

// volumeFactor maps average daily sales onto a step scale, interpolating
// linearly below the lowest breakpoint.
func (e *TrustScoreEngine) volumeFactor(m *entities.SalesMetrics) float64 {
	daily := m.AverageDailySales
	switch {
	case daily >= 5000:
		return 100
	case daily >= 3000:
		return 85
	case daily >= 2000:
		return 70
	case daily >= 1000:
		return 55
	case daily >= 500:
		return 40
	}
	return math.Max(0, daily/500*40)
}

// growthFactor maps the growth trend onto a step scale, extrapolating
// linearly for declines below -10%.
func (e *TrustScoreEngine) growthFactor(m *entities.SalesMetrics) float64 {
	trend := m.GrowthTrend
	switch {
	case trend >= 0.20:
		return 100
	case trend >= 0.10:
		return 85
	case trend >= 0.05:
		return 70
	case trend >= 0:
		return 55
	case trend >= -0.05:
		return 40
	case trend >= -0.10:
		return 25
	}
	return clamp(25+(trend+0.10)*250, 0, 100)
}

// tenureFactor rewards longer histories, scaling linearly under the 3-month minimum
func (e *TrustScoreEngine) tenureFactor(m *entities.SalesMetrics) float64 {
	months := m.TenureMonths
	switch {
	case months >= 24:
		return 100
	case months >= 12:
		return 85
	case months >= 6:
		return 70
	case months >= 3:
		return 50
	}
	return math.Max(0, float64(months)/3*50)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
