package usecases

import (
	"math"

	"pay-chain.backend/internal/domain/entities"
)

// Absolute safety bounds on any offered loan, in whole USD.
const (
	MinLoanLimit = 100
	MaxLoanLimit = 5000
)

// LoanLimitCalculator maps a trust score and sales metrics to a bounded
// maximum loan amount.
type LoanLimitCalculator struct{}

// NewLoanLimitCalculator creates a new loan limit calculator
func NewLoanLimitCalculator() *LoanLimitCalculator {
	return &LoanLimitCalculator{}
}

// Calculate returns the maximum loan amount for a score/metrics pair.
// Returns 0 when either input is absent.
func (c *LoanLimitCalculator) Calculate(score *entities.TrustScore, m *entities.SalesMetrics) float64 {
	if score == nil || m == nil {
		return 0
	}
	return c.CalculateFromTotal(score.TotalScore, m)
}

// CalculateFromTotal is Calculate for callers holding only the raw total score
func (c *LoanLimitCalculator) CalculateFromTotal(totalScore int, m *entities.SalesMetrics) float64 {
	if m == nil {
		return 0
	}

	monthlySales := m.AverageDailySales * 30
	rawLimit := monthlySales * loanFactor(totalScore)

	return math.Round(clamp(rawLimit, MinLoanLimit, MaxLoanLimit))
}

// loanFactor is the share of monthly sales a merchant may borrow,
// non-decreasing in the trust score.
func loanFactor(score int) float64 {
	switch {
	case score >= 90:
		return 0.40
	case score >= 80:
		return 0.30
	case score >= 70:
		return 0.25
	case score >= 60:
		return 0.20
	case score >= 50:
		return 0.15
	}
	return 0.10
}
