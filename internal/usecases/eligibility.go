package usecases

import (
	"fmt"

	"pay-chain.backend/internal/domain/entities"
)

// Minimum requirements for loan eligibility
const (
	// MinTenureMonths is the shortest sales history that qualifies.
	MinTenureMonths = 3
	// MinActiveDaysPerMonth is the required count of days with sales per tenure month.
	MinActiveDaysPerMonth = 15
	// MinAverageDailySales is the lowest average daily volume that qualifies.
	MinAverageDailySales = 500
)

// EligibilityValidator applies the minimum-requirement policy checks against
// computed sales metrics. This gate is authoritative: the loan-request flow
// refuses submission whenever it fails, regardless of requested amount.
type EligibilityValidator struct{}

// NewEligibilityValidator creates a new eligibility validator
func NewEligibilityValidator() *EligibilityValidator {
	return &EligibilityValidator{}
}

// Validate evaluates the policy rules in order; the first failure wins.
// Deterministic: identical metrics always yield an identical result.
func (v *EligibilityValidator) Validate(m *entities.SalesMetrics) entities.EligibilityResult {
	if m == nil {
		return entities.EligibilityResult{
			IsEligible: false,
			Reason:     "no sales data available",
		}
	}

	if m.TenureMonths < MinTenureMonths {
		return entities.EligibilityResult{
			IsEligible: false,
			Reason:     fmt.Sprintf("insufficient history: %d months (minimum %d months required)", m.TenureMonths, MinTenureMonths),
		}
	}

	if m.ActiveDaysCount < m.TenureMonths*MinActiveDaysPerMonth {
		return entities.EligibilityResult{
			IsEligible: false,
			Reason:     "insufficient commercial activity: too few days with sales",
		}
	}

	if m.AverageDailySales < MinAverageDailySales {
		return entities.EligibilityResult{
			IsEligible: false,
			Reason:     "sales volume too low to qualify for microloans",
		}
	}

	return entities.EligibilityResult{
		IsEligible: true,
		Reason:     "meets all minimum requirements",
	}
}
