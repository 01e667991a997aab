package usecases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pay-chain.backend/internal/domain/entities"
	"pay-chain.backend/internal/usecases"
)

func TestEligibilityValidator_NoMetrics(t *testing.T) {
	v := usecases.NewEligibilityValidator()
	result := v.Validate(nil)

	assert.False(t, result.IsEligible)
	assert.Equal(t, "no sales data available", result.Reason)
}

func TestEligibilityValidator_InsufficientTenure(t *testing.T) {
	v := usecases.NewEligibilityValidator()
	result := v.Validate(&entities.SalesMetrics{
		TenureMonths:      2,
		ActiveDaysCount:   60,
		AverageDailySales: 2000,
	})

	assert.False(t, result.IsEligible)
	assert.Equal(t, "insufficient history: 2 months (minimum 3 months required)", result.Reason)
}

func TestEligibilityValidator_InsufficientActivity(t *testing.T) {
	v := usecases.NewEligibilityValidator()
	// 3 months require 45 active days.
	result := v.Validate(&entities.SalesMetrics{
		TenureMonths:      3,
		ActiveDaysCount:   44,
		AverageDailySales: 2000,
	})

	assert.False(t, result.IsEligible)
	assert.Contains(t, result.Reason, "insufficient commercial activity")
}

func TestEligibilityValidator_LowVolume(t *testing.T) {
	v := usecases.NewEligibilityValidator()
	result := v.Validate(&entities.SalesMetrics{
		TenureMonths:      6,
		ActiveDaysCount:   180,
		AverageDailySales: 499,
	})

	assert.False(t, result.IsEligible)
	assert.Contains(t, result.Reason, "sales volume too low")
}

func TestEligibilityValidator_RuleOrderFirstFailureWins(t *testing.T) {
	v := usecases.NewEligibilityValidator()
	// Everything fails at once; the tenure rule reports first.
	result := v.Validate(&entities.SalesMetrics{
		TenureMonths:      1,
		ActiveDaysCount:   0,
		AverageDailySales: 0,
	})
	assert.Contains(t, result.Reason, "insufficient history")

	// Tenure passes, activity and volume both fail; activity reports first.
	result = v.Validate(&entities.SalesMetrics{
		TenureMonths:      3,
		ActiveDaysCount:   0,
		AverageDailySales: 0,
	})
	assert.Contains(t, result.Reason, "insufficient commercial activity")
}

func TestEligibilityValidator_ExactBoundariesPass(t *testing.T) {
	v := usecases.NewEligibilityValidator()
	result := v.Validate(&entities.SalesMetrics{
		TenureMonths:      3,
		ActiveDaysCount:   45,
		AverageDailySales: 500,
	})

	assert.True(t, result.IsEligible)
	assert.Equal(t, "meets all minimum requirements", result.Reason)
}

func TestEligibilityValidator_Deterministic(t *testing.T) {
	v := usecases.NewEligibilityValidator()
	m := &entities.SalesMetrics{TenureMonths: 4, ActiveDaysCount: 100, AverageDailySales: 800}

	first := v.Validate(m)
	second := v.Validate(m)
	assert.Equal(t, first, second)
	assert.True(t, first.IsEligible)
}
