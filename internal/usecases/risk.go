package usecases

import "pay-chain.backend/internal/domain/entities"

// CategorizeRisk maps a total trust score to one of five ordered risk bands.
// Pure lookup, no state.
func CategorizeRisk(totalScore int) entities.RiskCategory {
	switch {
	case totalScore >= 85:
		return entities.RiskCategory{
			Level:       entities.RiskVeryLow,
			Label:       "Very Low",
			Color:       "#22c55e",
			Description: "Excellent credit history",
		}
	case totalScore >= 70:
		return entities.RiskCategory{
			Level:       entities.RiskLow,
			Label:       "Low",
			Color:       "#84cc16",
			Description: "Good credit history",
		}
	case totalScore >= 55:
		return entities.RiskCategory{
			Level:       entities.RiskMedium,
			Label:       "Medium",
			Color:       "#eab308",
			Description: "Acceptable credit history",
		}
	case totalScore >= 40:
		return entities.RiskCategory{
			Level:       entities.RiskHigh,
			Label:       "High",
			Color:       "#f97316",
			Description: "Credit history with risks",
		}
	}
	return entities.RiskCategory{
		Level:       entities.RiskVeryHigh,
		Label:       "Very High",
		Color:       "#ef4444",
		Description: "Risky credit history",
	}
}
