package usecases

import (
	"pay-chain.backend/internal/domain/entities"
)

// RecommendationEngine generates advisory improvement suggestions from factor
// scores. Purely advisory; no effect on eligibility or the loan limit.
type RecommendationEngine struct{}

// NewRecommendationEngine creates a new recommendation engine
func NewRecommendationEngine() *RecommendationEngine {
	return &RecommendationEngine{}
}

// Generate returns recommendations in a fixed order (consistency, volume,
// growth, tenure, activity frequency) for every trigger that fires.
// The sequence is empty when the merchant already scores well everywhere.
func (e *RecommendationEngine) Generate(score *entities.TrustScore, m *entities.SalesMetrics) []entities.Recommendation {
	if score == nil || m == nil {
		return nil
	}

	var recs []entities.Recommendation

	if score.Factors.Consistency < 70 {
		recs = append(recs, entities.Recommendation{
			Category:    "consistency",
			Title:       "Improve sales consistency",
			Description: "Try to keep sales steadier day to day. Avoid long stretches without activity.",
			Impact:      entities.ImpactHigh,
		})
	}

	if score.Factors.Volume < 60 {
		recs = append(recs, entities.Recommendation{
			Category:    "volume",
			Title:       "Increase sales volume",
			Description: "Grow your average daily sales to improve your borrowing capacity.",
			Impact:      entities.ImpactHigh,
		})
	}

	if score.Factors.Growth < 50 {
		recs = append(recs, entities.Recommendation{
			Category:    "growth",
			Title:       "Drive business growth",
			Description: "Look for strategies to grow your business month over month.",
			Impact:      entities.ImpactMedium,
		})
	}

	if score.Factors.Tenure < 70 {
		recs = append(recs, entities.Recommendation{
			Category:    "tenure",
			Title:       "Keep your history active",
			Description: "Keep operating to build a longer, more solid track record.",
			Impact:      entities.ImpactLow,
		})
	}

	if m.TenureMonths > 0 && m.TotalTransactions/m.TenureMonths < 100 {
		recs = append(recs, entities.Recommendation{
			Category:    "activity",
			Title:       "Increase transaction frequency",
			Description: "More regular transactions demonstrate a more active business.",
			Impact:      entities.ImpactMedium,
		})
	}

	return recs
}
