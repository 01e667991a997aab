package entities

// FactorScores holds the four trust score factor values (each 0-100).
// The factor set is closed, so a fixed-shape struct instead of a map.
type FactorScores struct {
	Consistency int `json:"consistency"`
	Volume      int `json:"volume"`
	Growth      int `json:"growth"`
	Tenure      int `json:"tenure"`
}

// ScoreDetails is a snapshot of the metric values a trust score was derived from
type ScoreDetails struct {
	AverageDailySales  float64 `json:"averageDailySales"`
	FlowConsistencyPct int     `json:"flowConsistencyPct"`
	GrowthTrendPct     int     `json:"growthTrendPct"`
	TenureMonths       int     `json:"tenureMonths"`
}

// TrustScore is the 0-100 composite creditworthiness score.
// Always replaced wholesale, never mutated in place.
type TrustScore struct {
	TotalScore int          `json:"totalScore"`
	Factors    FactorScores `json:"factors"`
	Details    ScoreDetails `json:"details"`
}

// EligibilityResult is the outcome of the minimum-requirements gate
type EligibilityResult struct {
	IsEligible bool   `json:"isEligible"`
	Reason     string `json:"reason"`
}

// RiskLevel names one of the five ordered risk bands
type RiskLevel string

const (
	RiskVeryLow  RiskLevel = "very_low"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

// RiskCategory summarizes a trust score as a named band for display
type RiskCategory struct {
	Level       RiskLevel `json:"level"`
	Label       string    `json:"label"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
}

// ImpactLevel grades how much a recommendation can move the score
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// Recommendation is an advisory suggestion for improving a trust score.
// It has no effect on eligibility or the loan limit.
type Recommendation struct {
	Category    string      `json:"category"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Impact      ImpactLevel `json:"impact"`
}

// CreditAnalysis bundles every value derived from a profile's metrics.
// Pure function of the metrics; recomputed whenever they change.
type CreditAnalysis struct {
	TrustScore      *TrustScore      `json:"trustScore"`
	MaxLoanLimit    float64          `json:"maxLoanLimit"`
	Recommendations []Recommendation `json:"recommendations"`
	RiskCategory    RiskCategory     `json:"riskCategory"`
}

// ScoreImprovements describes a hypothetical what-if adjustment for score simulation
type ScoreImprovements struct {
	SalesIncrease    float64 `json:"salesIncrease" binding:"gte=0,lte=5"`
	ConsistencyBoost float64 `json:"consistencyBoost" binding:"gte=0,lte=1"`
}
