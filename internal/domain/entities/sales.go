package entities

import "time"

// Platform identifies a supported payment platform
type Platform string

const (
	PlatformMercadoPago Platform = "mercadopago"
	PlatformUala        Platform = "uala"
	PlatformGetnet      Platform = "getnet"
	PlatformModo        Platform = "modo"
)

// SupportedPlatforms lists all payment platforms the scoring engine knows about
func SupportedPlatforms() []Platform {
	return []Platform{PlatformMercadoPago, PlatformUala, PlatformGetnet, PlatformModo}
}

// IsValid reports whether the platform is a known payment platform
func (p Platform) IsValid() bool {
	switch p {
	case PlatformMercadoPago, PlatformUala, PlatformGetnet, PlatformModo:
		return true
	}
	return false
}

// DailySalesRecord represents one calendar day of sales on a payment platform.
// Records are immutable once produced and ordered chronologically ascending.
type DailySalesRecord struct {
	Date             time.Time `json:"date"`
	GrossAmount      float64   `json:"grossAmount"`
	TransactionCount int       `json:"transactionCount"`
	Platform         Platform  `json:"platform"`
	AverageTicket    float64   `json:"averageTicket"`
}

// SalesMetrics holds aggregate statistics derived from a daily sales series.
// Recomputed on every profile refresh, never persisted.
type SalesMetrics struct {
	TotalSales        float64 `json:"totalSales"`
	AverageDailySales float64 `json:"averageDailySales"`
	TotalTransactions int     `json:"totalTransactions"`
	ActiveDaysCount   int     `json:"activeDaysCount"`
	WeeklyConsistency float64 `json:"weeklyConsistency"`
	AverageTicketSize float64 `json:"averageTicketSize"`
	GrowthTrend       float64 `json:"growthTrend"`
	TenureMonths      int     `json:"tenureMonths"`
}
