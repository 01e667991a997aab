package repositories

import (
	"context"

	"pay-chain.backend/internal/domain/entities"
)

// SalesDataSource provides historical daily sales for a wallet identity.
// The scoring engine is agnostic to the concrete source: the repository ships
// a synthetic generator, production would plug a payment-platform feed.
//
// Contract: records are contiguous by calendar day, chronologically ascending,
// with non-negative amounts and a platform tag on each record, covering a
// tenure window of 3-12 months. An empty platform lets the source choose one;
// the chosen platform is returned alongside the records.
type SalesDataSource interface {
	FetchSalesHistory(ctx context.Context, walletAddress string, platform entities.Platform) ([]entities.DailySalesRecord, entities.Platform, error)
}
