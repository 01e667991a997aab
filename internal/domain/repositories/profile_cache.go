package repositories

import (
	"context"
	"time"

	"pay-chain.backend/internal/domain/entities"
)

// ProfileCache stores assembled merchant profiles keyed by (wallet, platform).
// Only the profile itself is cached: derived values (score, limit, risk,
// recommendations) are always recomputed from the metrics, never cached.
// Invalidation is explicit, on refresh and platform-change triggers.
type ProfileCache interface {
	Get(ctx context.Context, walletAddress string, platform entities.Platform) (*entities.MerchantProfile, error)
	Set(ctx context.Context, profile *entities.MerchantProfile, ttl time.Duration) error
	Delete(ctx context.Context, walletAddress string, platform entities.Platform) error
}
