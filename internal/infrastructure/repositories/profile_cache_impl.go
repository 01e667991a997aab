package repositories

import (
	"context"
	"encoding/json"
	"time"

	"pay-chain.backend/internal/domain/entities"
	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/pkg/redis"
)

// Indirections over the package-level redis helpers, swappable in tests.
var (
	setCacheValue = redis.Set
	getCacheValue = redis.Get
	delCacheValue = redis.Del
)

// ProfileCacheImpl stores assembled merchant profiles in Redis, JSON-encoded,
// keyed by (wallet, platform) with a TTL. Derived credit values are never
// stored here; callers recompute them from the cached metrics.
type ProfileCacheImpl struct{}

// NewProfileCache creates a new redis-backed profile cache
func NewProfileCache() *ProfileCacheImpl {
	return &ProfileCacheImpl{}
}

// Get returns the cached profile or ErrNotFound on a miss
func (c *ProfileCacheImpl) Get(ctx context.Context, walletAddress string, platform entities.Platform) (*entities.MerchantProfile, error) {
	raw, err := getCacheValue(ctx, cacheKey(walletAddress, platform))
	if err != nil {
		if redis.IsNil(err) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	var profile entities.MerchantProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Set stores a profile under its wallet/platform key
func (c *ProfileCacheImpl) Set(ctx context.Context, profile *entities.MerchantProfile, ttl time.Duration) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return setCacheValue(ctx, cacheKey(profile.WalletAddress, profile.Platform), raw, ttl)
}

// Delete removes a cached profile
func (c *ProfileCacheImpl) Delete(ctx context.Context, walletAddress string, platform entities.Platform) error {
	return delCacheValue(ctx, cacheKey(walletAddress, platform))
}

func cacheKey(walletAddress string, platform entities.Platform) string {
	return "profile:" + walletAddress + ":" + string(platform)
}
