package usecases

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"pay-chain.backend/internal/domain/entities"
	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/internal/domain/repositories"
	"pay-chain.backend/internal/metrics"
	"pay-chain.backend/pkg/logger"
	"pay-chain.backend/pkg/utils"
)

// MerchantProfileUsecase orchestrates the scoring pipeline: it fetches the
// sales history, runs metrics, eligibility, score, limit, recommendations and
// risk in dependency order, and returns a complete profile plus its derived
// credit analysis. Each trigger (connect, refresh, platform change) fully
// replaces the previous profile; no partial state is ever exposed.
type MerchantProfileUsecase struct {
	source      repositories.SalesDataSource
	cache       repositories.ProfileCache
	calculator  *SalesMetricsCalculator
	trustEngine *TrustScoreEngine
	validator   *EligibilityValidator
	limits      *LoanLimitCalculator
	recommender *RecommendationEngine
	cacheTTL    time.Duration

	// versions implements last-writer-wins for concurrent refreshes of the
	// same wallet: only the most recently started assembly may write the cache.
	mu       sync.Mutex
	versions map[string]uint64
}

// NewMerchantProfileUsecase creates a new merchant profile usecase
func NewMerchantProfileUsecase(
	source repositories.SalesDataSource,
	cache repositories.ProfileCache,
	calculator *SalesMetricsCalculator,
	trustEngine *TrustScoreEngine,
	validator *EligibilityValidator,
	limits *LoanLimitCalculator,
	recommender *RecommendationEngine,
	cacheTTL time.Duration,
) *MerchantProfileUsecase {
	return &MerchantProfileUsecase{
		source:      source,
		cache:       cache,
		calculator:  calculator,
		trustEngine: trustEngine,
		validator:   validator,
		limits:      limits,
		recommender: recommender,
		cacheTTL:    cacheTTL,
		versions:    make(map[string]uint64),
	}
}

// GetProfile returns the profile for a wallet, serving from the cache when a
// platform is pinned and an entry exists. Derived values are recomputed from
// the cached metrics on every call; they are never stored.
func (u *MerchantProfileUsecase) GetProfile(ctx context.Context, walletAddress string, platform entities.Platform) (*entities.MerchantProfile, *entities.CreditAnalysis, error) {
	address, err := utils.NormalizeWalletAddress(walletAddress)
	if err != nil {
		return nil, nil, domainerrors.BadRequest("invalid wallet address")
	}
	if platform != "" && !platform.IsValid() {
		return nil, nil, domainerrors.BadRequest("unsupported payment platform")
	}

	if platform != "" {
		if cached, err := u.cache.Get(ctx, address, platform); err == nil && cached != nil {
			metrics.ProfileCacheHits.Inc()
			return cached, u.Analyze(cached), nil
		}
		metrics.ProfileCacheMisses.Inc()
	}

	return u.assemble(ctx, address, platform)
}

// Refresh discards any cached profile for the wallet/platform pair and re-runs
// the whole pipeline. The previous profile is retained if the data source fails.
func (u *MerchantProfileUsecase) Refresh(ctx context.Context, walletAddress string, platform entities.Platform) (*entities.MerchantProfile, *entities.CreditAnalysis, error) {
	address, err := utils.NormalizeWalletAddress(walletAddress)
	if err != nil {
		return nil, nil, domainerrors.BadRequest("invalid wallet address")
	}
	if platform != "" && !platform.IsValid() {
		return nil, nil, domainerrors.BadRequest("unsupported payment platform")
	}

	if platform != "" {
		if err := u.cache.Delete(ctx, address, platform); err != nil {
			logger.Warn(ctx, "failed to invalidate cached profile",
				zap.String("wallet", address), zap.Error(err))
		}
	}

	return u.assemble(ctx, address, platform)
}

// ChangePlatform re-assembles the profile against a different payment
// platform. Equivalent to a refresh with the new platform pinned.
func (u *MerchantProfileUsecase) ChangePlatform(ctx context.Context, walletAddress string, platform entities.Platform) (*entities.MerchantProfile, *entities.CreditAnalysis, error) {
	if !platform.IsValid() {
		return nil, nil, domainerrors.BadRequest("unsupported payment platform")
	}
	return u.Refresh(ctx, walletAddress, platform)
}

// Analyze derives the full credit analysis from a profile's metrics.
// Pure function: the no-data sentinel maps to score 0 / limit 0 / highest risk.
func (u *MerchantProfileUsecase) Analyze(profile *entities.MerchantProfile) *entities.CreditAnalysis {
	var m *entities.SalesMetrics
	if profile != nil {
		m = profile.Metrics
	}

	score := u.trustEngine.Compute(m)

	total := 0
	if score != nil {
		total = score.TotalScore
	}

	return &entities.CreditAnalysis{
		TrustScore:      score,
		MaxLoanLimit:    u.limits.Calculate(score, m),
		Recommendations: u.recommender.Generate(score, m),
		RiskCategory:    CategorizeRisk(total),
	}
}

// Simulate runs a what-if score over the wallet's current sales history
func (u *MerchantProfileUsecase) Simulate(ctx context.Context, walletAddress string, platform entities.Platform, improvements entities.ScoreImprovements) (*entities.TrustScore, error) {
	profile, _, err := u.GetProfile(ctx, walletAddress, platform)
	if err != nil {
		return nil, err
	}
	if !profile.HasSalesData() {
		return nil, domainerrors.UnprocessableEntity("no sales data available", domainerrors.ErrNoSalesData)
	}
	return u.trustEngine.Simulate(profile.SalesRecords, improvements), nil
}

// assemble runs the pipeline end to end on a fresh copy of the sales history
func (u *MerchantProfileUsecase) assemble(ctx context.Context, address string, platform entities.Platform) (*entities.MerchantProfile, *entities.CreditAnalysis, error) {
	version := u.nextVersion(address)

	records, chosenPlatform, err := u.source.FetchSalesHistory(ctx, address, platform)
	if err != nil {
		logger.Error(ctx, "failed to fetch sales history",
			zap.String("wallet", address),
			zap.String("platform", string(platform)),
			zap.Error(err))
		return nil, nil, domainerrors.ServiceUnavailable("unable to load sales data", domainerrors.ErrSalesDataUnavailable)
	}

	salesMetrics := u.calculator.Calculate(records)

	profile := &entities.MerchantProfile{
		WalletAddress: address,
		Platform:      chosenPlatform,
		SalesRecords:  records,
		Metrics:       salesMetrics,
		Eligibility:   u.validator.Validate(salesMetrics),
		CreatedAt:     time.Now().UTC(),
	}

	// A superseded assembly still returns its result to its caller, but only
	// the latest one may overwrite the shared cache entry.
	if u.isLatestVersion(address, version) {
		if err := u.cache.Set(ctx, profile, u.cacheTTL); err != nil {
			logger.Warn(ctx, "failed to cache merchant profile",
				zap.String("wallet", address), zap.Error(err))
		}
	}

	metrics.ProfilesAssembledTotal.WithLabelValues(string(chosenPlatform)).Inc()

	return profile, u.Analyze(profile), nil
}

func (u *MerchantProfileUsecase) nextVersion(address string) uint64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.versions[address]++
	return u.versions[address]
}

func (u *MerchantProfileUsecase) isLatestVersion(address string, version uint64) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.versions[address] == version
}
