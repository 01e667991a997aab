package usecases_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"pay-chain.backend/internal/domain/entities"
	"pay-chain.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("development")
	os.Exit(m.Run())
}

type MockSalesDataSource struct {
	mock.Mock
}

func (m *MockSalesDataSource) FetchSalesHistory(ctx context.Context, walletAddress string, platform entities.Platform) ([]entities.DailySalesRecord, entities.Platform, error) {
	args := m.Called(ctx, walletAddress, platform)
	var records []entities.DailySalesRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]entities.DailySalesRecord)
	}
	return records, args.Get(1).(entities.Platform), args.Error(2)
}

type MockProfileCache struct {
	mock.Mock
}

func (m *MockProfileCache) Get(ctx context.Context, walletAddress string, platform entities.Platform) (*entities.MerchantProfile, error) {
	args := m.Called(ctx, walletAddress, platform)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MerchantProfile), args.Error(1)
}

func (m *MockProfileCache) Set(ctx context.Context, profile *entities.MerchantProfile, ttl time.Duration) error {
	args := m.Called(ctx, profile, ttl)
	return args.Error(0)
}

func (m *MockProfileCache) Delete(ctx context.Context, walletAddress string, platform entities.Platform) error {
	args := m.Called(ctx, walletAddress, platform)
	return args.Error(0)
}

type MockLoanRequestRepository struct {
	mock.Mock
}

func (m *MockLoanRequestRepository) Create(ctx context.Context, request *entities.LoanRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockLoanRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LoanRequest), args.Error(1)
}

func (m *MockLoanRequestRepository) ListByBorrower(ctx context.Context, borrowerAddress string, limit, offset int) ([]*entities.LoanRequest, int64, error) {
	args := m.Called(ctx, borrowerAddress, limit, offset)
	var requests []*entities.LoanRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]*entities.LoanRequest)
	}
	return requests, args.Get(1).(int64), args.Error(2)
}

func (m *MockLoanRequestRepository) List(ctx context.Context, limit, offset int) ([]*entities.LoanRequest, int64, error) {
	args := m.Called(ctx, limit, offset)
	var requests []*entities.LoanRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]*entities.LoanRequest)
	}
	return requests, args.Get(1).(int64), args.Error(2)
}

func (m *MockLoanRequestRepository) MarkFunded(ctx context.Context, id uuid.UUID, lenderAddress, txHash string) error {
	args := m.Called(ctx, id, lenderAddress, txHash)
	return args.Error(0)
}

func (m *MockLoanRequestRepository) ExpirePending(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

// flatHistory builds n contiguous daily records with a constant amount and
// transaction count, starting on a Sunday so calendar weeks line up.
func flatHistory(n int, amount float64, txns int) []entities.DailySalesRecord {
	start := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC) // a Sunday
	records := make([]entities.DailySalesRecord, n)
	for i := range records {
		ticket := 0.0
		if txns > 0 {
			ticket = amount / float64(txns)
		}
		records[i] = entities.DailySalesRecord{
			Date:             start.AddDate(0, 0, i),
			GrossAmount:      amount,
			TransactionCount: txns,
			Platform:         entities.PlatformMercadoPago,
			AverageTicket:    ticket,
		}
	}
	return records
}
