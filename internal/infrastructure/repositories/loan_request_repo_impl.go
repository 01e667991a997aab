package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pay-chain.backend/internal/domain/entities"
	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/pkg/utils"
)

// LoanRequestRepositoryImpl implements loan request persistence on GORM
type LoanRequestRepositoryImpl struct {
	db *gorm.DB
}

// NewLoanRequestRepository creates a new loan request repository
func NewLoanRequestRepository(db *gorm.DB) *LoanRequestRepositoryImpl {
	return &LoanRequestRepositoryImpl{db: db}
}

// Create persists a new loan request
func (r *LoanRequestRepositoryImpl) Create(ctx context.Context, request *entities.LoanRequest) error {
	request.ID = utils.GenerateUUIDv7()
	request.CreatedAt = time.Now().UTC()
	request.UpdatedAt = request.CreatedAt

	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID returns a loan request by id
func (r *LoanRequestRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanRequest, error) {
	var request entities.LoanRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ListByBorrower returns loan requests for a borrower, newest first
func (r *LoanRequestRepositoryImpl) ListByBorrower(ctx context.Context, borrowerAddress string, limit, offset int) ([]*entities.LoanRequest, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("borrower_address = ?", borrowerAddress), limit, offset)
}

// List returns all loan requests, newest first
func (r *LoanRequestRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*entities.LoanRequest, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx), limit, offset)
}

func (r *LoanRequestRepositoryImpl) list(_ context.Context, query *gorm.DB, limit, offset int) ([]*entities.LoanRequest, int64, error) {
	query = query.Model(&entities.LoanRequest{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var requests []*entities.LoanRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// MarkFunded transitions a pending request to funded, recording the lender
// and transaction hash. Only pending requests can transition.
func (r *LoanRequestRepositoryImpl) MarkFunded(ctx context.Context, id uuid.UUID, lenderAddress, txHash string) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&entities.LoanRequest{}).
		Where("id = ? AND status = ?", id, entities.LoanRequestStatusPending).
		Updates(map[string]interface{}{
			"status":         entities.LoanRequestStatusFunded,
			"lender_address": lenderAddress,
			"tx_hash":        txHash,
			"funded_at":      now,
			"updated_at":     now,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ExpirePending marks pending requests created before the cutoff as expired
// and returns how many transitioned.
func (r *LoanRequestRepositoryImpl) ExpirePending(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.LoanRequest{}).
		Where("status = ? AND created_at < ?", entities.LoanRequestStatusPending, olderThan).
		Updates(map[string]interface{}{
			"status":     entities.LoanRequestStatusExpired,
			"updated_at": time.Now().UTC(),
		})

	return result.RowsAffected, result.Error
}
