package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"pay-chain.backend/internal/domain/entities"
)

// LoanRequestRepository defines loan request data operations
type LoanRequestRepository interface {
	Create(ctx context.Context, request *entities.LoanRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanRequest, error)
	ListByBorrower(ctx context.Context, borrowerAddress string, limit, offset int) ([]*entities.LoanRequest, int64, error)
	List(ctx context.Context, limit, offset int) ([]*entities.LoanRequest, int64, error)
	MarkFunded(ctx context.Context, id uuid.UUID, lenderAddress, txHash string) error
	ExpirePending(ctx context.Context, olderThan time.Time) (int64, error)
}
