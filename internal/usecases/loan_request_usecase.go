package usecases

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"pay-chain.backend/internal/domain/entities"
	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/internal/domain/repositories"
	"pay-chain.backend/internal/metrics"
)

// Loan request policy bounds
const (
	MinInterestRate = 5.0
	MaxInterestRate = 50.0
	MinTermMonths   = 1
	MaxTermMonths   = 12
)

// LoanRequestUsecase handles loan request business logic. Creation sits
// behind the authoritative eligibility gate: an ineligible merchant is
// refused regardless of the requested amount.
type LoanRequestUsecase struct {
	loanRepo repositories.LoanRequestRepository
	profiles *MerchantProfileUsecase
}

// NewLoanRequestUsecase creates a new loan request usecase
func NewLoanRequestUsecase(loanRepo repositories.LoanRequestRepository, profiles *MerchantProfileUsecase) *LoanRequestUsecase {
	return &LoanRequestUsecase{
		loanRepo: loanRepo,
		profiles: profiles,
	}
}

// Create validates a loan request against the borrower's current credit
// analysis and persists it with a simple-interest repayment schedule.
func (u *LoanRequestUsecase) Create(ctx context.Context, borrowerAddress string, input *entities.CreateLoanRequestInput) (*entities.LoanRequest, error) {
	profile, analysis, err := u.profiles.GetProfile(ctx, borrowerAddress, input.Platform)
	if err != nil {
		return nil, err
	}

	if !profile.Eligibility.IsEligible {
		return nil, domainerrors.UnprocessableEntity(
			fmt.Sprintf("not eligible for loans: %s", profile.Eligibility.Reason),
			domainerrors.ErrNotEligible,
		)
	}

	if input.Amount <= 0 {
		return nil, domainerrors.BadRequest("amount must be greater than 0")
	}
	if input.Amount > analysis.MaxLoanLimit {
		return nil, domainerrors.UnprocessableEntity(
			fmt.Sprintf("requested amount %.0f exceeds loan limit %.0f", input.Amount, analysis.MaxLoanLimit),
			domainerrors.ErrLimitExceeded,
		)
	}
	if input.InterestRate < MinInterestRate || input.InterestRate > MaxInterestRate {
		return nil, domainerrors.BadRequest(
			fmt.Sprintf("interest rate must be between %.0f%% and %.0f%%", MinInterestRate, MaxInterestRate))
	}
	if input.TermMonths < MinTermMonths || input.TermMonths > MaxTermMonths {
		return nil, domainerrors.BadRequest(
			fmt.Sprintf("term must be between %d and %d months", MinTermMonths, MaxTermMonths))
	}

	schedule := ComputeLoanSchedule(input.Amount, input.InterestRate, input.TermMonths)

	trustScore := 0
	if analysis.TrustScore != nil {
		trustScore = analysis.TrustScore.TotalScore
	}

	request := &entities.LoanRequest{
		BorrowerAddress: profile.WalletAddress,
		Platform:        profile.Platform,
		Amount:          input.Amount,
		InterestRate:    input.InterestRate,
		TermMonths:      input.TermMonths,
		TotalInterest:   schedule.TotalInterest,
		TotalPayment:    schedule.TotalPayment,
		MonthlyPayment:  schedule.MonthlyPayment,
		TrustScore:      trustScore,
		Status:          entities.LoanRequestStatusPending,
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		request.Description.SetValid(desc)
	}

	if err := u.loanRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	metrics.LoanRequestsTotal.WithLabelValues(string(entities.LoanRequestStatusPending)).Inc()

	return request, nil
}

// GetByID returns a single loan request
func (u *LoanRequestUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanRequest, error) {
	return u.loanRepo.GetByID(ctx, id)
}

// List returns loan requests, optionally filtered by borrower address
func (u *LoanRequestUsecase) List(ctx context.Context, borrowerAddress string, limit, offset int) ([]*entities.LoanRequest, int64, error) {
	if borrowerAddress == "" {
		return u.loanRepo.List(ctx, limit, offset)
	}
	return u.loanRepo.ListByBorrower(ctx, borrowerAddress, limit, offset)
}

// Fund marks a pending request as funded by a lender wallet
func (u *LoanRequestUsecase) Fund(ctx context.Context, id uuid.UUID, lenderAddress, txHash string) (*entities.LoanRequest, error) {
	request, err := u.loanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Status != entities.LoanRequestStatusPending {
		return nil, domainerrors.UnprocessableEntity("loan request is not pending", domainerrors.ErrAlreadyFunded)
	}
	if strings.EqualFold(request.BorrowerAddress, lenderAddress) {
		return nil, domainerrors.UnprocessableEntity("cannot fund your own loan request", domainerrors.ErrSelfFunding)
	}

	if err := u.loanRepo.MarkFunded(ctx, id, lenderAddress, txHash); err != nil {
		return nil, err
	}

	metrics.LoanRequestsTotal.WithLabelValues(string(entities.LoanRequestStatusFunded)).Inc()

	return u.loanRepo.GetByID(ctx, id)
}

// ComputeLoanSchedule derives the simple-interest repayment breakdown:
// totalInterest = principal * annualRate * termMonths / (12 * 100).
func ComputeLoanSchedule(principal, annualRatePct float64, termMonths int) entities.LoanSchedule {
	totalInterest := principal * annualRatePct * float64(termMonths) / (12 * 100)
	totalPayment := principal + totalInterest
	return entities.LoanSchedule{
		TotalInterest:  round2(totalInterest),
		TotalPayment:   round2(totalPayment),
		MonthlyPayment: round2(totalPayment / float64(termMonths)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
