package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// LoanRequestStatus represents the lifecycle of a loan request
type LoanRequestStatus string

const (
	LoanRequestStatusPending LoanRequestStatus = "pending"
	LoanRequestStatusFunded  LoanRequestStatus = "funded"
	LoanRequestStatusExpired LoanRequestStatus = "expired"
)

// LoanSchedule holds the simple-interest repayment breakdown for a request
type LoanSchedule struct {
	TotalInterest  float64 `json:"totalInterest"`
	TotalPayment   float64 `json:"totalPayment"`
	MonthlyPayment float64 `json:"monthlyPayment"`
}

// LoanRequest represents a microloan request created by an eligible merchant
type LoanRequest struct {
	ID              uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	BorrowerAddress string            `json:"borrowerAddress" gorm:"index;size:42"`
	Platform        Platform          `json:"platform" gorm:"size:32"`
	Amount          float64           `json:"amount"`
	InterestRate    float64           `json:"interestRate"`
	TermMonths      int               `json:"termMonths"`
	TotalInterest   float64           `json:"totalInterest"`
	TotalPayment    float64           `json:"totalPayment"`
	MonthlyPayment  float64           `json:"monthlyPayment"`
	TrustScore      int               `json:"trustScore"`
	Status          LoanRequestStatus `json:"status" gorm:"index;size:16"`
	Description     null.String       `json:"description,omitempty"`
	LenderAddress   null.String       `json:"lenderAddress,omitempty" gorm:"size:42"`
	TxHash          null.String       `json:"txHash,omitempty" gorm:"size:66"`
	FundedAt        null.Time         `json:"fundedAt,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// TableName overrides the GORM table name
func (LoanRequest) TableName() string {
	return "loan_requests"
}

// Schedule returns the repayment breakdown stored on the request
func (r *LoanRequest) Schedule() LoanSchedule {
	return LoanSchedule{
		TotalInterest:  r.TotalInterest,
		TotalPayment:   r.TotalPayment,
		MonthlyPayment: r.MonthlyPayment,
	}
}

// CreateLoanRequestInput represents input for creating a loan request
type CreateLoanRequestInput struct {
	Platform     Platform `json:"platform" binding:"required"`
	Amount       float64  `json:"amount" binding:"required,gt=0"`
	InterestRate float64  `json:"interestRate" binding:"required"`
	TermMonths   int      `json:"termMonths" binding:"required"`
	Description  string   `json:"description,omitempty"`
}

// FundLoanRequestInput represents input for funding a loan request
type FundLoanRequestInput struct {
	TxHash string `json:"txHash" binding:"required"`
}
