package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"pay-chain.backend/internal/domain/entities"
	"pay-chain.backend/internal/interfaces/http/middleware"
	"pay-chain.backend/internal/interfaces/http/response"
	"pay-chain.backend/internal/usecases"
	"pay-chain.backend/pkg/utils"
)

// LoanRequestHandler exposes loan request endpoints
type LoanRequestHandler struct {
	loanUsecase *usecases.LoanRequestUsecase
}

// NewLoanRequestHandler creates a new loan request handler
func NewLoanRequestHandler(loanUsecase *usecases.LoanRequestUsecase) *LoanRequestHandler {
	return &LoanRequestHandler{loanUsecase: loanUsecase}
}

// Create creates a loan request for the authenticated wallet
// POST /api/v1/loans
func (h *LoanRequestHandler) Create(c *gin.Context) {
	var input entities.CreateLoanRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	borrower := middleware.GetWalletAddress(c)

	request, err := h.loanUsecase.Create(c.Request.Context(), borrower, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, request)
}

// Get returns a single loan request
// GET /api/v1/loans/:id
func (h *LoanRequestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid loan request id")
		return
	}

	request, err := h.loanUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, request)
}

// List returns loan requests, optionally filtered by borrower
// GET /api/v1/loans?borrower=0x..&page=&limit=
func (h *LoanRequestHandler) List(c *gin.Context) {
	borrower := c.Query("borrower")
	if borrower != "" {
		normalized, err := utils.NormalizeWalletAddress(borrower)
		if err != nil {
			response.ErrorWithStatus(c, http.StatusBadRequest, "invalid borrower address")
			return
		}
		borrower = normalized
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	requests, total, err := h.loanUsecase.List(c.Request.Context(), borrower, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"loans":      requests,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Fund marks a pending loan request as funded by the authenticated wallet
// POST /api/v1/loans/:id/fund
func (h *LoanRequestHandler) Fund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid loan request id")
		return
	}

	var input entities.FundLoanRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	lender := middleware.GetWalletAddress(c)

	request, err := h.loanUsecase.Fund(c.Request.Context(), id, lender, input.TxHash)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, request)
}
