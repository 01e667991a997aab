package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pay-chain.backend/internal/domain/entities"
	domainerrors "pay-chain.backend/internal/domain/errors"
	"pay-chain.backend/internal/usecases"
)

const lenderWalletAddr = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

func newLoanRouter(repo loanRepoStub, wallet string) *gin.Engine {
	loanUsecase := usecases.NewLoanRequestUsecase(repo, eligibleProfileUsecase())
	h := NewLoanRequestHandler(loanUsecase)
	r := gin.New()
	r.GET("/loans", h.List)
	r.GET("/loans/:id", h.Get)
	r.POST("/loans", withWallet(wallet), h.Create)
	r.POST("/loans/:id/fund", withWallet(wallet), h.Fund)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoanRequestHandler_Create(t *testing.T) {
	var created *entities.LoanRequest
	repo := loanRepoStub{
		createFn: func(_ context.Context, request *entities.LoanRequest) error {
			request.ID = uuid.New()
			created = request
			return nil
		},
	}
	r := newLoanRouter(repo, testWalletAddr)

	w := postJSON(r, "/loans", `{"platform":"mercadopago","amount":1000,"interestRate":12,"termMonths":6}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, testWalletAddr, created.BorrowerAddress)
	assert.Equal(t, entities.LoanRequestStatusPending, created.Status)

	var resp entities.LoanRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.ID)
	assert.InDelta(t, 60.0, resp.TotalInterest, 0.001)
	assert.InDelta(t, 1060.0, resp.TotalPayment, 0.001)
	assert.InDelta(t, 176.67, resp.MonthlyPayment, 0.001)
}

func TestLoanRequestHandler_CreateInvalidBody(t *testing.T) {
	r := newLoanRouter(loanRepoStub{}, testWalletAddr)

	w := postJSON(r, "/loans", `{"platform":"mercadopago"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoanRequestHandler_CreateIneligibleBorrower(t *testing.T) {
	// Two months of history fails the minimum tenure gate
	source := salesSourceStub{
		fetchFn: func(_ context.Context, _ string, platform entities.Platform) ([]entities.DailySalesRecord, entities.Platform, error) {
			return steadySales(60, 3000, 25), platform, nil
		},
	}
	loanUsecase := usecases.NewLoanRequestUsecase(loanRepoStub{}, newProfileUsecaseWith(source, profileCacheStub{}))
	h := NewLoanRequestHandler(loanUsecase)
	r := gin.New()
	r.POST("/loans", withWallet(testWalletAddr), h.Create)

	w := postJSON(r, "/loans", `{"platform":"mercadopago","amount":1000,"interestRate":12,"termMonths":6}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "not eligible for loans")
}

func TestLoanRequestHandler_CreateAboveLimit(t *testing.T) {
	r := newLoanRouter(loanRepoStub{}, testWalletAddr)

	w := postJSON(r, "/loans", `{"platform":"mercadopago","amount":5001,"interestRate":12,"termMonths":6}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "exceeds loan limit")
}

func TestLoanRequestHandler_Get(t *testing.T) {
	id := uuid.New()
	repo := loanRepoStub{
		getFn: func(_ context.Context, gotID uuid.UUID) (*entities.LoanRequest, error) {
			if gotID == id {
				return &entities.LoanRequest{ID: id, BorrowerAddress: testWalletAddr, Status: entities.LoanRequestStatusPending}, nil
			}
			return nil, domainerrors.ErrNotFound
		},
	}
	r := newLoanRouter(repo, testWalletAddr)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/loans/"+id.String(), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp entities.LoanRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/loans/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoanRequestHandler_GetInvalidID(t *testing.T) {
	r := newLoanRouter(loanRepoStub{}, testWalletAddr)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/loans/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid loan request id")
}

func TestLoanRequestHandler_List(t *testing.T) {
	repo := loanRepoStub{
		listFn: func(_ context.Context, limit, offset int) ([]*entities.LoanRequest, int64, error) {
			assert.Equal(t, 20, limit)
			assert.Equal(t, 0, offset)
			return []*entities.LoanRequest{
				{ID: uuid.New(), BorrowerAddress: testWalletAddr},
				{ID: uuid.New(), BorrowerAddress: lenderWalletAddr},
			}, 2, nil
		},
	}
	r := newLoanRouter(repo, testWalletAddr)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/loans", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Loans      []*entities.LoanRequest `json:"loans"`
		Pagination struct {
			TotalCount int64 `json:"totalCount"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Loans, 2)
	assert.Equal(t, int64(2), resp.Pagination.TotalCount)
}

func TestLoanRequestHandler_ListByBorrower(t *testing.T) {
	repo := loanRepoStub{
		listByBorrowerFn: func(_ context.Context, borrower string, _, _ int) ([]*entities.LoanRequest, int64, error) {
			// Lowercase query arrives checksummed
			assert.Equal(t, testWalletAddr, borrower)
			return []*entities.LoanRequest{{ID: uuid.New(), BorrowerAddress: borrower}}, 1, nil
		},
	}
	r := newLoanRouter(repo, testWalletAddr)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/loans?borrower="+testWalletAddr, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/loans?borrower=junk", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid borrower address")
}

func TestLoanRequestHandler_Fund(t *testing.T) {
	id := uuid.New()
	funded := false
	repo := loanRepoStub{
		getFn: func(_ context.Context, _ uuid.UUID) (*entities.LoanRequest, error) {
			request := &entities.LoanRequest{ID: id, BorrowerAddress: testWalletAddr, Status: entities.LoanRequestStatusPending}
			if funded {
				request.Status = entities.LoanRequestStatusFunded
				request.LenderAddress.SetValid(lenderWalletAddr)
			}
			return request, nil
		},
		markFundedFn: func(_ context.Context, gotID uuid.UUID, lender, txHash string) error {
			assert.Equal(t, id, gotID)
			assert.Equal(t, lenderWalletAddr, lender)
			assert.Equal(t, "0xabc123", txHash)
			funded = true
			return nil
		},
	}
	r := newLoanRouter(repo, lenderWalletAddr)

	w := postJSON(r, "/loans/"+id.String()+"/fund", `{"txHash":"0xabc123"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, funded)

	var resp entities.LoanRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, entities.LoanRequestStatusFunded, resp.Status)
}

func TestLoanRequestHandler_FundOwnRequest(t *testing.T) {
	id := uuid.New()
	repo := loanRepoStub{
		getFn: func(_ context.Context, _ uuid.UUID) (*entities.LoanRequest, error) {
			return &entities.LoanRequest{ID: id, BorrowerAddress: testWalletAddr, Status: entities.LoanRequestStatusPending}, nil
		},
	}
	r := newLoanRouter(repo, testWalletAddr)

	w := postJSON(r, "/loans/"+id.String()+"/fund", `{"txHash":"0xabc123"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "cannot fund your own loan request")
}

func TestLoanRequestHandler_FundMissingTxHash(t *testing.T) {
	r := newLoanRouter(loanRepoStub{}, lenderWalletAddr)

	w := postJSON(r, "/loans/"+uuid.NewString()+"/fund", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
