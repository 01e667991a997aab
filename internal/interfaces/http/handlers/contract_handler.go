package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pay-chain.backend/internal/infrastructure/blockchain"
	"pay-chain.backend/internal/interfaces/http/response"
)

// ContractHandler reports on-chain loan contract status
type ContractHandler struct {
	contract *blockchain.LoanContractClient
}

// NewContractHandler creates a new contract handler. The client may be nil
// when no RPC endpoint is configured.
func NewContractHandler(contract *blockchain.LoanContractClient) *ContractHandler {
	return &ContractHandler{contract: contract}
}

// Status returns the loan contract deployment state and loan counter
// GET /api/v1/contract/status
func (h *ContractHandler) Status(c *gin.Context) {
	if h.contract == nil {
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, "loan contract unavailable")
		return
	}

	status, err := h.contract.Status(c.Request.Context())
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadGateway, "failed to query loan contract")
		return
	}

	response.Success(c, http.StatusOK, status)
}
