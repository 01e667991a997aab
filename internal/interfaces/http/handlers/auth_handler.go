package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"pay-chain.backend/internal/interfaces/http/response"
	"pay-chain.backend/pkg/jwt"
	"pay-chain.backend/pkg/utils"
)

// AuthHandler issues wallet session tokens. Wallet ownership is proven
// client-side by the connected wallet; the backend only scopes the session.
type AuthHandler struct {
	jwtService *jwt.JWTService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(jwtService *jwt.JWTService) *AuthHandler {
	return &AuthHandler{jwtService: jwtService}
}

type createSessionInput struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

// CreateSession issues a session token for a wallet
// POST /api/v1/auth/session
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var input createSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	address, err := utils.NormalizeWalletAddress(input.WalletAddress)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid wallet address")
		return
	}

	token, err := h.jwtService.GenerateSessionToken(address)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, "failed to create session")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"accessToken":   token,
		"walletAddress": address,
		"expiresIn":     int(h.jwtService.SessionExpiry().Seconds()),
	})
}

// GetSessionExpiry returns the session token lifetime in seconds
// GET /api/v1/auth/session-expiry
func (h *AuthHandler) GetSessionExpiry(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"expiresIn": int(h.jwtService.SessionExpiry().Seconds()),
	})
}
