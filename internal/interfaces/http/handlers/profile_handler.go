package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"pay-chain.backend/internal/domain/entities"
	"pay-chain.backend/internal/interfaces/http/middleware"
	"pay-chain.backend/internal/interfaces/http/response"
	"pay-chain.backend/internal/usecases"
)

// ProfileHandler exposes merchant profile and credit analysis endpoints
type ProfileHandler struct {
	profileUsecase *usecases.MerchantProfileUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase *usecases.MerchantProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// profileResponse bundles the profile with its derived credit analysis
type profileResponse struct {
	Profile        *entities.MerchantProfile `json:"profile"`
	CreditAnalysis *entities.CreditAnalysis  `json:"creditAnalysis"`
}

// GetProfile returns the merchant profile plus derived credit analysis
// GET /api/v1/merchants/:address/profile?platform=
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	address := c.Param("address")
	platform := entities.Platform(c.Query("platform"))

	profile, analysis, err := h.profileUsecase.GetProfile(c.Request.Context(), address, platform)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profileResponse{Profile: profile, CreditAnalysis: analysis})
}

// RefreshProfile re-runs the scoring pipeline end to end for the wallet.
// Only the wallet owner may force a refresh.
// POST /api/v1/merchants/:address/profile/refresh?platform=
func (h *ProfileHandler) RefreshProfile(c *gin.Context) {
	address := c.Param("address")
	if !strings.EqualFold(middleware.GetWalletAddress(c), address) {
		response.ErrorWithStatus(c, http.StatusForbidden, "can only refresh your own profile")
		return
	}

	platform := entities.Platform(c.Query("platform"))

	profile, analysis, err := h.profileUsecase.Refresh(c.Request.Context(), address, platform)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profileResponse{Profile: profile, CreditAnalysis: analysis})
}

// SimulateScore runs a what-if trust score over the wallet's sales history
// POST /api/v1/merchants/:address/simulate?platform=
func (h *ProfileHandler) SimulateScore(c *gin.Context) {
	var improvements entities.ScoreImprovements
	if err := c.ShouldBindJSON(&improvements); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	address := c.Param("address")
	platform := entities.Platform(c.Query("platform"))

	score, err := h.profileUsecase.Simulate(c.Request.Context(), address, platform, improvements)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"simulatedScore": score})
}

// ListPlatforms returns the supported payment platforms
// GET /api/v1/platforms
func (h *ProfileHandler) ListPlatforms(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"platforms": entities.SupportedPlatforms()})
}
