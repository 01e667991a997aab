package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"pay-chain.backend/pkg/jwt"
)

// WalletAddressKey is the gin context key holding the authenticated wallet
const WalletAddressKey = "wallet_address"

// WalletAuthMiddleware validates the Bearer session token and stores the
// authenticated wallet address on the context.
func WalletAuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(WalletAddressKey, claims.WalletAddress)
		c.Next()
	}
}

// GetWalletAddress returns the authenticated wallet address for the request,
// or "" when the route is unauthenticated.
func GetWalletAddress(c *gin.Context) string {
	address, _ := c.Get(WalletAddressKey)
	if s, ok := address.(string); ok {
		return s
	}
	return ""
}
