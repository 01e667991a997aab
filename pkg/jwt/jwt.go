package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims represents wallet session JWT claims
type Claims struct {
	WalletAddress string `json:"walletAddress"`
	jwt.RegisteredClaims
}

// JWTService issues and validates HMAC wallet session tokens
type JWTService struct {
	secret        []byte
	sessionExpiry time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secret string, sessionExpiry time.Duration) *JWTService {
	return &JWTService{
		secret:        []byte(secret),
		sessionExpiry: sessionExpiry,
	}
}

// SessionExpiry returns the configured session token lifetime
func (s *JWTService) SessionExpiry() time.Duration {
	return s.sessionExpiry
}

// GenerateSessionToken issues a session token bound to a wallet address
func (s *JWTService) GenerateSessionToken(walletAddress string) (string, error) {
	now := time.Now()
	claims := &Claims{
		WalletAddress: walletAddress,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a session token and returns its claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
