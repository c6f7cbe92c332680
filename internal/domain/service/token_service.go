package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases. The core
// never verifies credentials itself; the transport layer reconstructs the
// Session from validated claims.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given
	// account. Roles ride only on the access token for stateless authorization.
	GenerateTokens(accountID int64, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
