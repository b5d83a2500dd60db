package service

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the token pair that carries a session.
type TokenService interface {
	// GenerateTokens mints an access token embedding the session claims and an
	// opaque-to-the-client refresh token for session continuation.
	GenerateTokens(session *entity.Session) (accessToken string, refreshToken string, err error)

	// ValidateToken checks a token string against a secret and returns the
	// parsed token.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// SessionFromClaims rebuilds the session value embedded in validated
	// access-token claims.
	SessionFromClaims(claims jwt.MapClaims) (*entity.Session, error)

	// HashToken produces the storage digest of a raw refresh token. Only the
	// digest is ever persisted.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
