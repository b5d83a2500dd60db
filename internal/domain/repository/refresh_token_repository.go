package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrRefreshTokenNotFound is returned when no stored session matches the hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines persistence for long-lived sessions.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new session record.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a session by its stored token hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash removes a single session (logout, rotation).
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByUser removes every session of one user.
	DeleteRefreshTokensByUser(ctx context.Context, userID string) error
}
