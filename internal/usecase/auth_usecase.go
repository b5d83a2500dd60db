// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a customer account.
type SignUpInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	SellerID *int64 // Set when sign-up came through a seller invite link.
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the raw refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the raw refresh token of the session being closed.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created account.
type SignUpOutput struct {
	Account *entity.Account
}

// LoginOutput returns the token pair and the normalized session after a
// successful login, whichever credential store authenticated it.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Session      *entity.Session
}

// RefreshTokenOutput returns the new access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// SignUp registers a customer through the identity provider.
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	// Login resolves credentials against the identity provider first and the
	// legacy staff directory second, returning one normalized session.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken issues a new access token for a stored session.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout deletes the stored session for the presented refresh token.
	Logout(ctx context.Context, input *LogoutInput) error

	// LogoutAllDevices deletes every stored session of the user.
	LogoutAllDevices(ctx context.Context, userID string) error
}
