package service

import (
	"context"

	"bazaar/internal/domain/entity"
)

// IdentityProvider is the primary credential store: self-service sign-up and
// password sign-in over hashed credentials, with a metadata bag carrying role
// and seller linkage. It mirrors the hosted provider the platform grew up on.
type IdentityProvider interface {
	// SignUp registers a new account with the given metadata.
	SignUp(ctx context.Context, email, password string, metadata entity.AccountMetadata) (*entity.Account, error)

	// SignIn authenticates email/password and returns the matching account.
	SignIn(ctx context.Context, email, password string) (*entity.Account, error)
}
