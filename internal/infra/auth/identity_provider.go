package auth

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
)

// accountIdentityProvider implements the IdentityProvider interface over the
// local accounts table with bcrypt-hashed credentials. It stands in for the
// hosted identity provider the platform originally delegated sign-up/sign-in to.
type accountIdentityProvider struct {
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
}

// NewIdentityProvider is the constructor for accountIdentityProvider.
func NewIdentityProvider(accounts repository.AccountRepository, hasher service.PasswordHasher) service.IdentityProvider {
	return &accountIdentityProvider{
		accounts: accounts,
		hasher:   hasher,
	}
}

// SignUp registers a new account with hashed credentials and the given metadata bag.
func (p *accountIdentityProvider) SignUp(ctx context.Context, email, password string, metadata entity.AccountMetadata) (*entity.Account, error) {
	_, err := p.accounts.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("sign up failed")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("sign up failed")
	}

	account := &entity.Account{
		Email:        email,
		PasswordHash: hash,
		Metadata:     metadata,
	}
	if err := p.accounts.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	return account, nil
}

// SignIn authenticates email/password against the stored hash.
func (p *accountIdentityProvider) SignIn(ctx context.Context, email, password string) (*entity.Account, error) {
	account, err := p.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("sign in failed")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !p.hasher.Check(password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("sign in failed")
	}

	return account, nil
}
