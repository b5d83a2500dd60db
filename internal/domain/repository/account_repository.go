package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no identity-provider account matches.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines persistence for identity-provider accounts, the
// customer/seller credential store.
type AccountRepository interface {
	// FindByID retrieves an account by its unique id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an account by email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account, including its metadata bag.
	Update(ctx context.Context, account *entity.Account) error
}
