package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrSellerNotFound is returned when no seller matches the lookup.
var ErrSellerNotFound = errors.New("seller not found")

// SellerRepository defines the standard operations for seller persistence.
type SellerRepository interface {
	// FindByID retrieves a single seller by id.
	FindByID(ctx context.Context, id int64) (*entity.Seller, error)

	// FindByEmail retrieves a single seller by email address.
	FindByEmail(ctx context.Context, email string) (*entity.Seller, error)

	// List retrieves sellers, optionally filtered by verification state.
	// A nil filter returns everything, newest first.
	List(ctx context.Context, verified *bool) ([]*entity.Seller, error)

	// Create persists a new seller registration.
	Create(ctx context.Context, seller *entity.Seller) error

	// Update modifies an existing seller (whole-row, last write wins).
	Update(ctx context.Context, seller *entity.Seller) error
}
