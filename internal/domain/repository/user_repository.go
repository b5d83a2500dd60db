// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a directory user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for the legacy staff
// directory, the owner/admin credential store.
type UserRepository interface {
	// FindByID retrieves a single directory user by id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single directory user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByCredentials retrieves the user matching both email and password.
	// This is the legacy plaintext equality lookup used by the login fallback;
	// it returns ErrUserNotFound when no row matches.
	FindByCredentials(ctx context.Context, email, password string) (*entity.User, error)

	// FindAdminForSeller retrieves the admin user linked to the given seller.
	FindAdminForSeller(ctx context.Context, sellerID int64) (*entity.User, error)

	// ListByRole retrieves all directory users holding the given role.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// Create persists a new directory user.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing directory user (whole-row, last write wins).
	Update(ctx context.Context, user *entity.User) error
}
