package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrCategoryNotFound is returned when no category matches the lookup.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines persistence for the flat category table.
// Tree derivation happens in the domain layer, never in queries.
type CategoryRepository interface {
	// List retrieves the flat category set ordered newest first. A non-empty
	// search narrows the result with a case-insensitive name match.
	List(ctx context.Context, search string) ([]*entity.Category, error)

	// FindByID retrieves a single category by id.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies name, description and parent of an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category unconditionally. Children are left in place
	// and surface as roots on the next tree derivation.
	Delete(ctx context.Context, id int64) error
}
