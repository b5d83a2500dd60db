package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string
	ParentID    *int64
	Description string
}

// UpdateCategoryInput defines the data required to update a category.
type UpdateCategoryInput struct {
	ID          int64
	Name        string
	ParentID    *int64
	Description string
}

// CategoryUsecase defines the interface for category taxonomy operations.
type CategoryUsecase interface {
	// GetTree returns the category forest derived from the flat table.
	// A non-empty search narrows by case-insensitive name match before
	// derivation, so matched children of unmatched parents surface as roots.
	GetTree(ctx context.Context, search string) ([]*entity.Category, error)

	// GetCategory returns a single flat category record.
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)

	// CreateCategory adds a category under the given parent, or at top level.
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	// UpdateCategory edits name, description and parent of a category.
	UpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*entity.Category, error)

	// DeleteCategory removes one category. Its children are kept and become
	// roots on the next tree read.
	DeleteCategory(ctx context.Context, id int64) error
}
