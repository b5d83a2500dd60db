package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductQuery narrows and pages a seller-scoped product listing.
type ProductQuery struct {
	Search        string // Case-insensitive name match when non-empty.
	Page          int    // 1-based page number; values < 1 mean the first page.
	PageSize      int    // Rows per page; values < 1 fall back to the default.
	PublishedOnly bool   // Restrict to published products (storefront view).
}

// ProductRepository defines persistence for seller-scoped products.
type ProductRepository interface {
	// ListBySeller retrieves one page of a seller's products, newest first,
	// along with the total row count for the query.
	ListBySeller(ctx context.Context, sellerID int64, query ProductQuery) ([]*entity.Product, int64, error)

	// FindByID retrieves a single product by id.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product (whole-row, last write wins).
	Update(ctx context.Context, product *entity.Product) error

	// UpdateStock sets the freely editable stock counter.
	UpdateStock(ctx context.Context, id int64, countInStock int64) error

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error
}
