package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// ListProductsInput narrows and pages a seller's product listing.
type ListProductsInput struct {
	SellerID      int64
	Search        string
	Page          int
	PublishedOnly bool
}

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	SellerID     int64
	Name         string
	Category     string
	Brand        string
	Description  string
	Price        float64
	ListPrice    float64
	CountInStock int64
	Images       []string
	Tags         string // Comma-separated, split and trimmed before persisting.
	Colors       []string
	Sizes        []string
	SizePrices   map[string]float64
	IsPublished  bool
}

// UpdateProductInput defines the data required to update a product.
type UpdateProductInput struct {
	ID           int64
	SellerID     int64
	Name         string
	Category     string
	Brand        string
	Description  string
	Price        float64
	ListPrice    float64
	CountInStock int64
	Images       []string
	Tags         string
	Colors       []string
	Sizes        []string
	SizePrices   map[string]float64
	IsPublished  bool
}

// --- Output DTOs ---

// ListProductsOutput returns one page of products with paging totals.
type ListProductsOutput struct {
	Products   []*entity.Product
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// ProductUsecase defines the interface for seller-scoped catalog operations.
// Every operation checks the caller's session against the product's seller.
type ProductUsecase interface {
	// ListProducts returns one page of the seller's catalog, newest first.
	ListProducts(ctx context.Context, session *entity.Session, input *ListProductsInput) (*ListProductsOutput, error)

	// ListStorefront returns one page of the seller's published products.
	// The route guard decides who may see the storefront, not this method.
	ListStorefront(ctx context.Context, sellerID int64, page int, search string) (*ListProductsOutput, error)

	// GetProduct returns a single product of the seller.
	GetProduct(ctx context.Context, session *entity.Session, id int64) (*entity.Product, error)

	// CreateProduct adds a product to the seller's catalog. The slug is
	// derived from the name and the image count is capped.
	CreateProduct(ctx context.Context, session *entity.Session, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct replaces an existing product whole-row, last write wins.
	UpdateProduct(ctx context.Context, session *entity.Session, input *UpdateProductInput) (*entity.Product, error)

	// UpdateStock sets the freely editable stock counter.
	UpdateStock(ctx context.Context, session *entity.Session, id int64, countInStock int64) error

	// SetPublished flips the storefront visibility of a product.
	SetPublished(ctx context.Context, session *entity.Session, id int64, published bool) error

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, session *entity.Session, id int64) error
}
