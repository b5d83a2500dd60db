package entity

import "time"

// MaxProductImages caps the number of image URLs a product may carry.
const MaxProductImages = 3

// Product is a catalog item scoped to a single seller. Stock is a freely
// editable integer with no reservation or concurrency control; concurrent
// edits resolve as last write wins via whole-row update.
type Product struct {
	ID           int64
	SellerID     int64
	Name         string
	Slug         string // Derived from Name, URL-safe.
	Category     string // Display name of the assigned category.
	Brand        string
	Description  string // Rich-text HTML from the editor.
	Price        float64
	ListPrice    float64
	CountInStock int64
	Images       []string // Public URLs, at most MaxProductImages.
	Tags         []string
	Colors       []string
	Sizes        []string
	SizePrices   map[string]float64 // Optional per-size price overrides.
	IsPublished  bool
	NumSales     int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
