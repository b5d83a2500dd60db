package entity

import "time"

// Seller is a merchant group registered on the platform. Registration is
// passwordless: a seller signs up with contact details only and waits for the
// owner to verify it, which provisions a seller-admin directory user with
// generated credentials.
type Seller struct {
	ID         int64
	Name       string
	GroupName  string
	Email      string
	Phone      string
	Verified   bool
	Blocked    bool
	PriceRange *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
