package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterSellerInput defines the data for a passwordless seller registration.
// The seller waits for owner verification before anyone can log in for it.
type RegisterSellerInput struct {
	Name      string
	GroupName string
	Email     string
	Phone     string
}

// UpdateSellerControlsInput carries the owner-managed switches of a seller.
type UpdateSellerControlsInput struct {
	SellerID   int64
	Blocked    *bool
	PriceRange *int64
}

// UpdateAdminCredentialsInput carries replacement login credentials for a
// verified seller's admin user.
type UpdateAdminCredentialsInput struct {
	SellerID int64
	Username string
	Password string
}

// --- Output DTOs ---

// VerifySellerOutput returns the provisioned admin credentials. The generated
// password appears here once; it is never retrievable afterwards.
type VerifySellerOutput struct {
	Seller   *entity.Seller
	Admin    *entity.User
	Password string
}

// SellerUsecase defines seller registration and the owner's management
// operations over sellers and their admin users.
type SellerUsecase interface {
	// RegisterSeller records a pending seller registration.
	RegisterSeller(ctx context.Context, input *RegisterSellerInput) (*entity.Seller, error)

	// ListSellers returns sellers, optionally filtered by verification state.
	// Owner only.
	ListSellers(ctx context.Context, session *entity.Session, verified *bool) ([]*entity.Seller, error)

	// GetSeller returns one seller. Owner or the seller's own admin.
	GetSeller(ctx context.Context, session *entity.Session, id int64) (*entity.Seller, error)

	// VerifySeller marks a seller verified and provisions its admin directory
	// user with generated credentials, atomically. Owner only.
	VerifySeller(ctx context.Context, session *entity.Session, sellerID int64) (*VerifySellerOutput, error)

	// UpdateSellerControls applies the owner's block flag and price range to a
	// seller and its admin user. Owner only.
	UpdateSellerControls(ctx context.Context, session *entity.Session, input *UpdateSellerControlsInput) (*entity.Seller, error)

	// UpdateAdminCredentials replaces the provisioned username and password of
	// a seller's admin user. Owner only.
	UpdateAdminCredentials(ctx context.Context, session *entity.Session, input *UpdateAdminCredentialsInput) (*entity.User, error)
}
