package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a credential record of the identity provider, the store used by
// customer (and future seller) self-service sign-up. Passwords are stored as
// bcrypt hashes; role and seller linkage travel in the metadata bag, mirroring
// the hosted provider's user_metadata shape.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Metadata     AccountMetadata
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountMetadata is the extensible bag attached to an identity-provider
// account. Unset fields keep their zero value; Role defaults to customer at
// session normalization time, not here.
type AccountMetadata struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role,omitempty"`
	SellerID *int64 `json:"seller_id,omitempty"`
}
