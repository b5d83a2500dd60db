package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// InviteLinkOutput returns the customer invite link of a seller together with
// its QR rendering.
type InviteLinkOutput struct {
	Link  string
	QRPNG []byte
}

// InviteUsecase generates the invite material a seller admin hands to
// customers; sign-ups through the link are attached to the seller.
type InviteUsecase interface {
	// GenerateInviteLink builds the seller's invite link and its QR code.
	// Owner or the seller's own admin.
	GenerateInviteLink(ctx context.Context, session *entity.Session, sellerID int64) (*InviteLinkOutput, error)
}
