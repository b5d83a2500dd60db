package entity

// Session is the normalized identity produced by login resolution, regardless
// of which credential store authenticated the caller. It is the single source
// of truth for access decisions and deliberately has no password field: the
// login flow strips credentials before the session leaves the usecase layer.
type Session struct {
	UserID           string // Identity-provider accounts carry a UUID, directory users a numeric id.
	Email            string
	Name             string
	Role             Role
	SellerID         *int64 // Set only for customers linked to a seller.
	AdminForSellerID *int64 // Set only for seller admins; names the seller panel they may enter.
}

// IsOwner reports whether the session belongs to the platform owner.
func (s *Session) IsOwner() bool {
	return s != nil && s.Role == RoleOwner
}

// AdminOf reports whether the session is a seller admin for the given seller.
func (s *Session) AdminOf(sellerID int64) bool {
	return s != nil && s.Role == RoleAdmin && s.AdminForSellerID != nil && *s.AdminForSellerID == sellerID
}

// CustomerOf reports whether the session is a customer attached to the given seller.
func (s *Session) CustomerOf(sellerID int64) bool {
	return s != nil && s.Role == RoleCustomer && s.SellerID != nil && *s.SellerID == sellerID
}
