// Package access implements the role-based route protection policy as a pure
// predicate over the visitor's session and the targeted surface. It has no
// side effects and no transport knowledge; the HTTP layer translates its
// decisions into responses.
package access

import "bazaar/internal/domain/entity"

// Decision is the outcome of evaluating a visitor against a target.
type Decision int

const (
	// Defer means the session is not yet determined; the caller should hold
	// the request rather than allow or redirect prematurely.
	Defer Decision = iota
	// Allow grants access to the target surface.
	Allow
	// Redirect denies access. Denials redirect to home instead of returning an
	// error body so the existence of protected resources is not leaked.
	Redirect
)

// String returns a readable form of the decision, mainly for logs and tests.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	default:
		return "defer"
	}
}

// Visitor is the guard's three-valued view of the caller: the session may be
// undetermined, determined-absent, or present. Distinguishing the first two
// states is what prevents both premature redirects and flashes of protected
// content.
type Visitor struct {
	determined bool
	session    *entity.Session
}

// UnknownVisitor returns a visitor whose session has not been resolved yet.
func UnknownVisitor() Visitor {
	return Visitor{}
}

// AnonymousVisitor returns a visitor confirmed to be unauthenticated.
func AnonymousVisitor() Visitor {
	return Visitor{determined: true}
}

// AuthenticatedVisitor returns a visitor carrying a resolved session.
// A nil session degrades to the anonymous state.
func AuthenticatedVisitor(session *entity.Session) Visitor {
	return Visitor{determined: true, session: session}
}

// TargetKind names the protected surfaces of the application.
type TargetKind int

const (
	// TargetOwner covers the owner administration pages.
	TargetOwner TargetKind = iota
	// TargetSellerAdmin covers the admin panel of one seller.
	TargetSellerAdmin
	// TargetStorefront covers the customer-facing storefront of one seller.
	TargetStorefront
)

// Target identifies one protected surface. SellerID is meaningful only for
// the seller-scoped kinds.
type Target struct {
	Kind     TargetKind
	SellerID int64
}

// OwnerPages targets the owner administration surface.
func OwnerPages() Target {
	return Target{Kind: TargetOwner}
}

// SellerAdminPages targets the admin panel of the given seller.
func SellerAdminPages(sellerID int64) Target {
	return Target{Kind: TargetSellerAdmin, SellerID: sellerID}
}

// StorefrontPages targets the storefront of the given seller.
func StorefrontPages(sellerID int64) Target {
	return Target{Kind: TargetStorefront, SellerID: sellerID}
}

// Decide evaluates the policy table. It must be re-run whenever either the
// visitor's session or the route's target identifier changes.
func Decide(visitor Visitor, target Target) Decision {
	if !visitor.determined {
		return Defer
	}
	session := visitor.session
	if session == nil {
		return Redirect
	}

	switch target.Kind {
	case TargetOwner:
		if session.IsOwner() {
			return Allow
		}
	case TargetSellerAdmin:
		if session.AdminOf(target.SellerID) {
			return Allow
		}
	case TargetStorefront:
		if session.CustomerOf(target.SellerID) {
			return Allow
		}
	}

	return Redirect
}
