package access

import (
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func sellerRef(id int64) *int64 {
	return &id
}

func adminSession(sellerID int64) *entity.Session {
	return &entity.Session{
		UserID:           "42",
		Email:            "admin@example.com",
		Role:             entity.RoleAdmin,
		AdminForSellerID: sellerRef(sellerID),
	}
}

func TestDecide_PolicyTable(t *testing.T) {
	owner := &entity.Session{UserID: "1", Role: entity.RoleOwner}
	customer := &entity.Session{UserID: "7", Role: entity.RoleCustomer, SellerID: sellerRef(5)}

	tests := []struct {
		name    string
		visitor Visitor
		target  Target
		want    Decision
	}{
		{"undetermined session defers", UnknownVisitor(), OwnerPages(), Defer},
		{"undetermined session defers on storefront", UnknownVisitor(), StorefrontPages(5), Defer},
		{"confirmed anonymous redirects", AnonymousVisitor(), OwnerPages(), Redirect},
		{"confirmed anonymous redirects on seller admin", AnonymousVisitor(), SellerAdminPages(5), Redirect},
		{"owner allowed on owner pages", AuthenticatedVisitor(owner), OwnerPages(), Allow},
		{"owner redirected from seller admin", AuthenticatedVisitor(owner), SellerAdminPages(5), Redirect},
		{"admin allowed on own seller panel", AuthenticatedVisitor(adminSession(5)), SellerAdminPages(5), Allow},
		{"admin redirected from other seller panel", AuthenticatedVisitor(adminSession(5)), SellerAdminPages(6), Redirect},
		{"admin redirected from owner pages", AuthenticatedVisitor(adminSession(5)), OwnerPages(), Redirect},
		{"customer allowed on linked storefront", AuthenticatedVisitor(customer), StorefrontPages(5), Allow},
		{"customer redirected from other storefront", AuthenticatedVisitor(customer), StorefrontPages(6), Redirect},
		{"customer redirected from owner pages", AuthenticatedVisitor(customer), OwnerPages(), Redirect},
		{"nil session counts as anonymous", AuthenticatedVisitor(nil), StorefrontPages(5), Redirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.visitor, tt.target))
		})
	}
}

func TestDecide_RoleWithoutScopeRedirects(t *testing.T) {
	// An admin without a seller linkage must never reach a seller panel, and a
	// customer without a linkage must never reach a storefront.
	admin := &entity.Session{UserID: "9", Role: entity.RoleAdmin}
	customer := &entity.Session{UserID: "10", Role: entity.RoleCustomer}

	assert.Equal(t, Redirect, Decide(AuthenticatedVisitor(admin), SellerAdminPages(5)))
	assert.Equal(t, Redirect, Decide(AuthenticatedVisitor(customer), StorefrontPages(5)))
}

func TestDecide_ReevaluatesOnTargetChange(t *testing.T) {
	visitor := AuthenticatedVisitor(adminSession(5))

	assert.Equal(t, Allow, Decide(visitor, SellerAdminPages(5)))
	assert.Equal(t, Redirect, Decide(visitor, SellerAdminPages(6)))
}
