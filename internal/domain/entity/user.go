// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a row of the legacy staff directory, the credential store for the
// owner and seller-admin roles. Directory rows are created by the owner when a
// seller is verified, never by self-service sign-up.
//
// The directory stores passwords in plain text and logins compare them with a
// direct equality lookup. This mirrors the system being replaced and is kept
// behind the repository boundary so a hashed scheme can be swapped in without
// touching the login flow.
type User struct {
	ID               int64
	Email            string
	Name             string
	Role             Role   // owner, admin or customer; zero value means unset.
	Username         string // Provisioned login name, the email local part.
	Password         string // Plain-text credential of the legacy directory.
	AdminForSellerID *int64 // For admins: the seller whose panel this user manages.
	Verified         bool   // Set when the owner has verified the linked seller.
	PriceRange       *int64 // Owner-assigned listing price ceiling.
	Sales            int64
	Blocked          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Sanitized returns a copy of the user with the credential fields cleared.
// Every path that hands a directory row to a client goes through this.
func (u User) Sanitized() User {
	u.Password = ""

	return u
}
