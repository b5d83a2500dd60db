package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, authorized session. It is the
// server-side counterpart of the old client-persisted session record: created
// whole on login, replaced whole on refresh, deleted on logout.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    string // Matches Session.UserID; spans both credential stores.
	TokenHash string // SHA-256 of the raw token; the raw value is never stored.
	ExpiresAt time.Time
	CreatedAt time.Time
}
