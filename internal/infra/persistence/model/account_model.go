package model

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AccountModel mirrors the 'accounts' table, the identity-provider credential
// store. The metadata bag is kept as a JSON column to preserve the hosted
// provider's open user_metadata shape.
type AccountModel struct {
	ID           uuid.UUID                                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string                                      `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string                                      `gorm:"type:varchar(255);not null"`
	Metadata     datatypes.JSONType[entity.AccountMetadata] `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
