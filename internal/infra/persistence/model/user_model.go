// Package model contains the GORM persistence models mirroring the database tables.
package model

import "time"

// UserModel mirrors the 'users' table, the legacy staff directory holding
// owner and seller-admin credentials.
//
// The password column is plain text. That is inherited from the system this
// service replaces; the column is isolated here and in the directory
// repository so a hashed scheme can land as a single migration.
type UserModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Email            string `gorm:"type:varchar(255);unique;not null"`
	Name             string `gorm:"type:varchar(100)"`
	Role             string `gorm:"type:varchar(20);index"`
	Username         string `gorm:"type:varchar(100)"`
	Password         string `gorm:"type:varchar(255)"`
	AdminForSellerID *int64 `gorm:"index"`
	Verified         bool   `gorm:"not null;default:false"`
	PriceRange       *int64
	Sales            int64 `gorm:"not null;default:0"`
	Blocked          bool  `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
