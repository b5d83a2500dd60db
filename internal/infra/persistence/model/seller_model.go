package model

import "time"

// SellerModel mirrors the 'sellers' table.
type SellerModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(100);not null"`
	GroupName  string `gorm:"type:varchar(100)"`
	Email      string `gorm:"type:varchar(255);unique;not null"`
	Phone      string `gorm:"type:varchar(20)"`
	Verified   bool   `gorm:"not null;default:false;index"`
	Blocked    bool   `gorm:"not null;default:false"`
	PriceRange *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
