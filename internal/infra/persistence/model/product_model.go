package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. List-shaped fields and the
// per-size price overrides live in JSON columns; they are display data, never
// queried by element.
type ProductModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	SellerID     int64  `gorm:"not null;index"`
	Name         string `gorm:"type:varchar(255);not null"`
	Slug         string `gorm:"type:varchar(255);index"`
	Category     string `gorm:"type:varchar(100)"`
	Brand        string `gorm:"type:varchar(100)"`
	Description  string `gorm:"type:text"`
	Price        float64
	ListPrice    float64
	CountInStock int64                                  `gorm:"not null;default:0"`
	Images       datatypes.JSONSlice[string]            `gorm:"type:jsonb"`
	Tags         datatypes.JSONSlice[string]            `gorm:"type:jsonb"`
	Colors       datatypes.JSONSlice[string]            `gorm:"type:jsonb"`
	Sizes        datatypes.JSONSlice[string]            `gorm:"type:jsonb"`
	SizePrices   datatypes.JSONType[map[string]float64] `gorm:"type:jsonb"`
	IsPublished  bool                                   `gorm:"not null;default:false"`
	NumSales     int64                                  `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
