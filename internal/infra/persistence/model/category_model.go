package model

import "time"

// CategoryModel mirrors the 'categories' table. The table is flat; the
// parent/child forest is derived in the domain layer on every read.
type CategoryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	ParentID    *int64 `gorm:"index"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
