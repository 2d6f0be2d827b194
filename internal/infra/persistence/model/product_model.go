// Package model holds the GORM persistence models for the relational
// storage engine. The document engine stores domain entities directly.
package model

import "time"

// ProductModel mirrors the 'products' table. The primary key is the
// caller-supplied catalog id, not an auto-increment.
type ProductModel struct {
	ID          string `gorm:"type:text;primaryKey"`
	Name        string `gorm:"type:text;not null"`
	Description string `gorm:"type:text"`
	Price       int    `gorm:"not null"`
	Category    string `gorm:"type:text;not null"`
	Image       string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
