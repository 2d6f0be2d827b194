package model

import "time"

// FastFoodModel mirrors the 'fastfood' table. The nested wire-side price
// tiers flatten into nullable price_half/price_full columns; NULL means the
// size is not offered, which is distinct from a zero price.
type FastFoodModel struct {
	ID        string `gorm:"type:text;primaryKey"`
	Name      string `gorm:"type:text;not null"`
	Category  string `gorm:"type:text;not null"`
	Image     string `gorm:"type:text"`
	PriceHalf *int   `gorm:"column:price_half"`
	PriceFull *int   `gorm:"column:price_full"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FastFoodModel) TableName() string {
	return "fastfood"
}
