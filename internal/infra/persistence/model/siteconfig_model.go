package model

import "time"

// SiteConfigModel mirrors the 'site_config' table. It only ever holds one
// row, keyed by the well-known settings id.
type SiteConfigModel struct {
	ID           string `gorm:"type:text;primaryKey"`
	ShopName     string `gorm:"type:text"`
	Tagline      string `gorm:"type:text"`
	WhatsApp     string `gorm:"column:whatsapp;type:text"`
	Address      string `gorm:"type:text"`
	HeroTitle    string `gorm:"type:text"`
	HeroSubtitle string `gorm:"type:text"`
	BannerTitle  string `gorm:"type:text"`
	BannerText   string `gorm:"type:text"`
	ChefTitle    string `gorm:"type:text"`
	ChefDesc     string `gorm:"type:text"`
	ChefPrice    int
	ChefTag      string `gorm:"type:text"`
	ChefImage    string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SiteConfigModel) TableName() string {
	return "site_config"
}
