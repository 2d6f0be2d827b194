package entity

import "time"

// SiteConfigKey is the well-known id of the single site configuration
// record. The record is created lazily with defaults on first read and
// thereafter only updated, never deleted.
const SiteConfigKey = "global_settings"

// SiteConfig is the global storefront configuration: shop identity, hero
// and banner copy, the WhatsApp contact and the chef spotlight block.
type SiteConfig struct {
	ID       string `json:"-"`
	ShopName string `json:"shopName"`
	Tagline  string `json:"tagline"`
	WhatsApp string `json:"whatsapp"`
	Address  string `json:"address"`

	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`

	BannerTitle string `json:"bannerTitle"`
	BannerText  string `json:"bannerText"`

	ChefTitle string `json:"chefTitle"`
	ChefDesc  string `json:"chefDesc"`
	ChefPrice int    `json:"chefPrice"`
	ChefTag   string `json:"chefTag"`
	ChefImage string `json:"chefImage"` // base64 data URI

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultSiteConfig returns the baked-in configuration synthesized on
// first read of an empty store.
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		ID:           SiteConfigKey,
		ShopName:     "Corbett Bakers",
		Tagline:      "Homemade happiness",
		WhatsApp:     "919999999999",
		Address:      "Bannakhera, Uttarakhand",
		HeroTitle:    "Baked with Love, Served Fresh",
		HeroSubtitle: "Warm, cozy, and inviting bakes for every sweet moment.",
		BannerTitle:  "Planning a Special Occasion?",
		BannerText:   "From weddings to birthdays, we create custom cakes.",
		ChefTitle:    "The Red Velvet Supreme",
		ChefDesc:     "Our signature creation. Three layers of moist, cocoa-infused red sponge layered with our secret cream cheese frosting.",
		ChefPrice:    899,
		ChefTag:      "Today Spcl",
		ChefImage:    "",
	}
}
