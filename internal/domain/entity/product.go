// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Product is a simple single-price catalog item (cakes, pastries, cookies).
// The ID is supplied by the caller at creation time and never reassigned;
// uniqueness holds within the product namespace only.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int       `json:"price"` // minor currency unit, always > 0
	Category    string    `json:"category"`
	Image       string    `json:"image"` // URL or base64 data URI
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
