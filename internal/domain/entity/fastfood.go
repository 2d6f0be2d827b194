package entity

import "time"

// PriceTiers is the half/full price pair of a fast-food item. A nil tier
// means "this size is not offered" and marshals as JSON null; zero is a
// real price and must never be conflated with an absent tier.
type PriceTiers struct {
	Half *int `json:"half"`
	Full *int `json:"full"`
}

// FastFoodItem is a variant-priced catalog item (momos, chowmein, rolls).
// Its id namespace is independent of Product's.
type FastFoodItem struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	Image     string     `json:"image"`
	Prices    PriceTiers `json:"prices"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
