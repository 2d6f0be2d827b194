package entity

// OrderRequest is a customer's order form as submitted by the storefront.
// Orders are not persisted; they are handed off to the shop over a
// WhatsApp deep link composed from these fields.
type OrderRequest struct {
	Name    string     `json:"name" validate:"required"`
	Contact string     `json:"contact" validate:"required"`
	Date    string     `json:"date"`
	Items   string     `json:"items"` // free text; wins over Cart when set
	Notes   string     `json:"notes"`
	Cart    []CartLine `json:"cart"`
}

// CartLine is one storefront cart entry referenced by an order request.
type CartLine struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}
