package catalog

import "bakehouse/internal/domain/entity"

func intPtr(v int) *int { return &v }

// DefaultProducts is the starter catalog written into an empty store on
// first boot.
func DefaultProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "cake1", Name: "Chocolate Truffle Cake", Description: "Rich cocoa layers with ganache", Price: 799, Category: "Cakes", Image: "/images/cake_1.jpg"},
		{ID: "cake2", Name: "Red Velvet Cake", Description: "Cream cheese frosting, classic favorite", Price: 899, Category: "Cakes", Image: "/images/cake_2.jpg"},
		{ID: "pastry1", Name: "Strawberry Pastry", Description: "Light sponge, fresh berries", Price: 129, Category: "Pastries", Image: "/images/cake_3.jpg"},
		{ID: "cookie1", Name: "Choco Chip Cookies", Description: "Crispy edges, gooey center", Price: 99, Category: "Cookies", Image: "/images/cake_4.jpg"},
		{ID: "cupcake1", Name: "Vanilla Cupcake", Description: "Buttercream swirl, sprinkles", Price: 79, Category: "Cupcakes", Image: "/images/cake_5.jpg"},
	}
}

// DefaultFastFood is the starter fast-food menu written alongside
// DefaultProducts.
func DefaultFastFood() []*entity.FastFoodItem {
	return []*entity.FastFoodItem{
		{ID: "ff1", Name: "Steam Momos (Veg.)", Category: "Momos", Image: "https://images.weserv.nl/?url=loremflickr.com/600/600/dumpling", Prices: entity.PriceTiers{Half: intPtr(30), Full: intPtr(50)}},
		{ID: "ff8", Name: "Veg Chowmein", Category: "Chowmein", Image: "https://images.weserv.nl/?url=loremflickr.com/600/600/noodles", Prices: entity.PriceTiers{Half: intPtr(30), Full: intPtr(50)}},
	}
}
