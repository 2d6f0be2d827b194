package catalog

import (
	"strings"

	"bakehouse/internal/domain/entity"
)

// AllCategories is the sentinel category meaning "no category filter".
const AllCategories = "All"

// Filter is a query-time listing filter: exact category match (with the
// All sentinel) and case-insensitive substring match on the item name.
// It is purely an in-memory concern, never a storage one.
type Filter struct {
	Category string
	Search   string
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return (f.Category == "" || f.Category == AllCategories) && f.Search == ""
}

func (f Filter) matches(name, category string) bool {
	if f.Category != "" && f.Category != AllCategories && category != f.Category {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(f.Search)) {
		return false
	}

	return true
}

// FilterProducts returns the products matching the filter, preserving order.
func FilterProducts(products []*entity.Product, f Filter) []*entity.Product {
	if f.IsZero() {
		return products
	}

	matched := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if f.matches(product.Name, product.Category) {
			matched = append(matched, product)
		}
	}

	return matched
}

// FilterFastFood returns the fast-food items matching the filter, preserving order.
func FilterFastFood(items []*entity.FastFoodItem, f Filter) []*entity.FastFoodItem {
	if f.IsZero() {
		return items
	}

	matched := make([]*entity.FastFoodItem, 0, len(items))
	for _, item := range items {
		if f.matches(item.Name, item.Category) {
			matched = append(matched, item)
		}
	}

	return matched
}
