package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bakehouse/internal/domain/entity"
)

func products() []*entity.Product {
	return []*entity.Product{
		{ID: "p1", Name: "Chocolate Truffle", Category: "Cakes"},
		{ID: "p2", Name: "Butter Cookies", Category: "Cookies"},
		{ID: "p3", Name: "Choco Lava Cupcake", Category: "Cupcakes"},
	}
}

func TestFilterProducts_All(t *testing.T) {
	got := FilterProducts(products(), Filter{Category: AllCategories})
	assert.Len(t, got, 3)
}

func TestFilterProducts_Category(t *testing.T) {
	got := FilterProducts(products(), Filter{Category: "Cookies"})
	assert.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestFilterProducts_SearchCaseInsensitive(t *testing.T) {
	got := FilterProducts(products(), Filter{Search: "choco"})
	assert.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID, "input order is preserved")
	assert.Equal(t, "p3", got[1].ID)
}

func TestFilterProducts_CategoryAndSearch(t *testing.T) {
	got := FilterProducts(products(), Filter{Category: "Cakes", Search: "truffle"})
	assert.Len(t, got, 1)
}

func TestFilterFastFood(t *testing.T) {
	items := []*entity.FastFoodItem{
		{ID: "ff1", Name: "Veg Momos", Category: "Momos"},
		{ID: "ff8", Name: "Spring Roll", Category: "Rolls"},
	}

	got := FilterFastFood(items, Filter{Search: "roll"})
	assert.Len(t, got, 1)
	assert.Equal(t, "ff8", got[0].ID)
}
