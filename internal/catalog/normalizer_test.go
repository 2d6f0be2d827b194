package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "bakehouse/internal/domain/errors"
)

func TestNormalizeProduct_Valid(t *testing.T) {
	item, err := NormalizeProduct(ItemPayload{
		ID:          "cake42",
		Name:        "Walnut Cake",
		Description: "with roasted walnuts",
		Price:       float64(450), // JSON numbers decode as float64
		Category:    "Cakes",
		Image:       "https://example.com/walnut.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "cake42", item.ID)
	assert.Equal(t, 450, item.Price)
	assert.Equal(t, "Cakes", item.Category)
	assert.True(t, item.CreatedAt.IsZero(), "timestamps belong to the repository")
}

func TestNormalizeProduct_StringPrice(t *testing.T) {
	item, err := NormalizeProduct(ItemPayload{
		ID:       "cake43",
		Name:     "Plum Cake",
		Price:    "320",
		Category: "Cakes",
	})
	require.NoError(t, err)
	assert.Equal(t, 320, item.Price)
}

func TestNormalizeProduct_MissingFields(t *testing.T) {
	cases := map[string]ItemPayload{
		"no id":           {Name: "x", Price: 10, Category: "Cakes"},
		"blank name":      {ID: "p1", Name: "   ", Price: 10, Category: "Cakes"},
		"no category":     {ID: "p1", Name: "x", Price: 10},
		"nil price":       {ID: "p1", Name: "x", Category: "Cakes"},
		"blank price":     {ID: "p1", Name: "x", Price: "  ", Category: "Cakes"},
		"non-numeric":     {ID: "p1", Name: "x", Price: "cheap", Category: "Cakes"},
		"zero price":      {ID: "p1", Name: "x", Price: 0, Category: "Cakes"},
		"negative price":  {ID: "p1", Name: "x", Price: -5, Category: "Cakes"},
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NormalizeProduct(payload)
			assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
		})
	}
}

func TestNormalizeFastFood_TierSemantics(t *testing.T) {
	item, err := NormalizeFastFood(ItemPayload{
		ID:       "ff9",
		Name:     "Veg Momos",
		Category: "Momos",
		Prices:   &TiersPayload{Half: float64(0), Full: "60"},
	})
	require.NoError(t, err)
	require.NotNil(t, item.Prices.Half)
	assert.Equal(t, 0, *item.Prices.Half, "an explicit 0 is a real price, not absence")
	require.NotNil(t, item.Prices.Full)
	assert.Equal(t, 60, *item.Prices.Full)
}

func TestNormalizeFastFood_AbsentTiers(t *testing.T) {
	item, err := NormalizeFastFood(ItemPayload{
		ID:       "ff10",
		Name:     "Paneer Roll",
		Category: "Rolls",
	})
	require.NoError(t, err)
	assert.Nil(t, item.Prices.Half)
	assert.Nil(t, item.Prices.Full)
}

func TestNormalizeFastFood_InvalidTiersBecomeNil(t *testing.T) {
	item, err := NormalizeFastFood(ItemPayload{
		ID:       "ff11",
		Name:     "Fries",
		Category: "Snacks",
		Prices:   &TiersPayload{Half: "n/a", Full: float64(-10)},
	})
	require.NoError(t, err)
	assert.Nil(t, item.Prices.Half)
	assert.Nil(t, item.Prices.Full)
}

func TestNormalizeFastFood_MissingFields(t *testing.T) {
	_, err := NormalizeFastFood(ItemPayload{ID: "ff12", Category: "Snacks"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestProductForUpdate_NoValidation(t *testing.T) {
	item := ProductForUpdate("cake1", ItemPayload{Name: "Renamed", Price: "oops"})
	assert.Equal(t, "cake1", item.ID, "path id wins over any body id")
	assert.Equal(t, "Renamed", item.Name)
	assert.Equal(t, 0, item.Price, "unparseable price collapses to 0 on update")
}

func TestFastFoodForUpdate_ClearsTiers(t *testing.T) {
	item := FastFoodForUpdate("ff1", ItemPayload{Name: "Momos", Category: "Momos"})
	assert.Nil(t, item.Prices.Half)
	assert.Nil(t, item.Prices.Full)
}
