// Package catalog is the pure shape-conversion layer between the storefront
// wire format and the domain entities. It owns required-field validation,
// numeric coercion and price-tier semantics; it performs no I/O, so every
// storage engine shares this single code path.
package catalog

import (
	"strings"

	"github.com/spf13/cast"

	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
)

// ItemPayload is the wire shape of both item kinds. Price fields are typed
// loosely because the admin form submits them as numbers or numeric
// strings; the normalizer settles the type.
type ItemPayload struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       any           `json:"price"`
	Category    string        `json:"category"`
	Image       string        `json:"image"`
	Prices      *TiersPayload `json:"prices"`
}

// TiersPayload carries the nested half/full tier fields of a
// variant-priced item.
type TiersPayload struct {
	Half any `json:"half"`
	Full any `json:"full"`
}

// NormalizeProduct validates and converts a wire payload into a Product entity.
// The id, name, category and a positive price are required; anything else
// is optional. Timestamps are left to the repository.
func NormalizeProduct(payload ItemPayload) (*entity.Product, error) {
	price, ok := coercePrice(payload.Price)
	if payload.ID == "" || strings.TrimSpace(payload.Name) == "" || payload.Category == "" || !ok || price <= 0 {
		return nil, domainerrors.ErrMissingFields
	}

	return &entity.Product{
		ID:          payload.ID,
		Name:        payload.Name,
		Description: payload.Description,
		Price:       price,
		Category:    payload.Category,
		Image:       payload.Image,
	}, nil
}

// NormalizeFastFood validates and converts a wire payload into a FastFoodItem
// entity. The id, name and category are required. Each price tier is
// coerced independently: an absent or unparseable tier becomes nil
// ("not offered"), while an explicit 0 stays 0 — the two states are
// distinct and must not be conflated.
func NormalizeFastFood(payload ItemPayload) (*entity.FastFoodItem, error) {
	if payload.ID == "" || strings.TrimSpace(payload.Name) == "" || payload.Category == "" {
		return nil, domainerrors.ErrMissingFields
	}

	return &entity.FastFoodItem{
		ID:       payload.ID,
		Name:     payload.Name,
		Category: payload.Category,
		Image:    payload.Image,
		Prices:   Tiers(payload.Prices),
	}, nil
}

// Tiers converts the nested wire tiers into PriceTiers. A nil payload
// yields two absent tiers.
func Tiers(payload *TiersPayload) entity.PriceTiers {
	if payload == nil {
		return entity.PriceTiers{}
	}

	return entity.PriceTiers{
		Half: coerceTier(payload.Half),
		Full: coerceTier(payload.Full),
	}
}

// coercePrice turns a loosely typed price value into an int. JSON numbers
// arrive as float64; the admin form may also submit numeric strings.
func coercePrice(value any) (int, bool) {
	if value == nil {
		return 0, false
	}
	if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
		return 0, false
	}

	price, err := cast.ToIntE(value)
	if err != nil {
		return 0, false
	}

	return price, true
}

// coerceTier is coercePrice for an optional tier: failures map to nil
// rather than an error, and negative values are not representable.
func coerceTier(value any) *int {
	price, ok := coercePrice(value)
	if !ok || price < 0 {
		return nil
	}

	return &price
}

// ProductForUpdate shapes a wire payload into the replacement state for an
// existing product. Updates are full replacements driven by the admin edit
// form, so no required-field validation applies; an unparseable price
// collapses to 0.
func ProductForUpdate(id string, payload ItemPayload) *entity.Product {
	price, _ := coercePrice(payload.Price)

	return &entity.Product{
		ID:          id,
		Name:        payload.Name,
		Description: payload.Description,
		Price:       price,
		Category:    payload.Category,
		Image:       payload.Image,
	}
}

// FastFoodForUpdate is ProductForUpdate for variant-priced items.
func FastFoodForUpdate(id string, payload ItemPayload) *entity.FastFoodItem {
	return &entity.FastFoodItem{
		ID:       id,
		Name:     payload.Name,
		Category: payload.Category,
		Image:    payload.Image,
		Prices:   Tiers(payload.Prices),
	}
}
