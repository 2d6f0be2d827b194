// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bakehouse/internal/domain/entity"
)

// Sentinel errors shared by every storage engine. Implementations must
// normalize their native failures into these so callers never see
// engine-specific errors.
var (
	// ErrNotFound is returned by FindByID when no record has the id.
	// Absence is a valid, non-error outcome for callers; they render null.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID is returned by Create when the id is already taken
	// within the item kind's namespace.
	ErrDuplicateID = errors.New("id already exists")
)

// ProductRepository persists simple single-price products keyed by their
// caller-supplied id.
//
// Create and Update stamp UpdatedAt on the passed entity; Create also
// stamps CreatedAt. Update is full-field replace and reports success even
// when the id does not exist; Delete is idempotent the same way.
type ProductRepository interface {
	// List returns all products ordered newest-created first. An empty
	// store yields an empty slice, never an error.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Create persists a new product, or ErrDuplicateID.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces every mutable field of the product with the given id.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product with the given id, if present.
	Delete(ctx context.Context, id string) error

	// Count reports the number of stored products (used by catalog seeding).
	Count(ctx context.Context) (int64, error)
}
