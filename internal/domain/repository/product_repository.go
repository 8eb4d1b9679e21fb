// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"darkstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalog persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAll retrieves the full catalog, newest first.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindInStock retrieves only products currently available for sale, newest first.
	FindInStock(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces an existing product's editable fields.
	Update(ctx context.Context, product *entity.Product) error
}
