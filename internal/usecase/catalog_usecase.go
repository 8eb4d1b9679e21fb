// Package usecase defines the application-layer interfaces and their
// input/output types. Delivery depends on these interfaces, never on the
// implementations in impl.
package usecase

import (
	"context"

	"darkstore/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase defines the read-side catalog operations available to shoppers.
type CatalogUsecase interface {
	// ListProducts returns the catalog, newest first. When inStockOnly is
	// set, sold-out items are filtered out.
	ListProducts(ctx context.Context, inStockOnly bool) ([]*entity.Product, error)

	// GetProduct returns a single product.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
