package usecase

import (
	"context"

	"darkstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase serves the shopper-facing profile page: order history by
// email and the favorites list tied to the cart token.
type ProfileUsecase interface {
	// GetOrderHistory returns the shopper's past orders, newest first.
	GetOrderHistory(ctx context.Context, email string) ([]*entity.Order, error)

	// ListFavorites resolves the shopper's favorited products. Favorites
	// whose product has been removed from the catalog are skipped.
	ListFavorites(ctx context.Context, token uuid.UUID) ([]*entity.Product, error)

	// AddFavorite puts a product into the favorite set; duplicates are a no-op.
	AddFavorite(ctx context.Context, token uuid.UUID, productID uuid.UUID) error

	// RemoveFavorite drops a product from the favorite set.
	RemoveFavorite(ctx context.Context, token uuid.UUID, productID uuid.UUID) error
}
