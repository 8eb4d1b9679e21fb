package impl

import (
	"context"
	"log/slog"

	deliverycontext "darkstore/internal/delivery/context"
	"darkstore/internal/domain/entity"
	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/repository"
	"darkstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	orderRepo    repository.OrderRepository
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	orderRepo repository.OrderRepository,
	favoriteRepo repository.FavoriteRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		orderRepo:    orderRepo,
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrderHistory returns the shopper's past orders, newest first.
func (srv *profileService) GetOrderHistory(ctx context.Context, email string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Error("Failed to get order history", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get order history")
	}

	return orders, nil
}

// ListFavorites resolves the shopper's favorited products. Products removed
// from the catalog since they were favorited are skipped silently.
func (srv *profileService) ListFavorites(ctx context.Context, token uuid.UUID) ([]*entity.Product, error) {
	productIDs, err := srv.favoriteRepo.FindByToken(ctx, token)
	if err != nil {
		srv.log(ctx).Error("Failed to list favorites", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list favorites")
	}

	products := make([]*entity.Product, 0, len(productIDs))
	for _, productID := range productIDs {
		product, err := srv.productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to resolve favorite product")
		}
		products = append(products, product)
	}

	return products, nil
}

// AddFavorite puts a product into the favorite set; duplicates are a no-op.
func (srv *profileService) AddFavorite(ctx context.Context, token uuid.UUID, productID uuid.UUID) error {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product")
	}

	if err := srv.favoriteRepo.Add(ctx, token, productID); err != nil {
		srv.log(ctx).Error("Failed to add favorite", slog.Any("error", err), slog.Any("product_id", productID))

		return errors.Wrap(err, "failed to add favorite")
	}

	return nil
}

// RemoveFavorite drops a product from the favorite set.
func (srv *profileService) RemoveFavorite(ctx context.Context, token uuid.UUID, productID uuid.UUID) error {
	if err := srv.favoriteRepo.Remove(ctx, token, productID); err != nil {
		srv.log(ctx).Error("Failed to remove favorite", slog.Any("error", err), slog.Any("product_id", productID))

		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}
