package postgres

import (
	"context"

	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/repository"
	"darkstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// FindByToken returns the favorited product IDs for a shopper, oldest first.
func (repo *favoriteRepository) FindByToken(ctx context.Context, token uuid.UUID) ([]uuid.UUID, error) {
	var productIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("cart_token = ?", token).
		Order("created_at ASC").
		Pluck("product_id", &productIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by token")
	}

	return productIDs, nil
}

// Add inserts a product into the shopper's favorite set. Re-adding an
// already-favorited product is a no-op.
func (repo *favoriteRepository) Add(ctx context.Context, token, productID uuid.UUID) error {
	favoriteM := &model.FavoriteModel{
		CartToken: token,
		ProductID: productID,
	}

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	return nil
}

// Remove deletes a product from the shopper's favorite set. Removing an
// absent product is a no-op.
func (repo *favoriteRepository) Remove(ctx context.Context, token, productID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_token = ? AND product_id = ?", token, productID).
		Delete(&model.FavoriteModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}
