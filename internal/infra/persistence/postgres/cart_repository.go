package postgres

import (
	"context"

	"darkstore/internal/domain/entity"
	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/repository"
	"darkstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindByToken retrieves a cart with its lines.
func (repo *cartRepository) FindByToken(ctx context.Context, token uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("token = ?", token).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by token")
	}

	return toCartDomain(&cartM), nil
}

// Save upserts the cart row and replaces its line set wholesale. Carts hold
// a handful of lines at most, so a delete-and-insert keeps the write path
// free of per-line diffing.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).Omit("Lines").Create(&model.CartModel{Token: cartM.Token}).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_token = ?", cartM.Token).
			Delete(&model.CartLineModel{}).Error; err != nil {
			return err
		}

		if len(cartM.Lines) == 0 {
			return nil
		}

		return tx.Create(&cartM.Lines).Error
	})
	if err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid cart line")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	return nil
}

// Delete removes a cart; its lines go with it via the cascade constraint.
func (repo *cartRepository) Delete(ctx context.Context, token uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.CartModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	lines := make([]entity.CartLine, 0, len(data.Lines))
	for _, lineM := range data.Lines {
		lines = append(lines, entity.CartLine{
			ProductID: lineM.ProductID,
			Name:      lineM.Name,
			Price:     lineM.Price,
			Size:      lineM.Size,
			Quantity:  lineM.Quantity,
		})
	}

	return &entity.Cart{
		Token:     data.Token,
		Lines:     lines,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCartDomain converts a domain Cart entity to a GORM CartModel.
func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	lines := make([]model.CartLineModel, 0, len(data.Lines))
	for _, line := range data.Lines {
		lines = append(lines, model.CartLineModel{
			CartToken: data.Token,
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Size:      line.Size,
			Quantity:  line.Quantity,
		})
	}

	return &model.CartModel{
		Token:     data.Token,
		Lines:     lines,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
