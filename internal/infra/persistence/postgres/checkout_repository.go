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

// checkoutRepository implements the repository.CheckoutRepository interface.
type checkoutRepository struct {
	db *gorm.DB
}

// NewCheckoutRepository is the constructor for checkoutRepository.
func NewCheckoutRepository(db *gorm.DB) repository.CheckoutRepository {
	return &checkoutRepository{
		db: db,
	}
}

// FindByCartToken retrieves the current session for a cart.
func (repo *checkoutRepository) FindByCartToken(ctx context.Context, cartToken uuid.UUID) (*entity.CheckoutSession, error) {
	var sessionM model.CheckoutSessionModel

	if err := repo.db.WithContext(ctx).
		Where("cart_token = ?", cartToken).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckoutNotFound
		}

		return nil, errors.Wrap(err, "failed to find checkout session")
	}

	return toCheckoutDomain(&sessionM), nil
}

// Save upserts the session, keyed by cart token.
func (repo *checkoutRepository) Save(ctx context.Context, session *entity.CheckoutSession) error {
	sessionM := fromCheckoutDomain(session)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_token"}},
			// created_at is part of the assignment set: the upsert replaces the
			// whole session, and a restarted checkout must not inherit the
			// previous run's creation time.
			DoUpdates: clause.AssignmentColumns([]string{
				"step", "name", "email", "phone", "telegram",
				"city", "address", "failure_reason", "created_at", "updated_at",
			}),
		}).
		Create(sessionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save checkout session")
	}

	return nil
}

// Delete removes the session.
func (repo *checkoutRepository) Delete(ctx context.Context, cartToken uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_token = ?", cartToken).
		Delete(&model.CheckoutSessionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete checkout session")
	}

	return nil
}

// --- Mapper Functions ---

// toCheckoutDomain converts a GORM CheckoutSessionModel to a domain CheckoutSession entity.
func toCheckoutDomain(data *model.CheckoutSessionModel) *entity.CheckoutSession {
	if data == nil {
		return nil
	}

	return &entity.CheckoutSession{
		CartToken: data.CartToken,
		Step:      entity.CheckoutStep(data.Step),
		Contact: entity.CheckoutContact{
			Name:     data.Name,
			Email:    data.Email,
			Phone:    data.Phone,
			Telegram: data.Telegram,
		},
		Delivery: entity.CheckoutDelivery{
			City:    data.City,
			Address: data.Address,
		},
		FailureReason: data.FailureReason,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromCheckoutDomain converts a domain CheckoutSession entity to a GORM CheckoutSessionModel.
func fromCheckoutDomain(data *entity.CheckoutSession) *model.CheckoutSessionModel {
	if data == nil {
		return nil
	}

	return &model.CheckoutSessionModel{
		CartToken:     data.CartToken,
		Step:          string(data.Step),
		Name:          data.Contact.Name,
		Email:         data.Contact.Email,
		Phone:         data.Contact.Phone,
		Telegram:      data.Contact.Telegram,
		City:          data.Delivery.City,
		Address:       data.Delivery.Address,
		FailureReason: data.FailureReason,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
