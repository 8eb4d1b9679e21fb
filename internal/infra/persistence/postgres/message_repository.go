package postgres

import (
	"context"

	"darkstore/internal/domain/entity"
	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/repository"
	"darkstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new contact message.
func (repo *messageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact message")
	}

	// Update the entity with generated values
	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindAll retrieves all messages, newest first.
func (repo *messageRepository) FindAll(ctx context.Context) ([]*entity.ContactMessage, error) {
	var messageModels []*model.ContactMessageModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find contact messages")
	}

	messages := make([]*entity.ContactMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// Delete removes a message.
func (repo *messageRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContactMessageModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete contact message")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM ContactMessageModel to a domain ContactMessage entity.
func toMessageDomain(data *model.ContactMessageModel) *entity.ContactMessage {
	if data == nil {
		return nil
	}

	return &entity.ContactMessage{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}

// fromMessageDomain converts a domain ContactMessage entity to a GORM ContactMessageModel.
func fromMessageDomain(data *entity.ContactMessage) *model.ContactMessageModel {
	if data == nil {
		return nil
	}

	return &model.ContactMessageModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}
