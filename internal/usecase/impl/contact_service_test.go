package impl

import (
	"context"
	"testing"

	"darkstore/internal/domain/entity"
	mockRepo "darkstore/internal/mocks/repository"
	mockSvc "darkstore/internal/mocks/service"
	"darkstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactService_SubmitMessage_Success(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	notifier := mockSvc.NewMockOrderNotifier(t)
	service := NewContactService(messageRepo, notifier, discardLogger())

	ctx := context.Background()
	input := usecase.ContactMessageInput{
		Name:    "Анна",
		Email:   "anna@example.com",
		Message: "Когда будет ресток худи?",
	}

	messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContactMessage")).
		Run(func(_ context.Context, message *entity.ContactMessage) {
			message.ID = 11
		}).
		Return(nil)
	notifier.EXPECT().NotifyContactMessage(ctx, mock.AnythingOfType("*entity.ContactMessage")).Return(nil)

	message, err := service.SubmitMessage(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), message.ID)
	assert.Equal(t, "Анна", message.Name)
}

func TestContactService_SubmitMessage_NotifierFailureIsNotFatal(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	notifier := mockSvc.NewMockOrderNotifier(t)
	service := NewContactService(messageRepo, notifier, discardLogger())

	ctx := context.Background()

	messageRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ContactMessage")).Return(nil)
	notifier.EXPECT().
		NotifyContactMessage(ctx, mock.AnythingOfType("*entity.ContactMessage")).
		Return(errors.New("telegram unreachable"))

	message, err := service.SubmitMessage(ctx, usecase.ContactMessageInput{
		Name:    "Анна",
		Email:   "anna@example.com",
		Message: "Привет",
	})

	require.NoError(t, err)
	assert.NotNil(t, message)
}

func TestContactService_SubmitMessage_StoreError(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	notifier := mockSvc.NewMockOrderNotifier(t)
	service := NewContactService(messageRepo, notifier, discardLogger())

	ctx := context.Background()

	messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContactMessage")).
		Return(errors.New("connection reset"))

	message, err := service.SubmitMessage(ctx, usecase.ContactMessageInput{
		Name:    "Анна",
		Email:   "anna@example.com",
		Message: "Привет",
	})

	assert.Nil(t, message)
	assert.Error(t, err)
}
