package impl

import (
	"context"
	"testing"

	"darkstore/internal/domain/entity"
	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/repository"
	mockRepo "darkstore/internal/mocks/repository"
	"darkstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockOrderRepository, *mockRepo.MockFavoriteRepository, *mockRepo.MockProductRepository) {
	t.Helper()

	orderRepo := mockRepo.NewMockOrderRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewProfileService(orderRepo, favoriteRepo, productRepo, discardLogger())

	return service, orderRepo, favoriteRepo, productRepo
}

func TestProfileService_GetOrderHistory(t *testing.T) {
	service, orderRepo, _, _ := newProfileService(t)

	ctx := context.Background()
	orders := []*entity.Order{
		{ID: 2, Email: "anna@example.com", Status: entity.OrderStatusShipped},
		{ID: 1, Email: "anna@example.com", Status: entity.OrderStatusDelivered},
	}

	orderRepo.EXPECT().FindByEmail(ctx, "anna@example.com").Return(orders, nil)

	got, err := service.GetOrderHistory(ctx, "anna@example.com")

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestProfileService_ListFavorites_SkipsRemovedProducts(t *testing.T) {
	service, _, favoriteRepo, productRepo := newProfileService(t)

	ctx := context.Background()
	token := uuid.New()
	keptID := uuid.New()
	removedID := uuid.New()
	kept := &entity.Product{ID: keptID, Name: "Куртка DARK", Price: 4500}

	favoriteRepo.EXPECT().FindByToken(ctx, token).Return([]uuid.UUID{keptID, removedID}, nil)
	productRepo.EXPECT().FindByID(ctx, keptID).Return(kept, nil)
	productRepo.EXPECT().FindByID(ctx, removedID).Return(nil, repository.ErrProductNotFound)

	products, err := service.ListFavorites(ctx, token)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, keptID, products[0].ID)
}

func TestProfileService_ListFavorites_Empty(t *testing.T) {
	service, _, favoriteRepo, _ := newProfileService(t)

	ctx := context.Background()
	token := uuid.New()

	favoriteRepo.EXPECT().FindByToken(ctx, token).Return([]uuid.UUID{}, nil)

	products, err := service.ListFavorites(ctx, token)

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProfileService_AddFavorite_Success(t *testing.T) {
	service, _, favoriteRepo, productRepo := newProfileService(t)

	ctx := context.Background()
	token := uuid.New()
	productID := uuid.New()

	productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	favoriteRepo.EXPECT().Add(ctx, token, productID).Return(nil)

	err := service.AddFavorite(ctx, token, productID)

	assert.NoError(t, err)
}

func TestProfileService_AddFavorite_UnknownProduct(t *testing.T) {
	service, _, _, productRepo := newProfileService(t)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	err := service.AddFavorite(ctx, uuid.New(), productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProfileService_RemoveFavorite(t *testing.T) {
	service, _, favoriteRepo, _ := newProfileService(t)

	ctx := context.Background()
	token := uuid.New()
	productID := uuid.New()

	favoriteRepo.EXPECT().Remove(ctx, token, productID).Return(nil)

	err := service.RemoveFavorite(ctx, token, productID)

	assert.NoError(t, err)
}
