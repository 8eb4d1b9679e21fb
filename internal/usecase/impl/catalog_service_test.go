package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"darkstore/internal/domain/entity"
	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/repository"
	mockRepo "darkstore/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCatalogService_ListProducts_All(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(productRepo, discardLogger())

	ctx := context.Background()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Куртка DARK", Price: 4500, InStock: true},
		{ID: uuid.New(), Name: "Худи STORE", Price: 4900, InStock: false},
	}

	productRepo.EXPECT().FindAll(ctx).Return(products, nil)

	got, err := service.ListProducts(ctx, false)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogService_ListProducts_InStockOnly(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(productRepo, discardLogger())

	ctx := context.Background()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Куртка DARK", Price: 4500, InStock: true},
	}

	productRepo.EXPECT().FindInStock(ctx).Return(products, nil)

	got, err := service.ListProducts(ctx, true)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.True(t, got[0].InStock)
}

func TestCatalogService_GetProduct_Success(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(productRepo, discardLogger())

	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Куртка DARK", Price: 4500, Sizes: []string{"S", "M", "L", "XL"}}

	productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)

	got, err := service.GetProduct(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, productID, got.ID)
	assert.Equal(t, int64(4500), got.Price)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(productRepo, discardLogger())

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	got, err := service.GetProduct(ctx, productID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
