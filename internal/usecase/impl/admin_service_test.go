package impl

import (
	"context"
	"testing"
	"time"

	"darkstore/config"
	"darkstore/internal/domain/entity"
	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/repository"
	mockRepo "darkstore/internal/mocks/repository"
	mockSvc "darkstore/internal/mocks/service"
	"darkstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminMocks struct {
	orderRepo     *mockRepo.MockOrderRepository
	messageRepo   *mockRepo.MockMessageRepository
	productRepo   *mockRepo.MockProductRepository
	analyticsRepo *mockRepo.MockAnalyticsRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenSvc      *mockSvc.MockTokenService
}

func newAdminService(t *testing.T) (usecase.AdminUsecase, *adminMocks) {
	t.Helper()

	mocks := &adminMocks{
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		messageRepo:   mockRepo.NewMockMessageRepository(t),
		productRepo:   mockRepo.NewMockProductRepository(t),
		analyticsRepo: mockRepo.NewMockAnalyticsRepository(t),
		hasher:        mockSvc.NewMockPasswordHasher(t),
		tokenSvc:      mockSvc.NewMockTokenService(t),
	}

	cfg := &config.Config{
		Admin: &config.AdminConfig{PasswordHash: "$2a$10$stored-hash"},
	}

	svc, err := NewAdminService(
		cfg,
		mocks.orderRepo,
		mocks.messageRepo,
		mocks.productRepo,
		mocks.analyticsRepo,
		mocks.hasher,
		mocks.tokenSvc,
		discardLogger(),
	)
	require.NoError(t, err)

	return svc, mocks
}

func TestNewAdminService_MissingPasswordHash(t *testing.T) {
	cfg := &config.Config{Admin: &config.AdminConfig{}}

	svc, err := NewAdminService(
		cfg,
		mockRepo.NewMockOrderRepository(t),
		mockRepo.NewMockMessageRepository(t),
		mockRepo.NewMockProductRepository(t),
		mockRepo.NewMockAnalyticsRepository(t),
		mockSvc.NewMockPasswordHasher(t),
		mockSvc.NewMockTokenService(t),
		discardLogger(),
	)

	assert.Nil(t, svc)
	assert.Error(t, err)
}

func TestAdminService_Login_Success(t *testing.T) {
	svc, mocks := newAdminService(t)

	ctx := context.Background()

	mocks.hasher.EXPECT().Check("correct-password", "$2a$10$stored-hash").Return(true)
	mocks.tokenSvc.EXPECT().GenerateAdminToken().Return("signed-token", nil)
	mocks.tokenSvc.EXPECT().TokenDuration().Return(24 * time.Hour)

	session, err := svc.Login(ctx, "correct-password")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", session.Token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	svc, mocks := newAdminService(t)

	ctx := context.Background()

	mocks.hasher.EXPECT().Check("wrong", "$2a$10$stored-hash").Return(false)

	session, err := svc.Login(ctx, "wrong")

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_GetDashboard(t *testing.T) {
	svc, mocks := newAdminService(t)

	ctx := context.Background()

	mocks.orderRepo.EXPECT().FindAll(ctx).Return([]*entity.Order{{ID: 1}, {ID: 2}}, nil)
	mocks.messageRepo.EXPECT().FindAll(ctx).Return([]*entity.ContactMessage{{ID: 5}}, nil)
	mocks.productRepo.EXPECT().FindAll(ctx).Return([]*entity.Product{{ID: uuid.New()}}, nil)

	dashboard, err := svc.GetDashboard(ctx)

	require.NoError(t, err)
	assert.Len(t, dashboard.Orders, 2)
	assert.Len(t, dashboard.Messages, 1)
	assert.Len(t, dashboard.Products, 1)
}

func TestAdminService_UpdateOrderStatus_CompletedAlias(t *testing.T) {
	svc, mocks := newAdminService(t)

	ctx := context.Background()

	mocks.orderRepo.EXPECT().UpdateStatus(ctx, int64(42), entity.OrderStatusDelivered).Return(nil)

	err := svc.UpdateOrderStatus(ctx, 42, "completed")

	assert.NoError(t, err)
}

func TestAdminService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	svc, _ := newAdminService(t)

	err := svc.UpdateOrderStatus(context.Background(), 42, "teleported")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestAdminService_UpdateOrderStatus_OrderNotFound(t *testing.T) {
	svc, mocks := newAdminService(t)

	ctx := context.Background()

	mocks.orderRepo.EXPECT().UpdateStatus(ctx, int64(99), entity.OrderStatusProcessing).Return(repository.ErrOrderNotFound)

	err := svc.UpdateOrderStatus(ctx, 99, "processing")

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestAdminService_DeleteOrder_NotFound(t *testing.T) {
	svc, mocks := newAdminService(t)

	ctx := context.Background()

	mocks.orderRepo.EXPECT().Delete(ctx, int64(99)).Return(repository.ErrOrderNotFound)

	err := svc.DeleteOrder(ctx, 99)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestAdminService_DeleteMessage_NotFound(t *testing.T) {
	svc, mocks := newAdminService(t)

	ctx := context.Background()

	mocks.messageRepo.EXPECT().Delete(ctx, int64(7)).Return(repository.ErrMessageNotFound)

	err := svc.DeleteMessage(ctx, 7)

	assert.ErrorIs(t, err, domainerrors.ErrMessageNotFound)
}

func TestAdminService_CreateProduct(t *testing.T) {
	svc, mocks := newAdminService(t)

	ctx := context.Background()
	input := usecase.ProductInput{
		Name:     "Куртка DARK",
		Price:    4500,
		Category: "outerwear",
		Sizes:    []string{"S", "M", "L"},
	}

	mocks.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := svc.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Куртка DARK", product.Name)
	assert.Equal(t, []string{"S", "M", "L"}, product.Sizes)
	assert.True(t, product.InStock, "omitted in_stock defaults to available")
}

func TestAdminService_CreateProduct_ExplicitOutOfStock(t *testing.T) {
	svc, mocks := newAdminService(t)

	ctx := context.Background()
	outOfStock := false
	input := usecase.ProductInput{
		Name:     "Куртка DARK",
		Price:    4500,
		Category: "outerwear",
		InStock:  &outOfStock,
	}

	var created *entity.Product

	mocks.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			product.ID = uuid.New()
			created = product
		}).
		Return(nil)

	product, err := svc.CreateProduct(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.False(t, created.InStock, "explicit in_stock=false must reach the repository")
	assert.False(t, product.InStock)
}

func TestAdminService_UpdateProduct_NotFound(t *testing.T) {
	svc, mocks := newAdminService(t)

	ctx := context.Background()
	productID := uuid.New()

	mocks.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrProductNotFound)

	product, err := svc.UpdateProduct(ctx, productID, usecase.ProductInput{Name: "Худи STORE", Category: "hoodies"})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestAdminService_UpdateProduct_ReturnsFreshCopy(t *testing.T) {
	svc, mocks := newAdminService(t)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Product{ID: productID, Name: "Худи STORE", Price: 4900, Category: "hoodies"}

	mocks.productRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	mocks.productRepo.EXPECT().FindByID(ctx, productID).Return(stored, nil)

	product, err := svc.UpdateProduct(ctx, productID, usecase.ProductInput{Name: "Худи STORE", Price: 4900, Category: "hoodies"})

	require.NoError(t, err)
	assert.Equal(t, stored, product)
}

func TestAdminService_UpdateProduct_OmittedStockFlagKeepsProductAvailable(t *testing.T) {
	svc, mocks := newAdminService(t)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Product{ID: productID, Name: "Худи STORE", Price: 4900, Category: "hoodies", InStock: true}

	var updated *entity.Product

	mocks.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			updated = product
		}).
		Return(nil)
	mocks.productRepo.EXPECT().FindByID(ctx, productID).Return(stored, nil)

	_, err := svc.UpdateProduct(ctx, productID, usecase.ProductInput{Name: "Худи STORE", Price: 4900, Category: "hoodies"})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.InStock, "a PUT body without in_stock must not mark the product sold out")
}

func TestAdminService_GetStatistics(t *testing.T) {
	svc, mocks := newAdminService(t)

	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	mocks.analyticsRepo.EXPECT().CountByType(ctx, entity.AnalyticsEventPageView, from, to).Return(int64(1200), nil)
	mocks.analyticsRepo.EXPECT().CountByType(ctx, entity.AnalyticsEventAddToCart, from, to).Return(int64(85), nil)

	stats, err := svc.GetStatistics(ctx, from, to)

	require.NoError(t, err)
	assert.Equal(t, int64(1200), stats.PageViews)
	assert.Equal(t, int64(85), stats.AddToCart)
	assert.Equal(t, from, stats.PeriodStart)
	assert.Equal(t, to, stats.PeriodEnd)
}
