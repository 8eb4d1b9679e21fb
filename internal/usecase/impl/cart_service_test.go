package impl

import (
	"context"
	"testing"

	"darkstore/internal/domain/entity"
	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/repository"
	"darkstore/internal/domain/service"
	mockRepo "darkstore/internal/mocks/repository"
	mockService "darkstore/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newCartMocks wires a transaction manager whose Execute runs the callback
// against a factory backed by the given cart repository.
func newCartMocks(t *testing.T, cartRepo repository.CartRepository) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().CartRepo().Return(cartRepo)

			return fn(factory)
		}).
		Maybe()

	return txManager
}

// newCartPublisher accepts any add_to_cart publish; tracking is fire-and-forget
// so tests only pin it down where the event itself is under test.
func newCartPublisher(t *testing.T) *mockService.MockEventPublisher {
	t.Helper()

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishAnalyticsEvent(mock.Anything, mock.AnythingOfType("*service.AnalyticsEventMessage")).
		Return(nil).
		Maybe()

	return publisher
}

func TestCartService_GetCart_UnknownToken(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	cartService := NewCartService(txManager, cartRepo, productRepo, newCartPublisher(t), discardLogger())

	ctx := context.Background()
	token := uuid.New()

	cartRepo.EXPECT().FindByToken(ctx, token).Return(nil, repository.ErrCartNotFound)

	view, err := cartService.GetCart(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, token, view.Token)
	assert.Empty(t, view.Lines)
	assert.Equal(t, int64(0), view.Total)
	assert.Equal(t, 0, view.ItemCount)
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := newCartMocks(t, cartRepo)
	cartService := NewCartService(txManager, cartRepo, productRepo, newCartPublisher(t), discardLogger())

	ctx := context.Background()
	token := uuid.New()
	product := &entity.Product{
		ID:      uuid.New(),
		Name:    "Куртка DARK",
		Price:   4500,
		Sizes:   []string{"S", "M", "L"},
		InStock: true,
	}

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	cartRepo.EXPECT().FindByToken(ctx, token).Return(nil, repository.ErrCartNotFound)
	cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	view, err := cartService.AddItem(ctx, token, product.ID, "M")

	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "M", view.Lines[0].Size)
	assert.Equal(t, 1, view.Lines[0].Quantity)
	assert.Equal(t, int64(4500), view.Total)
}

func TestCartService_AddItem_PublishesAddToCartEvent(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := newCartMocks(t, cartRepo)
	publisher := mockService.NewMockEventPublisher(t)
	cartService := NewCartService(txManager, cartRepo, productRepo, publisher, discardLogger())

	ctx := context.Background()
	token := uuid.New()
	product := &entity.Product{
		ID:      uuid.New(),
		Name:    "Куртка DARK",
		Price:   4500,
		Sizes:   []string{"S", "M"},
		InStock: true,
	}

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	cartRepo.EXPECT().FindByToken(ctx, token).Return(nil, repository.ErrCartNotFound)
	cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	var published *service.AnalyticsEventMessage

	publisher.EXPECT().
		PublishAnalyticsEvent(mock.Anything, mock.AnythingOfType("*service.AnalyticsEventMessage")).
		Run(func(_ context.Context, event *service.AnalyticsEventMessage) {
			published = event
		}).
		Return(nil)

	_, err := cartService.AddItem(ctx, token, product.ID, "M")

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, string(entity.AnalyticsEventAddToCart), published.EventType)
	assert.Equal(t, product.ID.String(), published.EventData["product_id"])
	assert.Equal(t, "M", published.EventData["size"])
}

func TestCartService_AddItem_PublishFailureDoesNotFailMutation(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := newCartMocks(t, cartRepo)
	publisher := mockService.NewMockEventPublisher(t)
	cartService := NewCartService(txManager, cartRepo, productRepo, publisher, discardLogger())

	ctx := context.Background()
	token := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Худи STORE", Price: 4900, InStock: true}

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	cartRepo.EXPECT().FindByToken(ctx, token).Return(nil, repository.ErrCartNotFound)
	cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)
	publisher.EXPECT().
		PublishAnalyticsEvent(mock.Anything, mock.AnythingOfType("*service.AnalyticsEventMessage")).
		Return(errors.New("broker unavailable"))

	view, err := cartService.AddItem(ctx, token, product.ID, "")

	require.NoError(t, err)
	assert.Equal(t, 1, view.ItemCount)
}

func TestCartService_AddItem_MergesSameProductAndSize(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := newCartMocks(t, cartRepo)
	cartService := NewCartService(txManager, cartRepo, productRepo, newCartPublisher(t), discardLogger())

	ctx := context.Background()
	token := uuid.New()
	product := &entity.Product{
		ID:      uuid.New(),
		Name:    "Худи STORE",
		Price:   4900,
		Sizes:   []string{"M", "L"},
		InStock: true,
	}
	existing := &entity.Cart{
		Token: token,
		Lines: []entity.CartLine{
			{ProductID: product.ID, Name: product.Name, Price: product.Price, Size: "M", Quantity: 2},
			{ProductID: product.ID, Name: product.Name, Price: product.Price, Size: "L", Quantity: 1},
		},
	}

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	cartRepo.EXPECT().FindByToken(ctx, token).Return(existing, nil)
	cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	view, err := cartService.AddItem(ctx, token, product.ID, "M")

	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, 3, view.Lines[0].Quantity)
	assert.Equal(t, 1, view.Lines[1].Quantity)
	assert.Equal(t, 4, view.ItemCount)
	assert.Equal(t, int64(4900*4), view.Total)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	cartService := NewCartService(txManager, cartRepo, productRepo, newCartPublisher(t), discardLogger())

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	view, err := cartService.AddItem(ctx, uuid.New(), productID, "M")

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_OutOfStock(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	cartService := NewCartService(txManager, cartRepo, productRepo, newCartPublisher(t), discardLogger())

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Куртка DARK", Price: 4500, InStock: false}

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	view, err := cartService.AddItem(ctx, uuid.New(), product.ID, "")

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrProductOutOfStock)
}

func TestCartService_AddItem_InvalidSize(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	cartService := NewCartService(txManager, cartRepo, productRepo, newCartPublisher(t), discardLogger())

	ctx := context.Background()
	product := &entity.Product{
		ID:      uuid.New(),
		Name:    "Куртка DARK",
		Price:   4500,
		Sizes:   []string{"S", "M"},
		InStock: true,
	}

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	view, err := cartService.AddItem(ctx, uuid.New(), product.ID, "XXL")

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSize)
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := newCartMocks(t, cartRepo)
	cartService := NewCartService(txManager, cartRepo, productRepo, newCartPublisher(t), discardLogger())

	ctx := context.Background()
	token := uuid.New()
	productID := uuid.New()
	existing := &entity.Cart{
		Token: token,
		Lines: []entity.CartLine{
			{ProductID: productID, Name: "Худи STORE", Price: 4900, Size: "M", Quantity: 2},
		},
	}

	cartRepo.EXPECT().FindByToken(ctx, token).Return(existing, nil)
	cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	view, err := cartService.UpdateQuantity(ctx, token, productID, "M", 0)

	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, int64(0), view.Total)
}

func TestCartService_RemoveItem_AbsentLineIsNoop(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := newCartMocks(t, cartRepo)
	cartService := NewCartService(txManager, cartRepo, productRepo, newCartPublisher(t), discardLogger())

	ctx := context.Background()
	token := uuid.New()
	productID := uuid.New()
	existing := &entity.Cart{
		Token: token,
		Lines: []entity.CartLine{
			{ProductID: productID, Name: "Худи STORE", Price: 4900, Size: "M", Quantity: 1},
		},
	}

	cartRepo.EXPECT().FindByToken(ctx, token).Return(existing, nil)
	cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	view, err := cartService.RemoveItem(ctx, token, uuid.New(), "M")

	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)
}

func TestCartService_ClearCart(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := newCartMocks(t, cartRepo)
	cartService := NewCartService(txManager, cartRepo, productRepo, newCartPublisher(t), discardLogger())

	ctx := context.Background()
	token := uuid.New()
	existing := &entity.Cart{
		Token: token,
		Lines: []entity.CartLine{
			{ProductID: uuid.New(), Name: "Куртка DARK", Price: 4500, Size: "L", Quantity: 2},
		},
	}

	cartRepo.EXPECT().FindByToken(ctx, token).Return(existing, nil)
	cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	view, err := cartService.ClearCart(ctx, token)

	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, 0, view.ItemCount)
}

func TestCartService_Mutate_SaveError(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := newCartMocks(t, cartRepo)
	cartService := NewCartService(txManager, cartRepo, productRepo, newCartPublisher(t), discardLogger())

	ctx := context.Background()
	token := uuid.New()

	cartRepo.EXPECT().FindByToken(ctx, token).Return(nil, repository.ErrCartNotFound)
	cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(errors.New("connection reset"))

	view, err := cartService.ClearCart(ctx, token)

	assert.Nil(t, view)
	assert.Error(t, err)
}
