package impl

import (
	"context"
	"testing"
	"time"

	"darkstore/internal/domain/entity"
	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/repository"
	"darkstore/internal/domain/service"
	mockRepo "darkstore/internal/mocks/repository"
	mockSvc "darkstore/internal/mocks/service"
	"darkstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutMocks struct {
	txManager    *mockRepo.MockTransactionManager
	checkoutRepo *mockRepo.MockCheckoutRepository
	cartRepo     *mockRepo.MockCartRepository
	orderRepo    *mockRepo.MockOrderRepository
	paymentSvc   *mockSvc.MockPaymentService
	qrcodeSvc    *mockSvc.MockQRCodeService
	notifier     *mockSvc.MockOrderNotifier
}

func newCheckoutService(t *testing.T) (usecase.CheckoutUsecase, *checkoutMocks) {
	t.Helper()

	mocks := &checkoutMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		checkoutRepo: mockRepo.NewMockCheckoutRepository(t),
		cartRepo:     mockRepo.NewMockCartRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		paymentSvc:   mockSvc.NewMockPaymentService(t),
		qrcodeSvc:    mockSvc.NewMockQRCodeService(t),
		notifier:     mockSvc.NewMockOrderNotifier(t),
	}

	svc := NewCheckoutService(
		mocks.txManager,
		mocks.checkoutRepo,
		mocks.cartRepo,
		mocks.paymentSvc,
		mocks.qrcodeSvc,
		mocks.notifier,
		discardLogger(),
	)

	return svc, mocks
}

// expectSubmitTx makes the transaction manager hand the callback a factory
// backed by the test's repositories and propagate the callback's error.
func expectSubmitTx(t *testing.T, mocks *checkoutMocks) {
	t.Helper()

	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().CheckoutRepo().Return(mocks.checkoutRepo).Maybe()
			factory.EXPECT().CartRepo().Return(mocks.cartRepo).Maybe()
			factory.EXPECT().OrderRepo().Return(mocks.orderRepo).Maybe()

			return fn(factory)
		})
}

func paidCart(token uuid.UUID) *entity.Cart {
	return &entity.Cart{
		Token: token,
		Lines: []entity.CartLine{
			{ProductID: uuid.New(), Name: "Куртка DARK", Price: 4500, Size: "M", Quantity: 2},
			{ProductID: uuid.New(), Name: "Худи STORE", Price: 4900, Size: "L", Quantity: 1},
		},
	}
}

func paymentStepSession(token uuid.UUID) *entity.CheckoutSession {
	return &entity.CheckoutSession{
		CartToken: token,
		Step:      entity.CheckoutStepPayment,
		Contact: entity.CheckoutContact{
			Name:  "Анна",
			Email: "anna@example.com",
			Phone: "+79990001122",
		},
		Delivery: entity.CheckoutDelivery{
			City:    "Москва",
			Address: "ул. Тверская, 1",
		},
	}
}

func TestCheckoutService_StartCheckout_Success(t *testing.T) {
	svc, mocks := newCheckoutService(t)

	ctx := context.Background()
	token := uuid.New()

	var saved *entity.CheckoutSession

	mocks.cartRepo.EXPECT().FindByToken(ctx, token).Return(paidCart(token), nil)
	mocks.checkoutRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.CheckoutSession")).
		Run(func(_ context.Context, session *entity.CheckoutSession) {
			saved = session
		}).
		Return(nil)

	view, err := svc.StartCheckout(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepInfo, view.Step)
	assert.Nil(t, view.Contact)
	assert.Nil(t, view.Delivery)

	require.NotNil(t, saved)
	assert.WithinDuration(t, time.Now().UTC(), saved.CreatedAt, time.Second)
}

func TestCheckoutService_StartCheckout_EmptyCart(t *testing.T) {
	svc, mocks := newCheckoutService(t)

	ctx := context.Background()
	token := uuid.New()

	mocks.cartRepo.EXPECT().FindByToken(ctx, token).Return(&entity.Cart{Token: token}, nil)

	view, err := svc.StartCheckout(ctx, token)

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_StartCheckout_UnknownCart(t *testing.T) {
	svc, mocks := newCheckoutService(t)

	ctx := context.Background()
	token := uuid.New()

	mocks.cartRepo.EXPECT().FindByToken(ctx, token).Return(nil, repository.ErrCartNotFound)

	view, err := svc.StartCheckout(ctx, token)

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_SubmitInfo_AdvancesToDelivery(t *testing.T) {
	svc, mocks := newCheckoutService(t)

	ctx := context.Background()
	token := uuid.New()
	session := entity.NewCheckoutSession(token)

	mocks.checkoutRepo.EXPECT().FindByCartToken(ctx, token).Return(session, nil)
	mocks.checkoutRepo.EXPECT().Save(ctx, session).Return(nil)

	view, err := svc.SubmitInfo(ctx, token, usecase.ContactInput{
		Name:  "Анна",
		Email: "anna@example.com",
		Phone: "+79990001122",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepDelivery, view.Step)
	require.NotNil(t, view.Contact)
	assert.Equal(t, "Анна", view.Contact.Name)
}

func TestCheckoutService_SubmitInfo_WrongStep(t *testing.T) {
	svc, mocks := newCheckoutService(t)

	ctx := context.Background()
	token := uuid.New()
	session := paymentStepSession(token)

	mocks.checkoutRepo.EXPECT().FindByCartToken(ctx, token).Return(session, nil)

	view, err := svc.SubmitInfo(ctx, token, usecase.ContactInput{
		Name:  "Анна",
		Email: "anna@example.com",
		Phone: "+79990001122",
	})

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutStepInvalid)
}

func TestCheckoutService_Back_FromPayment(t *testing.T) {
	svc, mocks := newCheckoutService(t)

	ctx := context.Background()
	token := uuid.New()
	session := paymentStepSession(token)

	mocks.checkoutRepo.EXPECT().FindByCartToken(ctx, token).Return(session, nil)
	mocks.checkoutRepo.EXPECT().Save(ctx, session).Return(nil)

	view, err := svc.Back(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepDelivery, view.Step)
	require.NotNil(t, view.Delivery)
	assert.Equal(t, "Москва", view.Delivery.City)
}

func TestCheckoutService_GetCheckout_NotFound(t *testing.T) {
	svc, mocks := newCheckoutService(t)

	ctx := context.Background()
	token := uuid.New()

	mocks.checkoutRepo.EXPECT().FindByCartToken(ctx, token).Return(nil, repository.ErrCheckoutNotFound)

	view, err := svc.GetCheckout(ctx, token)

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotFound)
}

func TestCheckoutService_Submit_WithPayment(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	expectSubmitTx(t, mocks)

	ctx := context.Background()
	token := uuid.New()
	session := paymentStepSession(token)
	cart := paidCart(token)
	total := cart.Total()

	mocks.checkoutRepo.EXPECT().FindByCartToken(ctx, token).Return(session, nil)
	mocks.cartRepo.EXPECT().FindByToken(ctx, token).Return(cart, nil)
	mocks.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = 42
			order.Status = entity.OrderStatusNew
		}).
		Return(nil)
	mocks.paymentSvc.EXPECT().Enabled().Return(true)
	mocks.paymentSvc.EXPECT().
		CreatePayment(ctx, int64(42), total, "Заказ #42").
		Return(&service.Payment{ID: "pay-1", ConfirmationURL: "https://yookassa.ru/confirm/pay-1", Status: "pending"}, nil)
	mocks.cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)
	mocks.checkoutRepo.EXPECT().Save(ctx, session).Return(nil)
	mocks.notifier.EXPECT().NotifyNewOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	result, err := svc.Submit(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.OrderID)
	assert.Equal(t, "https://yookassa.ru/confirm/pay-1", result.ConfirmationURL)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, entity.CheckoutStepSuccess, session.Step)
}

func TestCheckoutService_Submit_PaymentDisabled(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	expectSubmitTx(t, mocks)

	ctx := context.Background()
	token := uuid.New()
	session := paymentStepSession(token)
	cart := paidCart(token)

	mocks.checkoutRepo.EXPECT().FindByCartToken(ctx, token).Return(session, nil)
	mocks.cartRepo.EXPECT().FindByToken(ctx, token).Return(cart, nil)
	mocks.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = 7
		}).
		Return(nil)
	mocks.paymentSvc.EXPECT().Enabled().Return(false)
	mocks.cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)
	mocks.checkoutRepo.EXPECT().Save(ctx, session).Return(nil)
	mocks.notifier.EXPECT().NotifyNewOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	result, err := svc.Submit(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.OrderID)
	assert.Empty(t, result.ConfirmationURL)
}

func TestCheckoutService_Submit_PaymentFailureMarksSessionFailed(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	expectSubmitTx(t, mocks)

	ctx := context.Background()
	token := uuid.New()
	session := paymentStepSession(token)
	cart := paidCart(token)

	// Inside the transaction.
	mocks.checkoutRepo.EXPECT().FindByCartToken(ctx, token).Return(session, nil).Once()
	mocks.cartRepo.EXPECT().FindByToken(ctx, token).Return(cart, nil)
	mocks.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = 13
		}).
		Return(nil)
	mocks.paymentSvc.EXPECT().Enabled().Return(true)
	mocks.paymentSvc.EXPECT().
		CreatePayment(ctx, int64(13), cart.Total(), "Заказ #13").
		Return(nil, errors.New("provider unavailable"))

	// After rollback the failure is recorded on the durable session.
	mocks.checkoutRepo.EXPECT().FindByCartToken(ctx, token).Return(session, nil).Once()
	mocks.checkoutRepo.EXPECT().Save(ctx, session).Return(nil)

	result, err := svc.Submit(ctx, token)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentFailed)
	assert.Equal(t, entity.CheckoutStepFailed, session.Step)
	assert.Equal(t, "Не удалось создать платёж", session.FailureReason)
}

func TestCheckoutService_Submit_WrongStepLeavesSessionAlone(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	expectSubmitTx(t, mocks)

	ctx := context.Background()
	token := uuid.New()
	session := entity.NewCheckoutSession(token)

	mocks.checkoutRepo.EXPECT().FindByCartToken(ctx, token).Return(session, nil).Once()

	result, err := svc.Submit(ctx, token)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutStepInvalid)
	assert.Equal(t, entity.CheckoutStepInfo, session.Step)
	assert.Empty(t, session.FailureReason)
}

func TestCheckoutService_Retry_FromFailed(t *testing.T) {
	svc, mocks := newCheckoutService(t)

	ctx := context.Background()
	token := uuid.New()
	session := paymentStepSession(token)
	session.MarkFailed("Не удалось создать платёж")

	mocks.checkoutRepo.EXPECT().FindByCartToken(ctx, token).Return(session, nil)
	mocks.checkoutRepo.EXPECT().Save(ctx, session).Return(nil)

	view, err := svc.Retry(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepPayment, view.Step)
	assert.Empty(t, view.FailureReason)
}

func TestCheckoutService_Retry_NotFailed(t *testing.T) {
	svc, mocks := newCheckoutService(t)

	ctx := context.Background()
	token := uuid.New()
	session := paymentStepSession(token)

	mocks.checkoutRepo.EXPECT().FindByCartToken(ctx, token).Return(session, nil)

	view, err := svc.Retry(ctx, token)

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutStepInvalid)
}

func TestCheckoutService_PaymentQR_Success(t *testing.T) {
	svc, mocks := newCheckoutService(t)

	png := []byte{0x89, 0x50, 0x4E, 0x47}
	mocks.qrcodeSvc.EXPECT().GeneratePaymentQR("https://yookassa.ru/confirm/pay-1").Return(png, nil)

	got, err := svc.PaymentQR("https://yookassa.ru/confirm/pay-1")

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestCheckoutService_PaymentQR_InvalidURL(t *testing.T) {
	svc, _ := newCheckoutService(t)

	got, err := svc.PaymentQR("not a url")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
