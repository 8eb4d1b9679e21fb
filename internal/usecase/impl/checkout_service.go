package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	deliverycontext "darkstore/internal/delivery/context"
	"darkstore/internal/domain/entity"
	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/repository"
	"darkstore/internal/domain/service"
	"darkstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface. The order
// submission runs order creation, cart clearing, session completion and the
// payment leg inside one transaction, so a failed payment rolls the order
// back and leaves the cart intact for a retry.
type checkoutService struct {
	txManager    repository.TransactionManager
	checkoutRepo repository.CheckoutRepository
	cartRepo     repository.CartRepository
	paymentSvc   service.PaymentService
	qrcodeSvc    service.QRCodeService
	notifier     service.OrderNotifier
	logger       *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	txManager repository.TransactionManager,
	checkoutRepo repository.CheckoutRepository,
	cartRepo repository.CartRepository,
	paymentSvc service.PaymentService,
	qrcodeSvc service.QRCodeService,
	notifier service.OrderNotifier,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:    txManager,
		checkoutRepo: checkoutRepo,
		cartRepo:     cartRepo,
		paymentSvc:   paymentSvc,
		qrcodeSvc:    qrcodeSvc,
		notifier:     notifier,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartCheckout begins a fresh session for a non-empty cart.
func (srv *checkoutService) StartCheckout(ctx context.Context, cartToken uuid.UUID) (*usecase.CheckoutView, error) {
	cart, err := srv.cartRepo.FindByToken(ctx, cartToken)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrEmptyCart
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}

	session := entity.NewCheckoutSession(cartToken)
	if err := srv.checkoutRepo.Save(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to start checkout", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to start checkout")
	}

	return toCheckoutView(session), nil
}

// GetCheckout returns the current wizard state.
func (srv *checkoutService) GetCheckout(ctx context.Context, cartToken uuid.UUID) (*usecase.CheckoutView, error) {
	session, err := srv.findSession(ctx, cartToken)
	if err != nil {
		return nil, err
	}

	return toCheckoutView(session), nil
}

// SubmitInfo records contact fields and advances info to delivery.
func (srv *checkoutService) SubmitInfo(ctx context.Context, cartToken uuid.UUID, input usecase.ContactInput) (*usecase.CheckoutView, error) {
	return srv.transition(ctx, cartToken, func(session *entity.CheckoutSession) bool {
		return session.SubmitInfo(entity.CheckoutContact{
			Name:     input.Name,
			Email:    input.Email,
			Phone:    input.Phone,
			Telegram: input.Telegram,
		})
	})
}

// SubmitDelivery records delivery fields and advances delivery to payment.
func (srv *checkoutService) SubmitDelivery(ctx context.Context, cartToken uuid.UUID, input usecase.DeliveryInput) (*usecase.CheckoutView, error) {
	return srv.transition(ctx, cartToken, func(session *entity.CheckoutSession) bool {
		return session.SubmitDelivery(entity.CheckoutDelivery{
			City:    input.City,
			Address: input.Address,
		})
	})
}

// Back steps the wizard one stage backward without losing entered data.
func (srv *checkoutService) Back(ctx context.Context, cartToken uuid.UUID) (*usecase.CheckoutView, error) {
	return srv.transition(ctx, cartToken, func(session *entity.CheckoutSession) bool {
		return session.Back()
	})
}

// Retry returns a failed session to the payment step.
func (srv *checkoutService) Retry(ctx context.Context, cartToken uuid.UUID) (*usecase.CheckoutView, error) {
	return srv.transition(ctx, cartToken, func(session *entity.CheckoutSession) bool {
		return session.Retry()
	})
}

// Submit places the order from the payment step.
func (srv *checkoutService) Submit(ctx context.Context, cartToken uuid.UUID) (*usecase.SubmitResult, error) {
	var (
		result      *usecase.SubmitResult
		placedOrder *entity.Order
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		checkoutRepo := repoFactory.CheckoutRepo()
		cartRepo := repoFactory.CartRepo()
		orderRepo := repoFactory.OrderRepo()

		session, err := checkoutRepo.FindByCartToken(ctx, cartToken)
		if err != nil {
			if errors.Is(err, repository.ErrCheckoutNotFound) {
				return domainerrors.ErrCheckoutNotFound
			}

			return errors.Wrap(err, "failed to find checkout session")
		}
		if session.Step != entity.CheckoutStepPayment {
			return domainerrors.ErrCheckoutStepInvalid
		}

		cart, err := cartRepo.FindByToken(ctx, cartToken)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrEmptyCart
			}

			return errors.Wrap(err, "failed to find cart")
		}
		if cart.IsEmpty() {
			return domainerrors.ErrEmptyCart
		}

		order := buildOrder(session, cart)
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		var confirmationURL string
		if srv.paymentSvc.Enabled() {
			payment, err := srv.paymentSvc.CreatePayment(ctx, order.ID, order.Total, fmt.Sprintf("Заказ #%d", order.ID))
			if err != nil {
				return errors.Wrapf(domainerrors.ErrPaymentFailed, "create payment for order %d: %v", order.ID, err)
			}
			confirmationURL = payment.ConfirmationURL
		}

		cart.Clear()
		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		session.MarkSuccess()
		if err := checkoutRepo.Save(ctx, session); err != nil {
			return errors.Wrap(err, "failed to save checkout session")
		}

		placedOrder = order
		result = &usecase.SubmitResult{
			OrderID:         order.ID,
			ConfirmationURL: confirmationURL,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Order submission failed", slog.Any("error", err))
		srv.markFailed(ctx, cartToken, err)

		return nil, err
	}

	// Staff notification is best-effort; the order already exists.
	if err := srv.notifier.NotifyNewOrder(ctx, placedOrder); err != nil {
		srv.log(ctx).Warn("Failed to send order notification",
			slog.Any("error", err),
			slog.Int64("order_id", placedOrder.ID),
		)
	}

	return result, nil
}

// PaymentQR renders a payment confirmation URL as a PNG QR image.
func (srv *checkoutService) PaymentQR(confirmationURL string) ([]byte, error) {
	parsed, err := url.Parse(confirmationURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid confirmation URL")
	}

	png, err := srv.qrcodeSvc.GeneratePaymentQR(confirmationURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return png, nil
}

// findSession loads the session, mapping the absence to a domain error.
func (srv *checkoutService) findSession(ctx context.Context, cartToken uuid.UUID) (*entity.CheckoutSession, error) {
	session, err := srv.checkoutRepo.FindByCartToken(ctx, cartToken)
	if err != nil {
		if errors.Is(err, repository.ErrCheckoutNotFound) {
			return nil, domainerrors.ErrCheckoutNotFound
		}

		srv.log(ctx).Error("Failed to find checkout session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find checkout session")
	}

	return session, nil
}

// transition applies a guarded step transition and persists the session.
func (srv *checkoutService) transition(ctx context.Context, cartToken uuid.UUID, apply func(session *entity.CheckoutSession) bool) (*usecase.CheckoutView, error) {
	session, err := srv.findSession(ctx, cartToken)
	if err != nil {
		return nil, err
	}

	if !apply(session) {
		return nil, domainerrors.ErrCheckoutStepInvalid
	}

	if err := srv.checkoutRepo.Save(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to save checkout session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save checkout session")
	}

	return toCheckoutView(session), nil
}

// markFailed records the failure on the session so the client sees an
// explicit retryable state. Precondition errors leave the session alone.
func (srv *checkoutService) markFailed(ctx context.Context, cartToken uuid.UUID, cause error) {
	if errors.Is(cause, domainerrors.ErrCheckoutNotFound) ||
		errors.Is(cause, domainerrors.ErrCheckoutStepInvalid) ||
		errors.Is(cause, domainerrors.ErrEmptyCart) {
		return
	}

	session, err := srv.checkoutRepo.FindByCartToken(ctx, cartToken)
	if err != nil {
		return
	}

	reason := "Не удалось оформить заказ"
	if errors.Is(cause, domainerrors.ErrPaymentFailed) {
		reason = "Не удалось создать платёж"
	}

	session.MarkFailed(reason)
	if err := srv.checkoutRepo.Save(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to record checkout failure", slog.Any("error", err))
	}
}

// buildOrder freezes the session and cart into an order.
func buildOrder(session *entity.CheckoutSession, cart *entity.Cart) *entity.Order {
	items := make([]entity.OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, entity.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Size:      line.Size,
			Quantity:  line.Quantity,
		})
	}

	return &entity.Order{
		Name:     session.Contact.Name,
		Phone:    session.Contact.Phone,
		Email:    session.Contact.Email,
		Telegram: session.Contact.Telegram,
		Address:  session.FullAddress(),
		Items:    items,
		Total:    cart.Total(),
	}
}

// toCheckoutView builds the response snapshot. Contact and delivery blocks
// are included once their step has been passed at least once.
func toCheckoutView(session *entity.CheckoutSession) *usecase.CheckoutView {
	view := &usecase.CheckoutView{
		Step:          session.Step,
		FailureReason: session.FailureReason,
	}

	if session.Contact != (entity.CheckoutContact{}) {
		view.Contact = &usecase.ContactInput{
			Name:     session.Contact.Name,
			Email:    session.Contact.Email,
			Phone:    session.Contact.Phone,
			Telegram: session.Contact.Telegram,
		}
	}
	if session.Delivery != (entity.CheckoutDelivery{}) {
		view.Delivery = &usecase.DeliveryInput{
			City:    session.Delivery.City,
			Address: session.Delivery.Address,
		}
	}

	return view
}
