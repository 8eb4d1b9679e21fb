package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "darkstore/internal/delivery/context"
	"darkstore/internal/domain/entity"
	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/repository"
	"darkstore/internal/domain/service"
	"darkstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface. Mutations run inside a
// transaction so the read-modify-write of the line set stays atomic under
// concurrent requests with the same token.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	txManager repository.TransactionManager,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		txManager:   txManager,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the current cart snapshot. An unknown token reads as an
// empty cart; nothing is persisted until the first mutation.
func (srv *cartService) GetCart(ctx context.Context, token uuid.UUID) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return toCartView(&entity.Cart{Token: token}), nil
		}

		srv.log(ctx).Error("Failed to get cart", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get cart")
	}

	return toCartView(cart), nil
}

// AddItem puts one unit of the product in the given size into the cart.
func (srv *cartService) AddItem(ctx context.Context, token uuid.UUID, productID uuid.UUID, size string) (*usecase.CartView, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if !product.InStock {
		return nil, domainerrors.ErrProductOutOfStock
	}
	if len(product.Sizes) > 0 && !product.HasSize(size) {
		return nil, domainerrors.ErrInvalidSize
	}

	var view *usecase.CartView

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := loadOrNewCart(ctx, cartRepo, token)
		if err != nil {
			return err
		}

		cart.Add(product, size)

		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}

		view = toCartView(cart)

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add cart item", slog.Any("error", err), slog.Any("product_id", productID))

		return nil, err
	}

	srv.trackAddToCart(ctx, product, size)

	return view, nil
}

// trackAddToCart publishes an add_to_cart event. Tracking is fire-and-forget,
// a publish failure never fails the cart mutation.
func (srv *cartService) trackAddToCart(ctx context.Context, product *entity.Product, size string) {
	message := &service.AnalyticsEventMessage{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventType: string(entity.AnalyticsEventAddToCart),
		EventData: map[string]any{
			"product_id":   product.ID.String(),
			"product_name": product.Name,
			"size":         size,
		},
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishAnalyticsEvent(ctx, message); err != nil {
		srv.log(ctx).Warn("Failed to publish add_to_cart event", slog.Any("error", err))
	}
}

// UpdateQuantity sets the quantity of a line; zero or less removes it.
func (srv *cartService) UpdateQuantity(ctx context.Context, token uuid.UUID, productID uuid.UUID, size string, quantity int) (*usecase.CartView, error) {
	return srv.mutate(ctx, token, func(cart *entity.Cart) {
		cart.SetQuantity(productID, size, quantity)
	})
}

// RemoveItem deletes a line from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, token uuid.UUID, productID uuid.UUID, size string) (*usecase.CartView, error) {
	return srv.mutate(ctx, token, func(cart *entity.Cart) {
		cart.Remove(productID, size)
	})
}

// ClearCart drops every line.
func (srv *cartService) ClearCart(ctx context.Context, token uuid.UUID) (*usecase.CartView, error) {
	return srv.mutate(ctx, token, func(cart *entity.Cart) {
		cart.Clear()
	})
}

// mutate applies a pure cart reducer inside a transaction and persists the
// result. Mutating an unknown token operates on an empty cart, so absent-line
// operations remain no-ops.
func (srv *cartService) mutate(ctx context.Context, token uuid.UUID, apply func(cart *entity.Cart)) (*usecase.CartView, error) {
	var view *usecase.CartView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := loadOrNewCart(ctx, cartRepo, token)
		if err != nil {
			return err
		}

		apply(cart)

		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}

		view = toCartView(cart)

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to mutate cart", slog.Any("error", err))

		return nil, err
	}

	return view, nil
}

func loadOrNewCart(ctx context.Context, cartRepo repository.CartRepository, token uuid.UUID) (*entity.Cart, error) {
	cart, err := cartRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return &entity.Cart{Token: token}, nil
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}

// toCartView builds the response snapshot with derived totals.
func toCartView(cart *entity.Cart) *usecase.CartView {
	lines := make([]usecase.CartLineView, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, usecase.CartLineView{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Size:      line.Size,
			Quantity:  line.Quantity,
			LineTotal: line.Price * int64(line.Quantity),
		})
	}

	return &usecase.CartView{
		Token:     cart.Token,
		Lines:     lines,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}
