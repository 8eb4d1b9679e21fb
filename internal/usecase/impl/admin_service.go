package impl

import (
	"context"
	"log/slog"
	"time"

	"darkstore/config"
	deliverycontext "darkstore/internal/delivery/context"
	"darkstore/internal/domain/entity"
	domainerrors "darkstore/internal/domain/errors"
	"darkstore/internal/domain/repository"
	"darkstore/internal/domain/service"
	"darkstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	orderRepo     repository.OrderRepository
	messageRepo   repository.MessageRepository
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository
	hasher        service.PasswordHasher
	tokenSvc      service.TokenService
	passwordHash  string
	logger        *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	cfg *config.Config,
	orderRepo repository.OrderRepository,
	messageRepo repository.MessageRepository,
	productRepo repository.ProductRepository,
	analyticsRepo repository.AnalyticsRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) (usecase.AdminUsecase, error) {
	if cfg.Admin == nil || cfg.Admin.PasswordHash == "" {
		return nil, errors.New("admin password hash must be configured")
	}

	return &adminService{
		orderRepo:     orderRepo,
		messageRepo:   messageRepo,
		productRepo:   productRepo,
		analyticsRepo: analyticsRepo,
		hasher:        hasher,
		tokenSvc:      tokenSvc,
		passwordHash:  cfg.Admin.PasswordHash,
		logger:        logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the panel password and issues an expiring session token.
func (srv *adminService) Login(ctx context.Context, password string) (*usecase.AdminSession, error) {
	if !srv.hasher.Check(password, srv.passwordHash) {
		srv.log(ctx).Warn("Admin login attempt with wrong password")

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenSvc.GenerateAdminToken()
	if err != nil {
		srv.log(ctx).Error("Failed to generate admin token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate admin token")
	}

	return &usecase.AdminSession{
		Token:     token,
		ExpiresAt: time.Now().Add(srv.tokenSvc.TokenDuration()),
	}, nil
}

// GetDashboard loads orders, messages and products in one call.
func (srv *adminService) GetDashboard(ctx context.Context) (*usecase.Dashboard, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}

	messages, err := srv.messageRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load messages")
	}

	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	return &usecase.Dashboard{
		Orders:   orders,
		Messages: messages,
		Products: products,
	}, nil
}

// UpdateOrderStatus moves an order to the given status.
func (srv *adminService) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	parsed, ok := entity.ParseOrderStatus(status)
	if !ok {
		return domainerrors.ErrInvalidOrderStatus
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, parsed); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		srv.log(ctx).Error("Failed to update order status", slog.Any("error", err), slog.Int64("order_id", orderID))

		return errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.Int64("order_id", orderID),
		slog.String("status", string(parsed)),
	)

	return nil
}

// DeleteOrder removes an order permanently.
func (srv *adminService) DeleteOrder(ctx context.Context, orderID int64) error {
	if err := srv.orderRepo.Delete(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		srv.log(ctx).Error("Failed to delete order", slog.Any("error", err), slog.Int64("order_id", orderID))

		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// DeleteMessage removes a contact message permanently.
func (srv *adminService) DeleteMessage(ctx context.Context, messageID int64) error {
	if err := srv.messageRepo.Delete(ctx, messageID); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return domainerrors.ErrMessageNotFound
		}

		srv.log(ctx).Error("Failed to delete message", slog.Any("error", err), slog.Int64("message_id", messageID))

		return errors.Wrap(err, "failed to delete message")
	}

	return nil
}

// CreateProduct adds a catalog item.
func (srv *adminService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(input)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("product_id", product.ID), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct replaces a catalog item's editable fields.
func (srv *adminService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(input)
	product.ID = id

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		srv.log(ctx).Error("Failed to update product", slog.Any("error", err), slog.Any("product_id", id))

		return nil, errors.Wrap(err, "failed to update product")
	}

	return srv.productRepo.FindByID(ctx, id)
}

// GetStatistics aggregates tracking events over the reporting period.
func (srv *adminService) GetStatistics(ctx context.Context, from, to time.Time) (*entity.Statistics, error) {
	pageViews, err := srv.analyticsRepo.CountByType(ctx, entity.AnalyticsEventPageView, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count page views")
	}

	addToCart, err := srv.analyticsRepo.CountByType(ctx, entity.AnalyticsEventAddToCart, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count add-to-cart events")
	}

	return &entity.Statistics{
		PageViews:   pageViews,
		AddToCart:   addToCart,
		PeriodStart: from,
		PeriodEnd:   to,
	}, nil
}

func productFromInput(input usecase.ProductInput) *entity.Product {
	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	return &entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Description: input.Description,
		Sizes:       input.Sizes,
		Image:       input.Image,
		Images:      input.Images,
		InStock:     inStock,
	}
}
