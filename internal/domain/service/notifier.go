package service

import (
	"context"

	"darkstore/internal/domain/entity"
)

// OrderNotifier delivers operational notifications about storefront activity
// to the shop staff channel. Delivery is best-effort: callers log failures
// and move on, an undelivered notification never fails the originating
// operation.
type OrderNotifier interface {
	// NotifyNewOrder announces a freshly placed order.
	NotifyNewOrder(ctx context.Context, order *entity.Order) error

	// NotifyContactMessage announces a new contact form message.
	NotifyContactMessage(ctx context.Context, message *entity.ContactMessage) error
}
