package usecase

import (
	"context"

	"darkstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactInput holds the fields submitted on the info step.
type ContactInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Telegram string `json:"telegram"`
}

// DeliveryInput holds the fields submitted on the delivery step.
type DeliveryInput struct {
	City    string `json:"city" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// CheckoutView is the wizard state snapshot returned after every transition.
type CheckoutView struct {
	Step          entity.CheckoutStep `json:"step"`
	Contact       *ContactInput       `json:"contact,omitempty"`
	Delivery      *DeliveryInput      `json:"delivery,omitempty"`
	FailureReason string              `json:"failure_reason,omitempty"`
}

// SubmitResult is returned by a successful order submission. The confirmation
// URL is empty when the payment provider is disabled.
type SubmitResult struct {
	OrderID         int64  `json:"order_id"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

// CheckoutUsecase drives the multi-step order placement wizard. All state
// lives server-side, keyed by the cart token.
type CheckoutUsecase interface {
	// StartCheckout begins a fresh session for a non-empty cart, replacing
	// any previous session for the same cart.
	StartCheckout(ctx context.Context, cartToken uuid.UUID) (*CheckoutView, error)

	// GetCheckout returns the current wizard state.
	GetCheckout(ctx context.Context, cartToken uuid.UUID) (*CheckoutView, error)

	// SubmitInfo records contact fields and advances info to delivery.
	SubmitInfo(ctx context.Context, cartToken uuid.UUID, input ContactInput) (*CheckoutView, error)

	// SubmitDelivery records delivery fields and advances delivery to payment.
	SubmitDelivery(ctx context.Context, cartToken uuid.UUID, input DeliveryInput) (*CheckoutView, error)

	// Back steps the wizard one stage backward without losing entered data.
	Back(ctx context.Context, cartToken uuid.UUID) (*CheckoutView, error)

	// Submit places the order from the payment step: the order is persisted,
	// the cart is cleared, staff are notified, and a payment is registered
	// when the provider is enabled. On failure the session enters the failed
	// state and the cart is left untouched.
	Submit(ctx context.Context, cartToken uuid.UUID) (*SubmitResult, error)

	// Retry returns a failed session to the payment step.
	Retry(ctx context.Context, cartToken uuid.UUID) (*CheckoutView, error)

	// PaymentQR renders a payment confirmation URL as a PNG QR image.
	PaymentQR(confirmationURL string) ([]byte, error)
}
