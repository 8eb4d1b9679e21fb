package service

import "context"

// Payment is the provider-side record created for an order.
type Payment struct {
	ID              string // Provider-assigned payment ID.
	ConfirmationURL string // URL the shopper opens to pay.
	Status          string // Provider status, e.g. "pending".
}

// PaymentService creates payments with the external acquiring provider.
// Implementations must send an idempotency key so a retried call cannot
// charge twice.
type PaymentService interface {
	// CreatePayment registers a payment for the given order and amount in
	// rubles, returning the confirmation URL for the shopper.
	CreatePayment(ctx context.Context, orderID int64, amount int64, description string) (*Payment, error)

	// Enabled reports whether the provider is configured. When false,
	// checkout completes without a payment leg.
	Enabled() bool
}
