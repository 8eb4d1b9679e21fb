package repository

import (
	"context"
	"errors"

	"darkstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCheckoutNotFound is returned when no checkout session exists for the cart.
var ErrCheckoutNotFound = errors.New("checkout session not found")

// CheckoutRepository persists the checkout wizard state per cart token.
// At most one session exists per cart; starting a new checkout replaces it.
type CheckoutRepository interface {
	// FindByCartToken retrieves the current session for a cart.
	FindByCartToken(ctx context.Context, cartToken uuid.UUID) (*entity.CheckoutSession, error)

	// Save upserts the session, keyed by cart token.
	Save(ctx context.Context, session *entity.CheckoutSession) error

	// Delete removes the session.
	Delete(ctx context.Context, cartToken uuid.UUID) error
}
