package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CartLineView is one cart line as returned to the client.
type CartLineView struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Size      string    `json:"size,omitempty"`
	Quantity  int       `json:"quantity"`
	LineTotal int64     `json:"line_total"`
}

// CartView is the full cart snapshot returned after every read or mutation,
// so the client never has to derive totals itself.
type CartView struct {
	Token     uuid.UUID      `json:"token"`
	Lines     []CartLineView `json:"items"`
	Total     int64          `json:"total"`
	ItemCount int            `json:"item_count"`
}

// CartUsecase defines cart operations. Carts are anonymous, keyed by a token
// the client carries in a header; an unknown token behaves as an empty cart.
type CartUsecase interface {
	// GetCart returns the current cart snapshot.
	GetCart(ctx context.Context, token uuid.UUID) (*CartView, error)

	// AddItem puts one unit of the product in the given size into the cart,
	// merging with an existing line of the same identity.
	AddItem(ctx context.Context, token uuid.UUID, productID uuid.UUID, size string) (*CartView, error)

	// UpdateQuantity sets the quantity of a line; zero or less removes it.
	UpdateQuantity(ctx context.Context, token uuid.UUID, productID uuid.UUID, size string, quantity int) (*CartView, error)

	// RemoveItem deletes a line from the cart.
	RemoveItem(ctx context.Context, token uuid.UUID, productID uuid.UUID, size string) (*CartView, error)

	// ClearCart drops every line.
	ClearCart(ctx context.Context, token uuid.UUID) (*CartView, error)
}
