package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is a single selection in a cart. Two lines with the same product
// but different sizes are distinct entries; line identity is (ProductID, Size).
type CartLine struct {
	ProductID uuid.UUID
	Name      string // Product name snapshot, kept for display and order items.
	Price     int64  // Unit price snapshot in rubles.
	Size      string
	Quantity  int // Always >= 1 while the line is present.
}

// Cart holds a shopper's pending selections. Carts are anonymous and keyed by
// a token issued on first use. All mutating methods are pure list reducers so
// they can be tested without any persistence in place.
type Cart struct {
	Token     uuid.UUID
	Lines     []CartLine
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Add merges the selection into an existing line with the same
// (product, size) identity, incrementing its quantity by one, or appends a
// new line with quantity 1. Quantity has no upper bound.
func (c *Cart) Add(product *Product, size string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == product.ID && c.Lines[i].Size == size {
			c.Lines[i].Quantity++

			return
		}
	}

	c.Lines = append(c.Lines, CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Size:      size,
		Quantity:  1,
	})
}

// SetQuantity replaces the quantity of the matching line. A quantity of zero
// or less removes the line instead of storing a non-positive value. Absent
// lines are left untouched.
func (c *Cart) SetQuantity(productID uuid.UUID, size string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID, size)

		return
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == productID && c.Lines[i].Size == size {
			c.Lines[i].Quantity = quantity

			return
		}
	}
}

// Remove deletes the matching line if present; otherwise it is a no-op.
func (c *Cart) Remove(productID uuid.UUID, size string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID && c.Lines[i].Size == size {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)

			return
		}
	}
}

// Clear drops every line. Used after a successful checkout.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Total is the sum of unit price times quantity over all lines, in rubles.
// The line list is small, so the total is recomputed on every read.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Price * int64(line.Quantity)
	}

	return total
}

// ItemCount is the sum of quantities across all lines (cart badge value).
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}

	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
