// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a purchasable catalog item. Prices are whole rubles.
// Products are created and edited through the admin panel only; from the
// shopper's perspective the catalog is read-only.
type Product struct {
	ID          uuid.UUID // Unique identifier within the catalog.
	Name        string    // Display name.
	Price       int64     // Unit price in rubles.
	Category    string    // Category label, e.g. "Куртки".
	Description string    // Free-text description.
	Sizes       []string  // Ordered list of available size labels.
	Image       string    // Primary image reference.
	Images      []string  // Additional image references.
	InStock     bool      // False when the item is sold out.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasSize reports whether the given size label is offered for this product.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}

	return false
}
