package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the closed set of states an order moves through. The source
// systems used two vocabularies (new/processing/completed on the admin side,
// processing/shipped/delivered in the profile history); they are unified here
// with "completed" normalized to "delivered" on input.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// ParseOrderStatus validates a status label, accepting the legacy
// "completed" spelling as an alias of delivered.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return OrderStatus(s), true
	}
	if s == "completed" {
		return OrderStatusDelivered, true
	}

	return "", false
}

// OrderItem is a frozen copy of a cart line at the time of purchase. Orders
// keep their own copies so later catalog edits never rewrite history.
type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Size      string    `json:"size,omitempty"`
	Quantity  int       `json:"quantity"`
}

// Order is a placed order. IDs are assigned by the persistence layer
// (serial), matching the numbering customers see in notifications.
type Order struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	Telegram  string // Optional messaging handle, without the leading @.
	Address   string // Free-text delivery address, "city, street" form.
	Items     []OrderItem
	Total     int64
	Status    OrderStatus
	CreatedAt time.Time
}
