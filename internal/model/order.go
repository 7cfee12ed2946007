package model

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a completed checkout.
type Order struct {
	ID            uuid.UUID `json:"id" db:"id"`
	CartID        uuid.UUID `json:"cartId" db:"cart_id"`
	TransactionID string    `json:"transactionId" db:"transaction_id"`
	Subtotal      float64   `json:"subtotal" db:"subtotal"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a line item in an order.
type OrderItem struct {
	ID        uuid.UUID `json:"-" db:"id"`
	OrderID   uuid.UUID `json:"-" db:"order_id"`
	ProductID string    `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	UnitPrice float64   `json:"unitPrice" db:"unit_price"`
}
