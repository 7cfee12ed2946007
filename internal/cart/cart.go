// Package cart implements the shopping-cart state and its transition
// functions. The reducer itself holds no shared state; concurrent
// access across requests goes through the session Store.
package cart

import (
	"time"

	"shopfront/internal/model"

	"github.com/google/uuid"
)

// LineItem pairs a product with the quantity in the cart.
type LineItem struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

// Cart holds the line items for one shopping session. A line never
// carries a non-positive quantity: updates to zero or below remove it.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Snapshot is an immutable view of a cart with its derived totals.
type Snapshot struct {
	ID        uuid.UUID  `json:"id"`
	Items     []LineItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	ItemCount int        `json:"itemCount"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// New creates an empty cart with a fresh session ID.
func New() *Cart {
	now := time.Now()
	return &Cart{
		ID:        uuid.New(),
		Items:     []LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add puts quantity units of product in the cart. Adding a product
// already present increments its line rather than duplicating it.
// Non-positive quantities are ignored.
func (c *Cart) Add(product model.Product, quantity int) {
	if quantity <= 0 {
		return
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity += quantity
			c.touch()
			return
		}
	}

	c.Items = append(c.Items, LineItem{Product: product, Quantity: quantity})
	c.touch()
}

// UpdateQuantity sets the quantity for a product's line. A quantity of
// zero or below removes the line. It reports whether the product was
// in the cart.
func (c *Cart) UpdateQuantity(productID string, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = quantity
		}
		c.touch()
		return true
	}
	return false
}

// Remove deletes a product's line from the cart. It reports whether
// the product was in the cart.
func (c *Cart) Remove(productID string) bool {
	return c.UpdateQuantity(productID, 0)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []LineItem{}
	c.touch()
}

// Subtotal is the sum of price times quantity across all lines.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Snapshot returns a copy of the cart with its derived totals.
func (c *Cart) Snapshot() Snapshot {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return Snapshot{
		ID:        c.ID,
		Items:     items,
		Subtotal:  c.Subtotal(),
		ItemCount: c.ItemCount(),
		UpdatedAt: c.UpdatedAt,
	}
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
}
