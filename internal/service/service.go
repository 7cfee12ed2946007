package service

import (
	"context"

	"shopfront/internal/cart"
	"shopfront/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for browsing the catalogue.
type ProductService interface {
	// GetAll retrieves products with pagination, optionally filtered
	// by category.
	GetAll(ctx context.Context, category string, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// CartService defines operations on shopping-session carts.
type CartService interface {
	// Create starts a new shopping session.
	Create(ctx context.Context) cart.Snapshot

	// Get returns the current state of a cart.
	Get(ctx context.Context, cartID uuid.UUID) (cart.Snapshot, error)

	// AddItem puts quantity units of a product in the cart, merging
	// with an existing line for the same product.
	AddItem(ctx context.Context, cartID uuid.UUID, productID string, quantity int) (cart.Snapshot, error)

	// UpdateItem sets the quantity of a product's line; zero or below
	// removes the line.
	UpdateItem(ctx context.Context, cartID uuid.UUID, productID string, quantity int) (cart.Snapshot, error)

	// RemoveItem deletes a product's line from the cart.
	RemoveItem(ctx context.Context, cartID uuid.UUID, productID string) (cart.Snapshot, error)
}

// CheckoutService submits a cart for payment.
type CheckoutService interface {
	// Checkout validates the card form, submits the payment once, and
	// on success records the order and clears the cart.
	Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
}

// DirectoryService serves business listings with their live
// open/closed status. Status is computed fresh on every call; callers
// that need a live indicator poll.
type DirectoryService interface {
	// List returns listings, optionally filtered by category, each
	// decorated with its current open status.
	List(ctx context.Context, category string) []model.BusinessWithStatus

	// Get returns one listing with its current open status.
	Get(ctx context.Context, id string) (*model.BusinessWithStatus, error)
}
