package service

import (
	"context"
	"fmt"

	"shopfront/internal/cart"
	"shopfront/internal/model"
	"shopfront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService on top of the session store,
// resolving products (and their authoritative prices) through the
// catalogue repository.
type cartService struct {
	store       *cart.Store
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(store *cart.Store, productRepo repository.ProductRepository, logger zerolog.Logger) CartService {
	return &cartService{
		store:       store,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Create starts a new shopping session.
func (s *cartService) Create(ctx context.Context) cart.Snapshot {
	snap := s.store.Create()
	s.logger.Info().Str("cart_id", snap.ID.String()).Msg("shopping session started")
	return snap
}

// Get returns the current state of a cart.
func (s *cartService) Get(ctx context.Context, cartID uuid.UUID) (cart.Snapshot, error) {
	return s.store.Get(cartID)
}

// AddItem puts quantity units of a product in the cart.
func (s *cartService) AddItem(ctx context.Context, cartID uuid.UUID, productID string, quantity int) (cart.Snapshot, error) {
	if quantity <= 0 {
		s.logger.Warn().
			Str("product_id", productID).
			Int("quantity", quantity).
			Msg("invalid quantity")
		return cart.Snapshot{}, model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to look up product")
		return cart.Snapshot{}, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return cart.Snapshot{}, model.ErrProductNotFound
	}

	snap, err := s.store.Mutate(cartID, func(c *cart.Cart) error {
		c.Add(*product, quantity)
		return nil
	})
	if err != nil {
		return cart.Snapshot{}, err
	}

	s.logger.Debug().
		Str("cart_id", cartID.String()).
		Str("product_id", productID).
		Int("quantity", quantity).
		Int("item_count", snap.ItemCount).
		Msg("item added to cart")

	return snap, nil
}

// UpdateItem sets the quantity of a product's line; zero or below
// removes the line.
func (s *cartService) UpdateItem(ctx context.Context, cartID uuid.UUID, productID string, quantity int) (cart.Snapshot, error) {
	snap, err := s.store.Mutate(cartID, func(c *cart.Cart) error {
		if !c.UpdateQuantity(productID, quantity) {
			return model.ErrProductNotFound
		}
		return nil
	})
	if err != nil {
		return cart.Snapshot{}, err
	}

	s.logger.Debug().
		Str("cart_id", cartID.String()).
		Str("product_id", productID).
		Int("quantity", quantity).
		Msg("cart line updated")

	return snap, nil
}

// RemoveItem deletes a product's line from the cart.
func (s *cartService) RemoveItem(ctx context.Context, cartID uuid.UUID, productID string) (cart.Snapshot, error) {
	return s.UpdateItem(ctx, cartID, productID, 0)
}
