package service

import (
	"context"
	"fmt"
	"time"

	"shopfront/internal/cart"
	"shopfront/internal/checkout"
	"shopfront/internal/model"
	"shopfront/internal/payment"
	"shopfront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService. Each submission drives a
// fresh checkout.Form through its state machine; the gateway is called
// at most once per request and never retried.
type checkoutService struct {
	store       *cart.Store
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	gateway     payment.Gateway
	currency    string
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	store *cart.Store,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	gateway payment.Gateway,
	currency string,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		store:       store,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
		currency:    currency,
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout validates the card form, submits the payment once, and on
// success records the order and clears the cart.
func (s *checkoutService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("checkout request is nil")
	}

	snap, err := s.store.Get(req.CartID)
	if err != nil {
		return nil, err
	}
	if len(snap.Items) == 0 {
		return nil, model.ErrEmptyCart
	}

	form := checkout.NewForm(s.gateway, s.logger)
	form.SetValues(req.Card)

	status := form.Submit(ctx, snap.Subtotal, s.currency)

	switch status {
	case checkout.StatusSucceeded:
		order, err := s.recordOrder(ctx, snap, form.TransactionID())
		if err != nil {
			// The payment went through; surface the order but flag the
			// bookkeeping failure.
			s.logger.Error().Err(err).
				Str("transaction_id", form.TransactionID()).
				Msg("payment succeeded but order could not be recorded")
			return nil, fmt.Errorf("failed to record order: %w", err)
		}

		s.store.Mutate(req.CartID, func(c *cart.Cart) error {
			c.Clear()
			return nil
		})

		s.logger.Info().
			Str("order_id", order.ID.String()).
			Str("transaction_id", order.TransactionID).
			Float64("subtotal", order.Subtotal).
			Msg("checkout completed")

		return &model.CheckoutResponse{
			Status:        string(status),
			OrderID:       &order.ID,
			TransactionID: order.TransactionID,
			Subtotal:      order.Subtotal,
		}, nil

	case checkout.StatusFailed:
		resp := &model.CheckoutResponse{
			Status:  string(status),
			Message: form.Message(),
		}
		// Distinguish field validation from a gateway decline: only
		// the former carries per-field errors.
		if fields := failedFields(form); len(fields) > 0 {
			resp.Fields = fields
		}
		return resp, nil

	default:
		return nil, fmt.Errorf("unexpected checkout status: %s", status)
	}
}

// recordOrder persists the order and its line items in one transaction.
// Products may have been removed from the catalogue since the cart was
// filled, so their IDs are re-validated before the items are inserted.
func (s *checkoutService) recordOrder(ctx context.Context, snap cart.Snapshot, transactionID string) (*model.Order, error) {
	productIDs := make([]string, len(snap.Items))
	for i, line := range snap.Items {
		productIDs[i] = line.Product.ID
	}
	if err := s.productRepo.ValidateProductsExist(ctx, productIDs); err != nil {
		return nil, err
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now()
	order := &model.Order{
		ID:            uuid.New(),
		CartID:        snap.ID,
		TransactionID: transactionID,
		Subtotal:      snap.Subtotal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, len(snap.Items))
	for i, line := range snap.Items {
		items[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
		}
	}

	if err := s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}
	committed = true

	return order, nil
}

// failedFields collects the surfaced validation errors after a failed
// submit. All fields are touched at that point, so errors are visible.
func failedFields(form *checkout.Form) map[string]model.FieldValidation {
	fields := make(map[string]model.FieldValidation)
	for field, v := range form.Validations() {
		if !v.Valid {
			fields[string(field)] = v
		}
	}
	return fields
}
