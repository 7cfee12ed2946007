// Package payment defines the external submission collaborator the
// checkout flow depends on. The gateway is called at most once per
// submit; callers perform no retries.
package payment

import (
	"context"

	"shopfront/internal/model"
)

// Gateway processes a single payment submission. An implementation
// resolves to a PaymentResult (which may itself report failure) or
// returns an error for transport-level problems; callers must convert
// either into a user-visible message rather than propagate it.
type Gateway interface {
	Submit(ctx context.Context, req model.PaymentRequest) (*model.PaymentResult, error)
}
