package payment

import (
	"context"
	"time"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// declineReasons maps well-known test card numbers to the decline
// message the gateway returns for them. Any other number is approved.
var declineReasons = map[string]string{
	"4000000000000002": "Your card was declined",
	"4000000000009995": "Insufficient funds",
	"4000000000009987": "Your card was reported lost or stolen",
}

// simulatedGateway approves or declines payments locally with a
// configurable processing latency. It exists so the checkout flow can
// run end to end without a real processor.
type simulatedGateway struct {
	latency time.Duration
	logger  zerolog.Logger
}

// NewSimulatedGateway creates a gateway that settles every submission
// after the given latency.
func NewSimulatedGateway(latency time.Duration, logger zerolog.Logger) Gateway {
	return &simulatedGateway{
		latency: latency,
		logger:  logger.With().Str("component", "simulated-gateway").Logger(),
	}
}

// Submit settles a payment after the configured latency. Submissions
// are aborted when the context is cancelled first.
func (g *simulatedGateway) Submit(ctx context.Context, req model.PaymentRequest) (*model.PaymentResult, error) {
	if g.latency > 0 {
		select {
		case <-time.After(g.latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if reason, declined := declineReasons[req.CardNumber]; declined {
		g.logger.Info().
			Float64("amount", req.Amount).
			Str("currency", req.Currency).
			Msg("payment declined")
		return &model.PaymentResult{Success: false, Error: reason}, nil
	}

	result := &model.PaymentResult{
		Success:       true,
		TransactionID: "txn_" + uuid.NewString(),
	}

	g.logger.Info().
		Str("transaction_id", result.TransactionID).
		Float64("amount", req.Amount).
		Str("currency", req.Currency).
		Msg("payment approved")

	return result, nil
}
