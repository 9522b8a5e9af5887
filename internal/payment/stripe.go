package payment

import (
	"context"
	"log/slog"

	"microtx-service/internal/errors"
)

// StripeStrategy is a stub for the Stripe processor. It satisfies the
// Strategy contract so the real integration can be dropped in without
// touching the pipeline, but authorization is not yet implemented.
type StripeStrategy struct {
	apiKey string
	logger *slog.Logger
}

func NewStripeStrategy(apiKey string, logger *slog.Logger) *StripeStrategy {
	return &StripeStrategy{
		apiKey: apiKey,
		logger: logger,
	}
}

func (s *StripeStrategy) Name() string {
	return "stripe"
}

func (s *StripeStrategy) Authorize(ctx context.Context, req Request) (Result, error) {
	s.logger.Warn("stripe authorization not implemented",
		"transaction_id", req.TransactionID)

	return Result{}, errors.NewAppError(errors.PaymentError, "stripe authorization is not yet implemented")
}
