package payment

import (
	"fmt"
	"log/slog"

	"microtx-service/internal/config"
)

// NewStrategy selects the authorization strategy from configuration. Called
// once at process start; the returned instance is shared by all requests.
func NewStrategy(cfg *config.Config, logger *slog.Logger) (Strategy, error) {
	if logger == nil {
		logger = slog.Default()
	}
	switch cfg.PaymentProvider {
	case "mock":
		return NewMockStrategy(logger), nil
	case "stripe":
		if cfg.StripeAPIKey == "" {
			return nil, fmt.Errorf("stripe API key not configured")
		}
		return NewStripeStrategy(cfg.StripeAPIKey, logger), nil
	default:
		return nil, fmt.Errorf("unsupported payment provider: %s", cfg.PaymentProvider)
	}
}
