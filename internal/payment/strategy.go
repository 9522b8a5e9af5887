package payment

import (
	"context"

	"github.com/google/uuid"
)

// Request carries everything a processor needs to authorize one payment.
// It is ephemeral and never persisted.
type Request struct {
	TransactionID uuid.UUID
	PlayerID      uuid.UUID
	AmountCents   int64
	Currency      string
}

// Result is the outcome of an authorization call. Approved and the decline
// reason are mutually exclusive; use the constructors to keep the shape
// consistent. A decline is business data, not an error.
type Result struct {
	Approved      bool
	ProcessorID   string
	DeclineReason string
}

// Approved builds a successful authorization result.
func Approved(processorID string) Result {
	return Result{
		Approved:    true,
		ProcessorID: processorID,
	}
}

// Declined builds a declined authorization result.
func Declined(reason string) Result {
	return Result{
		Approved:      false,
		DeclineReason: reason,
	}
}

// Strategy authorizes a payment amount for a player. Implementations must be
// safe for concurrent use; one instance is selected at startup and shared
// across all in-flight requests. The returned error is reserved for
// infrastructure faults (network, timeout) only.
type Strategy interface {
	Authorize(ctx context.Context, req Request) (Result, error)
	Name() string
}
