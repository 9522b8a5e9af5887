package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// mockApprovalLimitCents is the deterministic decline threshold for the mock
// processor: amounts at or above it are declined.
const mockApprovalLimitCents = 100_000

// MockStrategy is a deterministic in-process payment strategy used for
// testing and default operation. It holds no mutable state.
type MockStrategy struct {
	logger *slog.Logger
}

func NewMockStrategy(logger *slog.Logger) *MockStrategy {
	return &MockStrategy{logger: logger}
}

func (m *MockStrategy) Name() string {
	return "mock"
}

func (m *MockStrategy) Authorize(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if req.AmountCents >= mockApprovalLimitCents {
		m.logger.Info("mock authorization declined",
			"transaction_id", req.TransactionID,
			"amount_cents", req.AmountCents)
		return Declined("amount exceeds mock approval limit"), nil
	}

	processorID := fmt.Sprintf("mock_%s", uuid.New())
	m.logger.Info("mock authorization approved",
		"transaction_id", req.TransactionID,
		"processor_id", processorID)
	return Approved(processorID), nil
}
