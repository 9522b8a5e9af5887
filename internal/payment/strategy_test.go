package payment

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microtx-service/internal/config"
	"microtx-service/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authRequest(amountCents int64) Request {
	return Request{
		TransactionID: uuid.New(),
		PlayerID:      uuid.New(),
		AmountCents:   amountCents,
		Currency:      "USD",
	}
}

func TestMockStrategy_ApprovesUnderLimit(t *testing.T) {
	strategy := NewMockStrategy(testLogger())

	result, err := strategy.Authorize(context.Background(), authRequest(99_999))
	require.NoError(t, err)

	assert.True(t, result.Approved)
	assert.True(t, strings.HasPrefix(result.ProcessorID, "mock_"))
	assert.Empty(t, result.DeclineReason)
}

func TestMockStrategy_DeclinesAtLimit(t *testing.T) {
	strategy := NewMockStrategy(testLogger())

	result, err := strategy.Authorize(context.Background(), authRequest(100_000))
	require.NoError(t, err)

	assert.False(t, result.Approved)
	assert.Empty(t, result.ProcessorID)
	assert.NotEmpty(t, result.DeclineReason)
}

func TestMockStrategy_ConcurrentUse(t *testing.T) {
	strategy := NewMockStrategy(testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := strategy.Authorize(context.Background(), authRequest(500))
			assert.NoError(t, err)
			assert.True(t, result.Approved)
		}()
	}
	wg.Wait()
}

func TestMockStrategy_CancelledContext(t *testing.T) {
	strategy := NewMockStrategy(testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := strategy.Authorize(ctx, authRequest(500))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStripeStrategy_ReportsInfrastructureFault(t *testing.T) {
	strategy := NewStripeStrategy("sk_test_xxx", testLogger())

	_, err := strategy.Authorize(context.Background(), authRequest(500))
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.PaymentError, appErr.Code)
}

func TestResultConstructors(t *testing.T) {
	approved := Approved("proc_1")
	assert.True(t, approved.Approved)
	assert.Equal(t, "proc_1", approved.ProcessorID)
	assert.Empty(t, approved.DeclineReason)

	declined := Declined("insufficient funds")
	assert.False(t, declined.Approved)
	assert.Empty(t, declined.ProcessorID)
	assert.Equal(t, "insufficient funds", declined.DeclineReason)
}

func TestNewStrategy(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		wantName string
		wantErr  bool
	}{
		{
			name:     "mock provider",
			cfg:      &config.Config{PaymentProvider: "mock"},
			wantName: "mock",
		},
		{
			name:     "stripe provider with key",
			cfg:      &config.Config{PaymentProvider: "stripe", StripeAPIKey: "sk_test_xxx"},
			wantName: "stripe",
		},
		{
			name:    "stripe provider without key",
			cfg:     &config.Config{PaymentProvider: "stripe"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     &config.Config{PaymentProvider: "paypal"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := NewStrategy(tt.cfg, testLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, strategy.Name())
		})
	}
}
