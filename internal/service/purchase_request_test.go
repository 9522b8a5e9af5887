package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microtx-service/internal/domain"
)

func normalized(req *PurchaseRequest) *PurchaseRequest {
	req.Normalize()
	return req
}

func TestPurchaseRequestValidation(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(*PurchaseRequest)
		wantViolations []string
	}{
		{
			name:   "valid request passes",
			mutate: func(r *PurchaseRequest) {},
		},
		{
			name:   "uppercase player ID passes",
			mutate: func(r *PurchaseRequest) { r.PlayerID = strings.ToUpper(uuid.NewString()) },
		},
		{
			name:           "zero price",
			mutate:         func(r *PurchaseRequest) { r.PriceCents = 0 },
			wantViolations: []string{"price_cents"},
		},
		{
			name:           "price above maximum",
			mutate:         func(r *PurchaseRequest) { r.PriceCents = 100_000_000 },
			wantViolations: []string{"price_cents"},
		},
		{
			name: "zero quantity",
			mutate: func(r *PurchaseRequest) {
				zero := 0
				r.Quantity = &zero
			},
			wantViolations: []string{"quantity"},
		},
		{
			name: "quantity above maximum",
			mutate: func(r *PurchaseRequest) {
				q := 101
				r.Quantity = &q
			},
			wantViolations: []string{"quantity"},
		},
		{
			name:           "two-letter currency",
			mutate:         func(r *PurchaseRequest) { r.Currency = "US" },
			wantViolations: []string{"currency"},
		},
		{
			name:           "non-UUID player ID",
			mutate:         func(r *PurchaseRequest) { r.PlayerID = "player-42" },
			wantViolations: []string{"player_id"},
		},
		{
			name:           "empty item ID",
			mutate:         func(r *PurchaseRequest) { r.ItemID = "" },
			wantViolations: []string{"item_id"},
		},
		{
			name:           "item name too long",
			mutate:         func(r *PurchaseRequest) { r.ItemName = strings.Repeat("x", 256) },
			wantViolations: []string{"item_name"},
		},
		{
			name: "all violations reported at once",
			mutate: func(r *PurchaseRequest) {
				r.PlayerID = "nope"
				r.ItemID = ""
				r.ItemName = ""
				r.PriceCents = 0
				r.Currency = "USDD"
				q := 0
				r.Quantity = &q
			},
			wantViolations: []string{"player_id", "item_id", "item_name", "price_cents", "currency", "quantity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			appErr := normalized(req).Validate()

			if len(tt.wantViolations) == 0 {
				assert.Nil(t, appErr)
				return
			}

			require.NotNil(t, appErr)
			require.Len(t, appErr.Violations, len(tt.wantViolations))
			for i, field := range tt.wantViolations {
				assert.Contains(t, appErr.Violations[i], field)
			}
		})
	}
}

func TestPurchaseRequestNormalize(t *testing.T) {
	req := &PurchaseRequest{
		PlayerID:   uuid.NewString(),
		ItemID:     "potion_7",
		ItemName:   "Potion",
		PriceCents: 250,
		Currency:   " usd ",
	}
	req.Normalize()

	assert.Equal(t, "USD", req.Currency)
	require.NotNil(t, req.Quantity)
	assert.Equal(t, 1, *req.Quantity)
	assert.Equal(t, domain.Metadata{}, req.Metadata)
}
