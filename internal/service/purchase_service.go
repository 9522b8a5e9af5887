package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"microtx-service/internal/domain"
	"microtx-service/internal/errors"
	"microtx-service/internal/payment"
)

// PurchaseService orchestrates the purchase pipeline:
// validate, persist pending, authorize, finalize.
type PurchaseService struct {
	repo     domain.TransactionRepository
	strategy payment.Strategy

	// authorizeTotal multiplies the authorized amount by quantity. The
	// default authorizes the unit price as given.
	authorizeTotal bool

	logger *slog.Logger
}

func NewPurchaseService(
	repo domain.TransactionRepository,
	strategy payment.Strategy,
	authorizeTotal bool,
	logger *slog.Logger,
) *PurchaseService {
	return &PurchaseService{
		repo:           repo,
		strategy:       strategy,
		authorizeTotal: authorizeTotal,
		logger:         logger,
	}
}

type ItemInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type PaymentInfo struct {
	AmountCents   int64   `json:"amount_cents"`
	Amount        string  `json:"amount"`
	Currency      string  `json:"currency"`
	ProcessorID   *string `json:"processor_id,omitempty"`
	DeclineReason string  `json:"decline_reason,omitempty"`
}

type PurchaseResponse struct {
	TransactionID uuid.UUID     `json:"transaction_id"`
	Status        domain.Status `json:"status"`
	Item          ItemInfo      `json:"item"`
	Payment       PaymentInfo   `json:"payment"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ProcessPurchase runs the full pipeline for one purchase request.
//
// The pending insert is the durability checkpoint: any fault after it leaves
// the row in status pending and surfaces a typed error, without deleting the
// row. The pending insert and the finalize update are two separate atomic
// writes; no store transaction spans the authorization call.
func (s *PurchaseService) ProcessPurchase(ctx context.Context, req *PurchaseRequest) (*PurchaseResponse, error) {
	req.Normalize()
	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}

	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		return nil, errors.ErrInvalidPlayerID
	}

	tx := &domain.Transaction{
		ID:         uuid.New(),
		PlayerID:   playerID,
		ItemID:     req.ItemID,
		ItemName:   req.ItemName,
		PriceCents: req.PriceCents,
		Currency:   req.Currency,
		Quantity:   *req.Quantity,
		Metadata:   req.Metadata,
	}

	s.logger.Info("Processing purchase",
		"transaction_id", tx.ID,
		"player_id", tx.PlayerID,
		"item_id", tx.ItemID,
		"price_cents", tx.PriceCents)

	if err := s.repo.InsertPending(tx); err != nil {
		return nil, err
	}

	amountCents := tx.PriceCents
	if s.authorizeTotal {
		amountCents = tx.PriceCents * int64(tx.Quantity)
	}

	result, err := s.strategy.Authorize(ctx, payment.Request{
		TransactionID: tx.ID,
		PlayerID:      tx.PlayerID,
		AmountCents:   amountCents,
		Currency:      tx.Currency,
	})
	if err != nil {
		// Infrastructure fault: the pending row stays behind as residue.
		s.logger.Error("Authorization fault", "transaction_id", tx.ID, "error", err)
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.NewAppError(errors.PaymentError, "payment authorization failed").WithDetails(err.Error())
	}

	finalStatus := domain.StatusFailed
	var processorID *string
	if result.Approved {
		finalStatus = domain.StatusCompleted
		processorID = &result.ProcessorID
	}

	updated, err := s.repo.UpdateStatus(tx.ID, finalStatus, processorID)
	if err != nil {
		s.logger.Error("Failed to finalize transaction", "transaction_id", tx.ID, "error", err)
		return nil, err
	}

	s.logger.Info("Purchase processed",
		"transaction_id", updated.ID,
		"status", updated.Status)

	return &PurchaseResponse{
		TransactionID: updated.ID,
		Status:        updated.Status,
		Item: ItemInfo{
			ID:       updated.ItemID,
			Name:     updated.ItemName,
			Quantity: updated.Quantity,
		},
		Payment: PaymentInfo{
			AmountCents:   amountCents,
			Amount:        domain.MajorUnitAmount(amountCents, updated.Currency).String(),
			Currency:      updated.Currency,
			ProcessorID:   updated.ProcessorID,
			DeclineReason: result.DeclineReason,
		},
		CreatedAt: updated.CreatedAt,
	}, nil
}

// GetTransaction returns a single transaction by ID.
func (s *PurchaseService) GetTransaction(transactionID string) (*domain.Transaction, error) {
	id, err := uuid.Parse(transactionID)
	if err != nil {
		return nil, errors.NewAppError(errors.InvalidInput, "transaction ID must be a valid UUID")
	}
	return s.repo.GetByID(id)
}
