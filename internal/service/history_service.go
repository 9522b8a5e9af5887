package service

import (
	"log/slog"

	"github.com/google/uuid"

	"microtx-service/internal/domain"
	"microtx-service/internal/errors"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// HistoryService is a thin composition over the store for paginated reads of
// a player's past transactions.
type HistoryService struct {
	repo   domain.TransactionRepository
	logger *slog.Logger
}

func NewHistoryService(repo domain.TransactionRepository, logger *slog.Logger) *HistoryService {
	return &HistoryService{
		repo:   repo,
		logger: logger,
	}
}

type TransactionListResponse struct {
	Transactions []*domain.Transaction `json:"transactions"`
	Count        int                   `json:"count"`
	HasMore      bool                  `json:"has_more"`
	NextCursor   *uuid.UUID            `json:"next_cursor,omitempty"`
}

// ListTransactions validates the player ID and cursor, clamps the limit, and
// returns one ordered page plus whether further rows exist.
func (s *HistoryService) ListTransactions(playerIDStr string, limit int, cursorStr string) (*TransactionListResponse, error) {
	playerID, err := uuid.Parse(playerIDStr)
	if err != nil {
		return nil, errors.ErrInvalidPlayerID
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var cursor *uuid.UUID
	if cursorStr != "" {
		c, err := uuid.Parse(cursorStr)
		if err != nil {
			return nil, errors.ErrInvalidCursor
		}
		cursor = &c
	}

	s.logger.Info("Listing transactions",
		"player_id", playerID, "limit", limit, "cursor", cursorStr)

	transactions, hasMore, err := s.repo.FindByPlayer(playerID, limit, cursor)
	if err != nil {
		return nil, err
	}

	resp := &TransactionListResponse{
		Transactions: transactions,
		Count:        len(transactions),
		HasMore:      hasMore,
	}
	if hasMore && len(transactions) > 0 {
		last := transactions[len(transactions)-1].ID
		resp.NextCursor = &last
	}
	return resp, nil
}
