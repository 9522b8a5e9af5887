package repository

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"microtx-service/internal/domain"
	"microtx-service/internal/errors"
)

// maxPageSize is the hard cap on FindByPlayer page sizes, regardless of the
// caller-supplied limit.
const maxPageSize = 1000

const transactionColumns = `
	transaction_id, player_id, item_id, item_name, price_cents, currency,
	quantity, status, processor_id, metadata, created_at, updated_at
`

type transactionRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewTransactionRepository(db SQLExecutor, logger *slog.Logger) domain.TransactionRepository {
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

// InsertPending writes the durability checkpoint row. The insert is a single
// atomic statement; once it returns the transaction is visible to history
// reads even if the process dies before finalization.
func (r *transactionRepository) InsertPending(tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions
		(transaction_id, player_id, item_id, item_name, price_cents, currency, quantity, status, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	now := time.Now().UTC()
	tx.Status = domain.StatusPending

	_, err := r.db.Exec(
		query,
		tx.ID,
		tx.PlayerID,
		tx.ItemID,
		tx.ItemName,
		tx.PriceCents,
		tx.Currency,
		tx.Quantity,
		tx.Status,
		tx.Metadata,
		now,
		now,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505": // unique_violation
				r.logger.Warn("Duplicate transaction ID", "transaction_id", tx.ID)
				return errors.ErrDuplicateTransaction
			case "23514": // check_violation
				r.logger.Warn("Transaction violates schema constraint",
					"transaction_id", tx.ID, "constraint", pqErr.Constraint)
				return errors.NewAppError(errors.InvalidInput, "transaction violates schema constraint").WithDetails(pqErr.Constraint)
			}
		}
		r.logger.Error("Failed to insert pending transaction",
			"transaction_id", tx.ID,
			"player_id", tx.PlayerID,
			"error", err)
		return errors.NewAppError(errors.DatabaseError, "failed to insert pending transaction").WithDetails(err.Error())
	}

	tx.CreatedAt = now
	tx.UpdatedAt = now
	r.logger.Info("Pending transaction created", "transaction_id", tx.ID)
	return nil
}

// UpdateStatus finalizes a transaction in one atomic statement and returns
// the updated row.
func (r *transactionRepository) UpdateStatus(id uuid.UUID, status domain.Status, processorID *string) (*domain.Transaction, error) {
	query := `
		UPDATE transactions
		SET status = $1, processor_id = $2, updated_at = $3
		WHERE transaction_id = $4
		RETURNING ` + transactionColumns

	row := r.db.QueryRow(query, status, processorID, time.Now().UTC(), id)
	tx, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Warn("Transaction not found for status update", "transaction_id", id)
			return nil, errors.ErrTransactionNotFound
		}
		r.logger.Error("Failed to update transaction status",
			"transaction_id", id, "status", status, "error", err)
		return nil, errors.NewAppError(errors.DatabaseError, "failed to update transaction status").WithDetails(err.Error())
	}

	r.logger.Info("Transaction status updated", "transaction_id", id, "status", status)
	return tx, nil
}

func (r *transactionRepository) GetByID(id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`

	tx, err := scanTransaction(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", "transaction_id", id, "error", err)
		return nil, errors.NewAppError(errors.DatabaseError, "failed to get transaction").WithDetails(err.Error())
	}

	return tx, nil
}

// FindByPlayer returns one page of a player's transactions ordered by
// created_at descending, ties broken by transaction_id descending. The
// cursor is the transaction_id of the last row of the previous page. One
// extra row is fetched to compute hasMore without a second query.
func (r *transactionRepository) FindByPlayer(playerID uuid.UUID, limit int, cursor *uuid.UUID) ([]*domain.Transaction, bool, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var rows *sql.Rows
	var err error

	if cursor != nil {
		query := `
			SELECT ` + transactionColumns + `
			FROM transactions
			WHERE player_id = $1
			  AND (created_at, transaction_id) < (
				SELECT created_at, transaction_id FROM transactions WHERE transaction_id = $2
			  )
			ORDER BY created_at DESC, transaction_id DESC
			LIMIT $3
		`
		rows, err = r.db.Query(query, playerID, *cursor, limit+1)
	} else {
		query := `
			SELECT ` + transactionColumns + `
			FROM transactions
			WHERE player_id = $1
			ORDER BY created_at DESC, transaction_id DESC
			LIMIT $2
		`
		rows, err = r.db.Query(query, playerID, limit+1)
	}

	if err != nil {
		r.logger.Error("Failed to query player transactions", "player_id", playerID, "error", err)
		return nil, false, errors.NewAppError(errors.DatabaseError, "failed to query transactions").WithDetails(err.Error())
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0, limit)
	for rows.Next() {
		tx, err := scanTransactionRows(rows)
		if err != nil {
			return nil, false, errors.NewAppError(errors.DatabaseError, "failed to scan transaction").WithDetails(err.Error())
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, false, errors.NewAppError(errors.DatabaseError, "failed to read transactions").WithDetails(err.Error())
	}

	hasMore := len(transactions) > limit
	if hasMore {
		transactions = transactions[:limit]
	}

	r.logger.Info("Retrieved player transactions",
		"player_id", playerID, "count", len(transactions), "has_more", hasMore)
	return transactions, hasMore, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row *sql.Row) (*domain.Transaction, error) {
	return scanInto(row)
}

func scanTransactionRows(rows *sql.Rows) (*domain.Transaction, error) {
	return scanInto(rows)
}

func scanInto(s rowScanner) (*domain.Transaction, error) {
	var tx domain.Transaction
	var processorID sql.NullString

	err := s.Scan(
		&tx.ID,
		&tx.PlayerID,
		&tx.ItemID,
		&tx.ItemName,
		&tx.PriceCents,
		&tx.Currency,
		&tx.Quantity,
		&tx.Status,
		&processorID,
		&tx.Metadata,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if processorID.Valid {
		tx.ProcessorID = &processorID.String
	}

	return &tx, nil
}
