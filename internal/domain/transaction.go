package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a transaction. A transaction is created
// pending and transitions exactly once to completed or failed; refunded is
// reachable only through an administrative path outside this service.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

// IsTerminal reports whether no further pipeline transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusRefunded
}

// CanRefund reports whether the transaction is eligible for a refund marking.
func (s Status) CanRefund() bool {
	return s == StatusCompleted
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// Metadata is the caller-supplied key-value payload stored verbatim in a
// JSONB column.
type Metadata map[string]interface{}

// Value implements driver.Valuer for JSONB storage.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		m = Metadata{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = Metadata{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("metadata: cannot scan %T", src)
	}
	if len(b) == 0 {
		*m = Metadata{}
		return nil
	}
	return json.Unmarshal(b, m)
}

// Transaction is the record of one purchase attempt. Rows are never deleted;
// a crash between creation and finalization leaves a pending row behind.
type Transaction struct {
	ID          uuid.UUID `json:"transaction_id"`
	PlayerID    uuid.UUID `json:"player_id"`
	ItemID      string    `json:"item_id"`
	ItemName    string    `json:"item_name"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	Quantity    int       `json:"quantity"`
	Status      Status    `json:"status"`
	ProcessorID *string   `json:"processor_id,omitempty"`
	Metadata    Metadata  `json:"metadata"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TransactionRepository interface {
	InsertPending(tx *Transaction) error
	UpdateStatus(id uuid.UUID, status Status, processorID *string) (*Transaction, error)
	GetByID(id uuid.UUID) (*Transaction, error)
	FindByPlayer(playerID uuid.UUID, limit int, cursor *uuid.UUID) ([]*Transaction, bool, error)
}
