package errors

import (
	"fmt"
	"net/http"
	"strings"
)

type ErrorCode string

const (
	ValidationError      ErrorCode = "validation_error"
	InvalidInput         ErrorCode = "invalid_input"
	TransactionNotFound  ErrorCode = "transaction_not_found"
	DuplicateTransaction ErrorCode = "duplicate_transaction"
	DatabaseError        ErrorCode = "database_error"
	PaymentError         ErrorCode = "payment_error"
	InternalError        ErrorCode = "internal_error"
)

type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	Violations []string  `json:"violations,omitempty"`
}

func (e AppError) Error() string {
	if len(e.Violations) > 0 {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, strings.Join(e.Violations, "; "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// NewValidationError aggregates every field violation into a single error so
// the caller can fix all problems in one round trip.
func NewValidationError(violations []string) *AppError {
	return &AppError{
		Code:       ValidationError,
		Message:    "request validation failed",
		Violations: violations,
	}
}

// HTTPStatus maps the error code to a transport status. The core never writes
// HTTP responses itself; the handler layer uses this mapping.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ValidationError, InvalidInput:
		return http.StatusBadRequest
	case TransactionNotFound:
		return http.StatusNotFound
	case DuplicateTransaction:
		return http.StatusConflict
	case PaymentError:
		return http.StatusPaymentRequired
	case DatabaseError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Predefined errors for common cases
var (
	ErrTransactionNotFound  = NewAppError(TransactionNotFound, "transaction not found")
	ErrDuplicateTransaction = NewAppError(DuplicateTransaction, "transaction already exists")
	ErrInvalidPlayerID      = NewAppError(InvalidInput, "player ID must be a valid UUID")
	ErrInvalidCursor        = NewAppError(InvalidInput, "cursor must be a valid transaction ID")
)
