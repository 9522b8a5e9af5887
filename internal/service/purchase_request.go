package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"microtx-service/internal/domain"
	"microtx-service/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// PurchaseRequest is the validated inbound contract for one purchase
// attempt. Validation performs no I/O and reports every violated field at
// once rather than stopping at the first failure.
type PurchaseRequest struct {
	PlayerID   string          `json:"player_id" validate:"required,uuid_rfc4122"`
	ItemID     string          `json:"item_id" validate:"required"`
	ItemName   string          `json:"item_name" validate:"required,max=255"`
	PriceCents int64           `json:"price_cents" validate:"min=1,max=99999999"`
	Currency   string          `json:"currency" validate:"len=3,alpha"`
	Quantity   *int            `json:"quantity" validate:"min=1,max=100"`
	Metadata   domain.Metadata `json:"metadata"`
}

// Normalize applies input canonicalization: the currency code is uppercased,
// quantity defaults to 1 when absent, metadata to an empty map.
func (r *PurchaseRequest) Normalize() {
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	if r.Quantity == nil {
		one := 1
		r.Quantity = &one
	}
	if r.Metadata == nil {
		r.Metadata = domain.Metadata{}
	}
}

// Validate checks all constraints and returns a single aggregated
// validation error, or nil. Normalize must have been applied first so
// optional fields carry their defaults.
func (r *PurchaseRequest) Validate() *errors.AppError {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewAppError(errors.InternalError, "request validation failed").WithDetails(err.Error())
	}

	violations := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		violations = append(violations, violationMessage(fe))
	}
	return errors.NewValidationError(violations)
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "PlayerID":
		return "player_id must be a valid UUID"
	case "ItemID":
		return "item_id must not be empty"
	case "ItemName":
		if fe.Tag() == "max" {
			return "item_name must be at most 255 characters"
		}
		return "item_name must not be empty"
	case "PriceCents":
		return "price_cents must be between 1 and 99999999"
	case "Currency":
		return "currency must be a 3-letter code"
	case "Quantity":
		return "quantity must be between 1 and 100"
	default:
		return fmt.Sprintf("%s failed validation on %s", fe.Field(), fe.Tag())
	}
}
