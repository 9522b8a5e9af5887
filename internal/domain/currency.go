package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Minor-unit digits for currencies that deviate from the usual two.
var minorUnitDigits = map[string]int32{
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"BHD": 3,
	"KWD": 3,
	"OMR": 3,
}

// MinorUnitDigits returns the number of decimal places for a 3-letter
// currency code. Unknown codes default to 2.
func MinorUnitDigits(currency string) int32 {
	if d, ok := minorUnitDigits[currency]; ok {
		return d
	}
	return 2
}

// MajorUnitAmount converts an amount in minor units to its major-unit
// decimal representation, e.g. 1999 USD cents -> 19.99.
func MajorUnitAmount(amountCents int64, currency string) decimal.Decimal {
	return decimal.New(amountCents, -MinorUnitDigits(currency))
}

// Amount is the transaction's unit price expressed in major currency units.
func (t *Transaction) Amount() decimal.Decimal {
	return MajorUnitAmount(t.PriceCents, t.Currency)
}

// MarshalJSON includes the derived major-unit price alongside the stored
// fields, so API payloads carry both price_cents and its decimal form.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	type plain Transaction
	return json.Marshal(struct {
		*plain
		Price string `json:"price"`
	}{(*plain)(t), t.Amount().String()})
}
