package finance

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount rejects zero and negative transaction amounts.
var ErrInvalidAmount = errors.New("transaction amount must be greater than 0")

// ValidateAmount accepts any strictly positive amount and rejects everything
// else. It is the write-boundary guard: aggregation assumes it already ran,
// so malformed amounts never reach the rollup code.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
