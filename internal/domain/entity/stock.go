package entity

import (
	"fmt"

	domainerrors "shop/internal/domain/errors"
)

// StockQuantity wraps a non-negative unit count. Subtracting below zero is
// an invariant violation.
type StockQuantity struct {
	value int
}

// NewStockQuantity creates a stock quantity from a non-negative count.
func NewStockQuantity(value int) (StockQuantity, error) {
	return newValueObject(StockQuantity{value: value})
}

func (q StockQuantity) validate() error {
	if q.value < 0 {
		return domainerrors.ErrInvariantViolation.WrapMessage(
			fmt.Sprintf("stock quantity %d is negative", q.value))
	}

	return nil
}

// Value returns the unit count.
func (q StockQuantity) Value() int {
	return q.value
}

// Add returns the quantity increased by amount.
func (q StockQuantity) Add(amount int) (StockQuantity, error) {
	if amount < 0 {
		return StockQuantity{}, domainerrors.ErrInvariantViolation.WrapMessage(
			fmt.Sprintf("cannot add negative amount %d to stock", amount))
	}

	return StockQuantity{value: q.value + amount}, nil
}

// Subtract returns the quantity decreased by amount, failing below zero.
func (q StockQuantity) Subtract(amount int) (StockQuantity, error) {
	if amount < 0 {
		return StockQuantity{}, domainerrors.ErrInvariantViolation.WrapMessage(
			fmt.Sprintf("cannot subtract negative amount %d from stock", amount))
	}
	if amount > q.value {
		return StockQuantity{}, domainerrors.ErrInvariantViolation.WrapMessage(
			fmt.Sprintf("cannot subtract %d from stock of %d", amount, q.value))
	}

	return StockQuantity{value: q.value - amount}, nil
}

// IsAtOrBelowThreshold reports whether the count is at or below the given
// low-stock threshold.
func (q StockQuantity) IsAtOrBelowThreshold(threshold int) bool {
	return q.value <= threshold
}

// Equals reports value equality.
func (q StockQuantity) Equals(other StockQuantity) bool {
	return q.value == other.value
}
