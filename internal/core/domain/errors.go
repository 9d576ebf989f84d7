package domain

import (
	"errors"
	"fmt"
)

var (
	ErrVariantNotFound     = errors.New("variant not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyConverted    = errors.New("reservation already converted to an order")
	ErrInvalidQuantity     = errors.New("quantity must be greater than zero")
	ErrMissingHolder       = errors.New("no holder identity")
	ErrMissingOrderID      = errors.New("order id is required")
)

// InsufficientStockError reports a failed availability check along with how
// much is still claimable, so the caller can shrink the request and retry.
type InsufficientStockError struct {
	VariantID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for variant %s: requested %d, available %d",
		e.VariantID, e.Requested, e.Available)
}
