package port

import (
	"context"
	"time"

	"github.com/vitrine/stock-reserve/internal/core/domain"
)

// ReserveResult is the outcome of a successful create-or-extend.
type ReserveResult struct {
	Reservation domain.Reservation
	Extended    bool // an existing active hold was updated instead of inserted
	Available   int  // units still claimable after this reserve
}

type ReservationStore interface {
	// GetVariant retrieves a variant by ID, nil when unknown
	GetVariant(ctx context.Context, variantID string) (*domain.Variant, error)

	// Reserve atomically checks availability and inserts or updates the
	// holder's reservation. Concurrent reserves for the same variant
	// serialize against each other. Returns domain.InsufficientStockError
	// when the variant cannot cover the requested quantity.
	Reserve(ctx context.Context, variantID string, holder domain.Holder, quantity int, ttl time.Duration) (*ReserveResult, error)

	// Extend pushes a reservation's expiry to now+ttl, leaving quantity
	// untouched. Rejects converted reservations.
	Extend(ctx context.Context, reservationID string, ttl time.Duration) (*domain.Reservation, error)

	// Cancel deletes a reservation and releases its quantity. Rejects
	// converted reservations.
	Cancel(ctx context.Context, reservationID string) (*domain.Reservation, error)

	// Convert marks a reservation as turned into an order. Terminal: the
	// row is retained but leaves availability accounting for good.
	Convert(ctx context.Context, reservationID, orderID string) (*domain.Reservation, error)

	// Availability reads the current stock picture for a variant, reaping
	// any of its expired holds first.
	Availability(ctx context.Context, variantID string) (*domain.Availability, error)

	// ListActiveByHolder returns the holder's active reservations with
	// variant detail.
	ListActiveByHolder(ctx context.Context, holder domain.Holder) ([]domain.ReservationDetail, error)

	// ReapExpired deletes every lapsed unconverted reservation, writing one
	// audit entry per reclaimed row. Idempotent.
	ReapExpired(ctx context.Context) (int, error)

	// ListAuditByVariant returns recent audit entries for a variant,
	// newest first.
	ListAuditByVariant(ctx context.Context, variantID string, limit int) ([]domain.AuditEntry, error)
}
