package port

import (
	"context"

	"github.com/vitrine/stock-reserve/internal/core/domain"
)

type AvailabilityCache interface {
	// GetAvailability returns a cached snapshot, false when absent or stale
	GetAvailability(ctx context.Context, variantID string) (*domain.Availability, bool, error)

	// SetAvailability caches a snapshot for display reads
	SetAvailability(ctx context.Context, a domain.Availability) error

	// Invalidate drops the snapshot after any write touching the variant
	Invalidate(ctx context.Context, variantID string) error

	// AcquireSweepLock claims the shared sweep slot, false if another
	// worker holds it
	AcquireSweepLock(ctx context.Context) (bool, error)

	// ReleaseSweepLock frees the sweep slot
	ReleaseSweepLock(ctx context.Context) error
}
