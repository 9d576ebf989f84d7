package port

import (
	"context"

	"github.com/vitrine/stock-reserve/internal/core/domain"
)

// StockEventPublisher notifies the inventory source that converted stock
// must be decremented permanently. Out-of-band: failures are logged by the
// caller, never rolled back into the conversion.
type StockEventPublisher interface {
	PublishStockCommitted(ctx context.Context, event domain.StockCommitted) error
}
