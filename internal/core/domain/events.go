package domain

import "time"

// StockCommitted is emitted when a reservation is converted to an order.
// The inventory source consumes it to make the stock decrement permanent.
type StockCommitted struct {
	ReservationID string    `json:"reservation_id"`
	VariantID     string    `json:"variant_id"`
	OrderID       string    `json:"order_id"`
	Quantity      int       `json:"quantity"`
	OccurredAt    time.Time `json:"occurred_at"`
}
