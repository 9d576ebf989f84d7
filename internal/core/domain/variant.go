package domain

import "time"

// Variant is a purchasable stock-keeping unit. TotalStock is owned by the
// inventory source; the reservation engine only reads it. ReservedCount is
// the running sum of active reserved quantity, maintained under the variant
// row lock.
type Variant struct {
	ID            string
	SKU           string
	Name          string
	TotalStock    int
	ReservedCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Availability is a point-in-time view of how much of a variant's stock
// remains claimable.
type Availability struct {
	VariantID  string
	TotalStock int
	Reserved   int
	Available  int
}

func (a Availability) CanFulfill(quantity int) bool {
	return quantity <= a.Available
}
