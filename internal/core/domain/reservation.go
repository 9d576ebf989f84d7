package domain

import "time"

// Holder identifies who owns a reservation: an authenticated user or an
// anonymous session. Exactly one of the two fields is set.
type Holder struct {
	UserID     string
	SessionKey string
}

// Key returns the canonical holder key used to enforce the one-active-
// reservation-per-(variant, holder) rule.
func (h Holder) Key() string {
	if h.UserID != "" {
		return "user:" + h.UserID
	}
	if h.SessionKey != "" {
		return "session:" + h.SessionKey
	}
	return ""
}

func (h Holder) IsZero() bool {
	return h.UserID == "" && h.SessionKey == ""
}

// Reservation is a time-bounded claim on some quantity of a variant's stock.
// A reservation is active while expires_at is in the future and it has not
// been converted to an order. Conversion is terminal: the row is kept as
// history and no longer counts against availability.
type Reservation struct {
	ID        string
	VariantID string
	Quantity  int
	Holder    Holder
	ExpiresAt time.Time
	OrderID   string // set once converted
	CreatedAt time.Time
}

func (r Reservation) Converted() bool {
	return r.OrderID != ""
}

func (r Reservation) ActiveAt(now time.Time) bool {
	return !r.Converted() && now.Before(r.ExpiresAt)
}

// ReservationDetail is a reservation joined with the variant fields a
// holder-facing listing needs.
type ReservationDetail struct {
	Reservation
	SKU         string
	ProductName string
}

type AuditAction string

const (
	AuditCreated   AuditAction = "created"
	AuditExtended  AuditAction = "extended"
	AuditExpired   AuditAction = "expired"
	AuditConverted AuditAction = "converted"
	AuditCancelled AuditAction = "cancelled"
)

// AuditEntry records one lifecycle transition. Entries are append-only and
// survive deletion of the reservation they describe, so ReservationID may
// reference a row that no longer exists.
type AuditEntry struct {
	ID            int64
	ReservationID string
	VariantID     string
	Action        AuditAction
	Quantity      int
	Holder        Holder
	Notes         string
	CreatedAt     time.Time
}
