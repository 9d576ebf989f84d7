package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vitrine/stock-reserve/internal/core/domain"
	"github.com/vitrine/stock-reserve/internal/port"
)

// MemoryStore is an in-process ReservationStore with the same lifecycle
// semantics as the MySQL store. It backs unit tests and local development;
// a single mutex stands in for the per-variant row lock.
type MemoryStore struct {
	mu           sync.Mutex
	variants     map[string]*domain.Variant
	reservations map[string]*domain.Reservation
	audit        []domain.AuditEntry
	nextAuditID  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		variants:     make(map[string]*domain.Variant),
		reservations: make(map[string]*domain.Reservation),
	}
}

// AddVariant seeds a variant. Intended for tests and development setup.
func (s *MemoryStore) AddVariant(v domain.Variant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.variants[v.ID] = &v
}

func (s *MemoryStore) GetVariant(ctx context.Context, variantID string) (*domain.Variant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.variants[variantID]
	if !ok {
		return nil, nil
	}
	snapshot := *v
	snapshot.ReservedCount = s.reservedLocked(variantID, "", time.Now().UTC())
	return &snapshot, nil
}

func (s *MemoryStore) Reserve(ctx context.Context, variantID string, holder domain.Holder, quantity int, ttl time.Duration) (*port.ReserveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.variants[variantID]
	if !ok {
		return nil, domain.ErrVariantNotFound
	}

	now := time.Now().UTC()
	s.reapVariantLocked(variantID, now)

	var existing *domain.Reservation
	for _, r := range s.reservations {
		if r.VariantID == variantID && r.Holder.Key() == holder.Key() && r.ActiveAt(now) {
			existing = r
			break
		}
	}

	own := 0
	if existing != nil {
		own = existing.Quantity
	}
	available := v.TotalStock - s.reservedLocked(variantID, "", now) + own
	if quantity > available {
		return nil, &domain.InsufficientStockError{
			VariantID: variantID,
			Requested: quantity,
			Available: available,
		}
	}

	expiresAt := now.Add(ttl)
	var res domain.Reservation
	action := domain.AuditCreated
	notes := "reservation created via API"
	if existing != nil {
		existing.Quantity = quantity
		existing.ExpiresAt = expiresAt
		res = *existing
		action = domain.AuditExtended
		notes = "reservation updated via API"
	} else {
		res = domain.Reservation{
			ID:        uuid.New().String(),
			VariantID: variantID,
			Quantity:  quantity,
			Holder:    holder,
			ExpiresAt: expiresAt,
			CreatedAt: now,
		}
		s.reservations[res.ID] = &res
	}

	s.appendAuditLocked(domain.AuditEntry{
		ReservationID: res.ID,
		VariantID:     variantID,
		Action:        action,
		Quantity:      quantity,
		Holder:        holder,
		Notes:         notes,
		CreatedAt:     now,
	})

	return &port.ReserveResult{
		Reservation: res,
		Extended:    existing != nil,
		Available:   available - quantity,
	}, nil
}

func (s *MemoryStore) Extend(ctx context.Context, reservationID string, ttl time.Duration) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[reservationID]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	if r.Converted() {
		return nil, domain.ErrAlreadyConverted
	}

	now := time.Now().UTC()
	r.ExpiresAt = now.Add(ttl)

	s.appendAuditLocked(domain.AuditEntry{
		ReservationID: r.ID,
		VariantID:     r.VariantID,
		Action:        domain.AuditExtended,
		Quantity:      r.Quantity,
		Holder:        r.Holder,
		Notes:         fmt.Sprintf("reservation extended by %d minutes", int(ttl.Minutes())),
		CreatedAt:     now,
	})

	snapshot := *r
	return &snapshot, nil
}

func (s *MemoryStore) Cancel(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[reservationID]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	if r.Converted() {
		return nil, domain.ErrAlreadyConverted
	}

	s.appendAuditLocked(domain.AuditEntry{
		VariantID: r.VariantID,
		Action:    domain.AuditCancelled,
		Quantity:  r.Quantity,
		Holder:    r.Holder,
		Notes:     "reservation cancelled by holder",
		CreatedAt: time.Now().UTC(),
	})

	snapshot := *r
	delete(s.reservations, reservationID)
	return &snapshot, nil
}

func (s *MemoryStore) Convert(ctx context.Context, reservationID, orderID string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[reservationID]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	if r.Converted() {
		return nil, domain.ErrAlreadyConverted
	}

	r.OrderID = orderID

	s.appendAuditLocked(domain.AuditEntry{
		ReservationID: r.ID,
		VariantID:     r.VariantID,
		Action:        domain.AuditConverted,
		Quantity:      r.Quantity,
		Holder:        r.Holder,
		Notes:         "converted to order " + orderID,
		CreatedAt:     time.Now().UTC(),
	})

	snapshot := *r
	return &snapshot, nil
}

func (s *MemoryStore) Availability(ctx context.Context, variantID string) (*domain.Availability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.variants[variantID]
	if !ok {
		return nil, domain.ErrVariantNotFound
	}

	now := time.Now().UTC()
	s.reapVariantLocked(variantID, now)

	reserved := s.reservedLocked(variantID, "", now)
	return &domain.Availability{
		VariantID:  variantID,
		TotalStock: v.TotalStock,
		Reserved:   reserved,
		Available:  v.TotalStock - reserved,
	}, nil
}

func (s *MemoryStore) ListActiveByHolder(ctx context.Context, holder domain.Holder) ([]domain.ReservationDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	var out []domain.ReservationDetail
	for _, r := range s.reservations {
		if r.Holder.Key() != holder.Key() || !r.ActiveAt(now) {
			continue
		}
		d := domain.ReservationDetail{Reservation: *r}
		if v, ok := s.variants[r.VariantID]; ok {
			d.SKU = v.SKU
			d.ProductName = v.Name
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *MemoryStore) ReapExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	count := 0
	for variantID := range s.variants {
		count += s.reapVariantLocked(variantID, now)
	}
	return count, nil
}

func (s *MemoryStore) ListAuditByVariant(ctx context.Context, variantID string, limit int) ([]domain.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.AuditEntry
	for i := len(s.audit) - 1; i >= 0 && len(out) < limit; i-- {
		if s.audit[i].VariantID == variantID {
			out = append(out, s.audit[i])
		}
	}
	return out, nil
}

// reservedLocked sums active reserved quantity for a variant, excluding
// excludeHolderKey when non-empty.
func (s *MemoryStore) reservedLocked(variantID, excludeHolderKey string, now time.Time) int {
	total := 0
	for _, r := range s.reservations {
		if r.VariantID != variantID || !r.ActiveAt(now) {
			continue
		}
		if excludeHolderKey != "" && r.Holder.Key() == excludeHolderKey {
			continue
		}
		total += r.Quantity
	}
	return total
}

func (s *MemoryStore) reapVariantLocked(variantID string, now time.Time) int {
	count := 0
	for id, r := range s.reservations {
		if r.VariantID != variantID || r.Converted() || now.Before(r.ExpiresAt) {
			continue
		}
		s.appendAuditLocked(domain.AuditEntry{
			VariantID: variantID,
			Action:    domain.AuditExpired,
			Quantity:  r.Quantity,
			Holder:    r.Holder,
			Notes:     "reservation expired and reclaimed",
			CreatedAt: now,
		})
		delete(s.reservations, id)
		count++
	}
	return count
}

func (s *MemoryStore) appendAuditLocked(e domain.AuditEntry) {
	s.nextAuditID++
	e.ID = s.nextAuditID
	s.audit = append(s.audit, e)
}
