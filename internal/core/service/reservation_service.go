package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vitrine/stock-reserve/internal/core/domain"
	"github.com/vitrine/stock-reserve/internal/metrics"
	"github.com/vitrine/stock-reserve/internal/port"
)

// ReservationService is the reservation lifecycle manager: create-or-extend,
// extend, cancel, convert and reclaim, with the availability calculator on
// the side. All cross-request coordination happens in the store; the service
// itself keeps no shared state.
//
// cache and events are optional; a nil value disables them.
type ReservationService struct {
	store  port.ReservationStore
	cache  port.AvailabilityCache
	events port.StockEventPublisher
	ttl    time.Duration
	logger zerolog.Logger
}

func NewReservationService(store port.ReservationStore, cache port.AvailabilityCache, events port.StockEventPublisher, ttl time.Duration, logger zerolog.Logger) *ReservationService {
	return &ReservationService{
		store:  store,
		cache:  cache,
		events: events,
		ttl:    ttl,
		logger: logger,
	}
}

// TTL returns the default hold duration.
func (s *ReservationService) TTL() time.Duration {
	return s.ttl
}

// Reserve creates a hold on quantity units of a variant, or updates the
// holder's existing active hold (resubmission extends rather than stacking).
func (s *ReservationService) Reserve(ctx context.Context, variantID string, quantity int, holder domain.Holder) (*port.ReserveResult, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if holder.IsZero() {
		return nil, domain.ErrMissingHolder
	}

	result, err := s.store.Reserve(ctx, variantID, holder, quantity, s.ttl)
	if err != nil {
		if _, ok := err.(*domain.InsufficientStockError); ok {
			metrics.InsufficientStock.Inc()
		}
		return nil, err
	}

	s.invalidate(ctx, variantID)

	action := domain.AuditCreated
	if result.Extended {
		action = domain.AuditExtended
	}
	metrics.ReservationActions.WithLabelValues(string(action)).Inc()

	s.logger.Info().
		Str("reservation_id", result.Reservation.ID).
		Str("variant_id", variantID).
		Str("holder", holder.Key()).
		Int("quantity", quantity).
		Bool("extended", result.Extended).
		Msg("reservation reserved")

	return result, nil
}

// Extend pushes a reservation's expiry out by ttl (the service default when
// ttl is zero). Quantity is untouched, so no availability re-check is
// needed: the holder cannot shrink anyone else's capacity this way.
func (s *ReservationService) Extend(ctx context.Context, reservationID string, ttl time.Duration) (*domain.Reservation, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}

	res, err := s.store.Extend(ctx, reservationID, ttl)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, res.VariantID)
	metrics.ReservationActions.WithLabelValues(string(domain.AuditExtended)).Inc()

	s.logger.Info().
		Str("reservation_id", res.ID).
		Str("variant_id", res.VariantID).
		Time("expires_at", res.ExpiresAt).
		Msg("reservation extended")

	return res, nil
}

// Cancel releases a hold ahead of its expiry. Converted reservations are
// terminal and cannot be cancelled.
func (s *ReservationService) Cancel(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	res, err := s.store.Cancel(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, res.VariantID)
	metrics.ReservationActions.WithLabelValues(string(domain.AuditCancelled)).Inc()

	s.logger.Info().
		Str("reservation_id", res.ID).
		Str("variant_id", res.VariantID).
		Int("quantity", res.Quantity).
		Msg("reservation cancelled")

	return res, nil
}

// Convert hands the reservation off to a placed order. Once this returns,
// the quantity is committed and the inventory source is told, out of band,
// to make the stock decrement permanent.
func (s *ReservationService) Convert(ctx context.Context, reservationID, orderID string) (*domain.Reservation, error) {
	if orderID == "" {
		return nil, domain.ErrMissingOrderID
	}

	res, err := s.store.Convert(ctx, reservationID, orderID)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, res.VariantID)
	metrics.ReservationActions.WithLabelValues(string(domain.AuditConverted)).Inc()

	if s.events != nil {
		event := domain.StockCommitted{
			ReservationID: res.ID,
			VariantID:     res.VariantID,
			OrderID:       orderID,
			Quantity:      res.Quantity,
			OccurredAt:    time.Now().UTC(),
		}
		if err := s.events.PublishStockCommitted(ctx, event); err != nil {
			// The conversion stands either way; the inventory source
			// reconciles from the audit trail if the event is lost.
			s.logger.Error().Err(err).
				Str("reservation_id", res.ID).
				Str("order_id", orderID).
				Msg("failed to publish stock committed event")
		}
	}

	s.logger.Info().
		Str("reservation_id", res.ID).
		Str("variant_id", res.VariantID).
		Str("order_id", orderID).
		Int("quantity", res.Quantity).
		Msg("reservation converted to order")

	return res, nil
}

// CheckAvailability reports how much of a variant's stock is claimable right
// now. Display-only: the race-free re-check happens inside Reserve.
func (s *ReservationService) CheckAvailability(ctx context.Context, variantID string) (*domain.Availability, error) {
	if s.cache != nil {
		if a, ok, err := s.cache.GetAvailability(ctx, variantID); err == nil && ok {
			return a, nil
		}
	}

	a, err := s.store.Availability(ctx, variantID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAvailability(ctx, *a); err != nil {
			s.logger.Warn().Err(err).Str("variant_id", variantID).Msg("failed to cache availability")
		}
	}
	return a, nil
}

// ListMine returns the holder's active reservations. A request with no
// holder identity gets an empty list, not an error.
func (s *ReservationService) ListMine(ctx context.Context, holder domain.Holder) ([]domain.ReservationDetail, error) {
	if holder.IsZero() {
		return nil, nil
	}
	return s.store.ListActiveByHolder(ctx, holder)
}

// CleanupExpired reclaims every lapsed unconverted hold. Concurrent triggers
// collapse to a single sweep via the shared lock; callers that lose the race
// get a zero count.
func (s *ReservationService) CleanupExpired(ctx context.Context) (int, error) {
	if s.cache != nil {
		ok, err := s.cache.AcquireSweepLock(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("sweep lock unavailable, sweeping anyway")
		} else if !ok {
			s.logger.Debug().Msg("sweep already in progress elsewhere")
			return 0, nil
		} else {
			defer func() {
				if err := s.cache.ReleaseSweepLock(ctx); err != nil {
					s.logger.Warn().Err(err).Msg("failed to release sweep lock")
				}
			}()
		}
	}

	count, err := s.store.ReapExpired(ctx)
	if err != nil {
		return count, err
	}

	metrics.ReclaimedHolds.Add(float64(count))
	metrics.LastSweepSize.Set(float64(count))
	if count > 0 {
		metrics.ReservationActions.WithLabelValues(string(domain.AuditExpired)).Add(float64(count))
		s.logger.Info().Int("count", count).Msg("reclaimed expired reservations")
	}
	return count, nil
}

// AuditTrail exposes the append-only log for operational reporting.
func (s *ReservationService) AuditTrail(ctx context.Context, variantID string, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.store.ListAuditByVariant(ctx, variantID, limit)
}

func (s *ReservationService) invalidate(ctx context.Context, variantID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, variantID); err != nil {
		s.logger.Warn().Err(err).Str("variant_id", variantID).Msg("failed to invalidate availability cache")
	}
}
