package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vitrine/stock-reserve/internal/core/domain"
	"github.com/vitrine/stock-reserve/internal/port"
)

// MySQLStore persists reservations, variants and the audit trail. All
// availability math for a variant happens inside a transaction that holds a
// row lock on that variant, so concurrent reserves for the same variant
// serialize while different variants proceed independently.
//
// Lock ordering is variant row first, reservation rows second, everywhere a
// transaction needs both.
type MySQLStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMySQLStore(db *sql.DB, logger zerolog.Logger) *MySQLStore {
	return &MySQLStore{db: db, logger: logger}
}

func (s *MySQLStore) GetVariant(ctx context.Context, variantID string) (*domain.Variant, error) {
	var v domain.Variant
	err := s.db.QueryRowContext(ctx, `
		SELECT id, sku, name, total_stock, reserved_count, created_at, updated_at
		FROM variants WHERE id = ?`, variantID,
	).Scan(&v.ID, &v.SKU, &v.Name, &v.TotalStock, &v.ReservedCount, &v.CreatedAt, &v.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query variant: %w", err)
	}
	return &v, nil
}

func (s *MySQLStore) Reserve(ctx context.Context, variantID string, holder domain.Holder, quantity int, ttl time.Duration) (*port.ReserveResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	var totalStock, reservedCount int
	err = tx.QueryRowContext(ctx, `
		SELECT total_stock, reserved_count FROM variants WHERE id = ? FOR UPDATE`, variantID,
	).Scan(&totalStock, &reservedCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrVariantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock variant: %w", err)
	}

	// Lapsed holds for this variant still sit in reserved_count until
	// someone reaps them. Do it here, while we already hold the lock.
	_, freed, err := s.reapVariantTx(ctx, tx, variantID, now)
	if err != nil {
		return nil, err
	}
	reservedCount -= freed

	var (
		existingID      string
		existingQty     int
		existingCreated time.Time
	)
	err = tx.QueryRowContext(ctx, `
		SELECT id, quantity, created_at FROM stock_reservations
		WHERE variant_id = ? AND holder_key = ? AND order_id IS NULL AND expires_at > ?
		LIMIT 1`, variantID, holder.Key(), now,
	).Scan(&existingID, &existingQty, &existingCreated)
	exists := err == nil
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("query existing reservation: %w", err)
	}

	// The holder's own hold does not count against them, so they can grow
	// or shrink it freely.
	available := totalStock - reservedCount + existingQty
	if quantity > available {
		return nil, &domain.InsufficientStockError{
			VariantID: variantID,
			Requested: quantity,
			Available: available,
		}
	}

	expiresAt := now.Add(ttl)
	res := domain.Reservation{
		VariantID: variantID,
		Quantity:  quantity,
		Holder:    holder,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}

	action := domain.AuditCreated
	notes := "reservation created via API"
	if exists {
		res.ID = existingID
		res.CreatedAt = existingCreated
		action = domain.AuditExtended
		notes = "reservation updated via API"

		_, err = tx.ExecContext(ctx, `
			UPDATE stock_reservations SET quantity = ?, expires_at = ? WHERE id = ?`,
			quantity, expiresAt, existingID,
		)
		if err != nil {
			return nil, fmt.Errorf("update reservation: %w", err)
		}
	} else {
		res.ID = uuid.New().String()

		_, err = tx.ExecContext(ctx, `
			INSERT INTO stock_reservations
				(id, variant_id, quantity, holder_key, user_id, session_key, expires_at, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			res.ID, variantID, quantity, holder.Key(),
			nullString(holder.UserID), holder.SessionKey, expiresAt, now,
		)
		if err != nil {
			return nil, fmt.Errorf("insert reservation: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE variants SET reserved_count = reserved_count + ?, updated_at = ? WHERE id = ?`,
		quantity-existingQty, now, variantID,
	)
	if err != nil {
		return nil, fmt.Errorf("update reserved count: %w", err)
	}

	if err := insertAuditTx(ctx, tx, domain.AuditEntry{
		ReservationID: res.ID,
		VariantID:     variantID,
		Action:        action,
		Quantity:      quantity,
		Holder:        holder,
		Notes:         notes,
		CreatedAt:     now,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reserve: %w", err)
	}

	return &port.ReserveResult{
		Reservation: res,
		Extended:    exists,
		Available:   available - quantity,
	}, nil
}

func (s *MySQLStore) Extend(ctx context.Context, reservationID string, ttl time.Duration) (*domain.Reservation, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := getReservationTx(ctx, tx, reservationID, true)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrReservationNotFound
	}
	if res.Converted() {
		return nil, domain.ErrAlreadyConverted
	}

	now := time.Now().UTC()
	res.ExpiresAt = now.Add(ttl)

	_, err = tx.ExecContext(ctx, `
		UPDATE stock_reservations SET expires_at = ? WHERE id = ?`,
		res.ExpiresAt, reservationID,
	)
	if err != nil {
		return nil, fmt.Errorf("update expiry: %w", err)
	}

	if err := insertAuditTx(ctx, tx, domain.AuditEntry{
		ReservationID: res.ID,
		VariantID:     res.VariantID,
		Action:        domain.AuditExtended,
		Quantity:      res.Quantity,
		Holder:        res.Holder,
		Notes:         fmt.Sprintf("reservation extended by %d minutes", int(ttl.Minutes())),
		CreatedAt:     now,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit extend: %w", err)
	}
	return res, nil
}

func (s *MySQLStore) Cancel(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Peek at the row to learn its variant, then take locks in the
	// variant-first order and re-read.
	res, err := getReservationTx(ctx, tx, reservationID, false)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrReservationNotFound
	}

	if err := lockVariantTx(ctx, tx, res.VariantID); err != nil {
		return nil, err
	}
	res, err = getReservationTx(ctx, tx, reservationID, true)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrReservationNotFound
	}
	if res.Converted() {
		return nil, domain.ErrAlreadyConverted
	}

	now := time.Now().UTC()

	// The audit row outlives the reservation, so it carries no reference.
	if err := insertAuditTx(ctx, tx, domain.AuditEntry{
		VariantID: res.VariantID,
		Action:    domain.AuditCancelled,
		Quantity:  res.Quantity,
		Holder:    res.Holder,
		Notes:     "reservation cancelled by holder",
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM stock_reservations WHERE id = ?`, reservationID)
	if err != nil {
		return nil, fmt.Errorf("delete reservation: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE variants SET reserved_count = reserved_count - ?, updated_at = ? WHERE id = ?`,
		res.Quantity, now, res.VariantID,
	)
	if err != nil {
		return nil, fmt.Errorf("update reserved count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancel: %w", err)
	}
	return res, nil
}

func (s *MySQLStore) Convert(ctx context.Context, reservationID, orderID string) (*domain.Reservation, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := getReservationTx(ctx, tx, reservationID, false)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrReservationNotFound
	}

	if err := lockVariantTx(ctx, tx, res.VariantID); err != nil {
		return nil, err
	}
	res, err = getReservationTx(ctx, tx, reservationID, true)
	if err != nil {
		return nil, err
	}
	if res == nil {
		// Reaped between the peek and the lock.
		return nil, domain.ErrReservationNotFound
	}
	if res.Converted() {
		return nil, domain.ErrAlreadyConverted
	}

	now := time.Now().UTC()

	// Conversion is allowed past expiry as long as the row has not been
	// reclaimed; the guard is order_id, not the timestamp.
	result, err := tx.ExecContext(ctx, `
		UPDATE stock_reservations SET order_id = ? WHERE id = ? AND order_id IS NULL`,
		orderID, reservationID,
	)
	if err != nil {
		return nil, fmt.Errorf("convert reservation: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, domain.ErrAlreadyConverted
	}
	res.OrderID = orderID

	_, err = tx.ExecContext(ctx, `
		UPDATE variants SET reserved_count = reserved_count - ?, updated_at = ? WHERE id = ?`,
		res.Quantity, now, res.VariantID,
	)
	if err != nil {
		return nil, fmt.Errorf("update reserved count: %w", err)
	}

	if err := insertAuditTx(ctx, tx, domain.AuditEntry{
		ReservationID: res.ID,
		VariantID:     res.VariantID,
		Action:        domain.AuditConverted,
		Quantity:      res.Quantity,
		Holder:        res.Holder,
		Notes:         fmt.Sprintf("converted to order %s", orderID),
		CreatedAt:     now,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit convert: %w", err)
	}
	return res, nil
}

func (s *MySQLStore) Availability(ctx context.Context, variantID string) (*domain.Availability, error) {
	now := time.Now().UTC()

	// Display reads stay lock-free unless there are lapsed holds to reap.
	var pending bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM stock_reservations
			WHERE variant_id = ? AND order_id IS NULL AND expires_at <= ?)`,
		variantID, now,
	).Scan(&pending)
	if err != nil {
		return nil, fmt.Errorf("check lapsed holds: %w", err)
	}

	if pending {
		if err := s.reapVariant(ctx, variantID, now); err != nil {
			return nil, err
		}
	}

	var totalStock, reservedCount int
	err = s.db.QueryRowContext(ctx, `
		SELECT total_stock, reserved_count FROM variants WHERE id = ?`, variantID,
	).Scan(&totalStock, &reservedCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrVariantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query variant: %w", err)
	}

	return &domain.Availability{
		VariantID:  variantID,
		TotalStock: totalStock,
		Reserved:   reservedCount,
		Available:  totalStock - reservedCount,
	}, nil
}

func (s *MySQLStore) ListActiveByHolder(ctx context.Context, holder domain.Holder) ([]domain.ReservationDetail, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.variant_id, r.quantity, r.user_id, r.session_key,
		       r.expires_at, r.created_at, v.sku, v.name
		FROM stock_reservations r
		JOIN variants v ON v.id = r.variant_id
		WHERE r.holder_key = ? AND r.order_id IS NULL AND r.expires_at > ?
		ORDER BY r.created_at`,
		holder.Key(), time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("query holder reservations: %w", err)
	}
	defer rows.Close()

	var out []domain.ReservationDetail
	for rows.Next() {
		var (
			d      domain.ReservationDetail
			userID sql.NullString
		)
		err := rows.Scan(&d.ID, &d.VariantID, &d.Quantity, &userID, &d.Holder.SessionKey,
			&d.ExpiresAt, &d.CreatedAt, &d.SKU, &d.ProductName)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		d.Holder.UserID = userID.String
		out = append(out, d)
	}
	return out, rows.Err()
}

// ReapExpired sweeps the whole table, variant by variant so the lock window
// stays local to one variant. After each variant it reconciles the running
// counter against the true sum and repairs any drift.
func (s *MySQLStore) ReapExpired(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT variant_id FROM stock_reservations
		WHERE order_id IS NULL AND expires_at <= ?`, now,
	)
	if err != nil {
		return 0, fmt.Errorf("query lapsed variants: %w", err)
	}
	var variantIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan variant id: %w", err)
		}
		variantIDs = append(variantIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	total := 0
	for _, variantID := range variantIDs {
		n, err := s.reapAndReconcile(ctx, variantID, now)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (s *MySQLStore) reapAndReconcile(ctx context.Context, variantID string, now time.Time) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := lockVariantTx(ctx, tx, variantID); err != nil {
		if errors.Is(err, domain.ErrVariantNotFound) {
			return 0, nil
		}
		return 0, err
	}

	reaped, _, err := s.reapVariantTx(ctx, tx, variantID, now)
	if err != nil {
		return 0, err
	}

	var activeSum, reservedCount int
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(quantity), 0) FROM stock_reservations
		WHERE variant_id = ? AND order_id IS NULL AND expires_at > ?`,
		variantID, now,
	).Scan(&activeSum)
	if err != nil {
		return 0, fmt.Errorf("sum active reservations: %w", err)
	}
	err = tx.QueryRowContext(ctx, `
		SELECT reserved_count FROM variants WHERE id = ?`, variantID,
	).Scan(&reservedCount)
	if err != nil {
		return 0, fmt.Errorf("query reserved count: %w", err)
	}

	if reservedCount != activeSum {
		s.logger.Warn().
			Str("variant_id", variantID).
			Int("reserved_count", reservedCount).
			Int("active_sum", activeSum).
			Msg("reserved counter drift, repairing")

		_, err = tx.ExecContext(ctx, `
			UPDATE variants SET reserved_count = ?, updated_at = ? WHERE id = ?`,
			activeSum, now, variantID,
		)
		if err != nil {
			return 0, fmt.Errorf("repair reserved count: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit reap: %w", err)
	}
	return reaped, nil
}

// reapVariant reaps one variant's lapsed holds in its own transaction,
// taking the variant lock first.
func (s *MySQLStore) reapVariant(ctx context.Context, variantID string, now time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := lockVariantTx(ctx, tx, variantID); err != nil {
		if errors.Is(err, domain.ErrVariantNotFound) {
			return nil
		}
		return err
	}
	if _, _, err := s.reapVariantTx(ctx, tx, variantID, now); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reap: %w", err)
	}
	return nil
}

// reapVariantTx deletes the variant's lapsed unconverted holds inside the
// caller's transaction, one audit entry per reclaimed row. The caller must
// already hold the variant row lock. Returns the number of rows reclaimed
// and the total quantity freed.
func (s *MySQLStore) reapVariantTx(ctx context.Context, tx *sql.Tx, variantID string, now time.Time) (int, int, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, quantity, user_id, session_key FROM stock_reservations
		WHERE variant_id = ? AND order_id IS NULL AND expires_at <= ?
		FOR UPDATE`, variantID, now,
	)
	if err != nil {
		return 0, 0, fmt.Errorf("query lapsed holds: %w", err)
	}

	type lapsed struct {
		id       string
		quantity int
		holder   domain.Holder
	}
	var expired []lapsed
	for rows.Next() {
		var (
			l      lapsed
			userID sql.NullString
		)
		if err := rows.Scan(&l.id, &l.quantity, &userID, &l.holder.SessionKey); err != nil {
			rows.Close()
			return 0, 0, fmt.Errorf("scan lapsed hold: %w", err)
		}
		l.holder.UserID = userID.String
		expired = append(expired, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, 0, err
	}
	if len(expired) == 0 {
		return 0, 0, nil
	}

	reaped, freed := 0, 0
	for _, l := range expired {
		if err := insertAuditTx(ctx, tx, domain.AuditEntry{
			VariantID: variantID,
			Action:    domain.AuditExpired,
			Quantity:  l.quantity,
			Holder:    l.holder,
			Notes:     "reservation expired and reclaimed",
			CreatedAt: now,
		}); err != nil {
			return 0, 0, err
		}

		// Re-checked here so a conversion that slipped in ahead of our
		// row lock is never thrown away.
		result, err := tx.ExecContext(ctx, `
			DELETE FROM stock_reservations WHERE id = ? AND order_id IS NULL`, l.id,
		)
		if err != nil {
			return 0, 0, fmt.Errorf("delete lapsed hold: %w", err)
		}
		if n, _ := result.RowsAffected(); n == 1 {
			reaped++
			freed += l.quantity
		}
	}

	if freed > 0 {
		_, err = tx.ExecContext(ctx, `
			UPDATE variants SET reserved_count = reserved_count - ?, updated_at = ? WHERE id = ?`,
			freed, now, variantID,
		)
		if err != nil {
			return 0, 0, fmt.Errorf("update reserved count: %w", err)
		}
	}
	return reaped, freed, nil
}

// ListAuditByVariant returns the most recent audit entries for a variant,
// newest first.
func (s *MySQLStore) ListAuditByVariant(ctx context.Context, variantID string, limit int) ([]domain.AuditEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, reservation_id, variant_id, action, quantity, user_id, session_key, notes, created_at
		FROM reservation_audit
		WHERE variant_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, variantID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query audit: %w", err)
	}
	defer rows.Close()

	var out []domain.AuditEntry
	for rows.Next() {
		var (
			e             domain.AuditEntry
			reservationID sql.NullString
			userID        sql.NullString
		)
		err := rows.Scan(&e.ID, &reservationID, &e.VariantID, &e.Action, &e.Quantity,
			&userID, &e.Holder.SessionKey, &e.Notes, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.ReservationID = reservationID.String
		e.Holder.UserID = userID.String
		out = append(out, e)
	}
	return out, rows.Err()
}

func getReservationTx(ctx context.Context, tx *sql.Tx, reservationID string, forUpdate bool) (*domain.Reservation, error) {
	query := `
		SELECT id, variant_id, quantity, user_id, session_key, expires_at, order_id, created_at
		FROM stock_reservations WHERE id = ?`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var (
		res     domain.Reservation
		userID  sql.NullString
		orderID sql.NullString
	)
	err := tx.QueryRowContext(ctx, query, reservationID).Scan(
		&res.ID, &res.VariantID, &res.Quantity, &userID, &res.Holder.SessionKey,
		&res.ExpiresAt, &orderID, &res.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query reservation: %w", err)
	}
	res.Holder.UserID = userID.String
	res.OrderID = orderID.String
	return &res, nil
}

func lockVariantTx(ctx context.Context, tx *sql.Tx, variantID string) error {
	var id string
	err := tx.QueryRowContext(ctx, `
		SELECT id FROM variants WHERE id = ? FOR UPDATE`, variantID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrVariantNotFound
	}
	if err != nil {
		return fmt.Errorf("lock variant: %w", err)
	}
	return nil
}

func insertAuditTx(ctx context.Context, tx *sql.Tx, e domain.AuditEntry) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO reservation_audit
			(reservation_id, variant_id, action, quantity, user_id, session_key, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		nullString(e.ReservationID), e.VariantID, string(e.Action), e.Quantity,
		nullString(e.Holder.UserID), e.Holder.SessionKey, e.Notes, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
