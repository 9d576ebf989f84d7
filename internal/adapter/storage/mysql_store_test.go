package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"github.com/vitrine/stock-reserve/internal/core/domain"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/storefront?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	return db
}

func seedVariant(t *testing.T, db *sql.DB, variantID string, totalStock int) {
	t.Helper()
	ctx := context.Background()

	db.ExecContext(ctx, `DELETE FROM stock_reservations WHERE variant_id = ?`, variantID)
	db.ExecContext(ctx, `DELETE FROM reservation_audit WHERE variant_id = ?`, variantID)
	_, err := db.ExecContext(ctx, `
		INSERT INTO variants (id, sku, name, total_stock, reserved_count, created_at, updated_at)
		VALUES (?, ?, 'Test Variant', ?, 0, NOW(6), NOW(6))
		ON DUPLICATE KEY UPDATE total_stock = VALUES(total_stock), reserved_count = 0`,
		variantID, "sku-"+variantID, totalStock,
	)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
}

func TestMySQLReserve_Lifecycle(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMySQLStore(db, zerolog.Nop())
	seedVariant(t, db, "test-lifecycle", 10)

	holder := domain.Holder{SessionKey: "lifecycle-sess"}
	result, err := store.Reserve(ctx, "test-lifecycle", holder, 3, 15*time.Minute)
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if result.Available != 7 {
		t.Errorf("expected 7 available, got %d", result.Available)
	}

	// The denormalized counter tracks the hold.
	var reservedCount int
	db.QueryRowContext(ctx, `SELECT reserved_count FROM variants WHERE id = 'test-lifecycle'`).Scan(&reservedCount)
	if reservedCount != 3 {
		t.Errorf("expected reserved_count 3, got %d", reservedCount)
	}

	// Resubmission replaces the hold instead of stacking.
	again, err := store.Reserve(ctx, "test-lifecycle", holder, 5, 15*time.Minute)
	if err != nil {
		t.Fatalf("Reserve resubmission failed: %v", err)
	}
	if !again.Extended {
		t.Error("expected resubmission marked extended")
	}
	if again.Reservation.ID != result.Reservation.ID {
		t.Error("expected the same reservation row")
	}

	var rowCount int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stock_reservations WHERE variant_id = 'test-lifecycle'`).Scan(&rowCount)
	if rowCount != 1 {
		t.Errorf("expected a single reservation row, got %d", rowCount)
	}
	db.QueryRowContext(ctx, `SELECT reserved_count FROM variants WHERE id = 'test-lifecycle'`).Scan(&reservedCount)
	if reservedCount != 5 {
		t.Errorf("expected reserved_count 5 after resubmission, got %d", reservedCount)
	}

	// Cancel releases the hold and the counter.
	if _, err := store.Cancel(ctx, result.Reservation.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	db.QueryRowContext(ctx, `SELECT reserved_count FROM variants WHERE id = 'test-lifecycle'`).Scan(&reservedCount)
	if reservedCount != 0 {
		t.Errorf("expected reserved_count 0 after cancel, got %d", reservedCount)
	}
	if _, err := store.Cancel(ctx, result.Reservation.ID); !errors.Is(err, domain.ErrReservationNotFound) {
		t.Errorf("expected ErrReservationNotFound on second cancel, got: %v", err)
	}
}

func TestMySQLReserve_InsufficientStock(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMySQLStore(db, zerolog.Nop())
	seedVariant(t, db, "test-insufficient", 2)

	if _, err := store.Reserve(ctx, "test-insufficient", domain.Holder{SessionKey: "sess-a"}, 2, 15*time.Minute); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}

	_, err := store.Reserve(ctx, "test-insufficient", domain.Holder{SessionKey: "sess-b"}, 1, 15*time.Minute)
	var insufficient *domain.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got: %v", err)
	}
	if insufficient.Available != 0 {
		t.Errorf("expected 0 available, got %d", insufficient.Available)
	}
}

func TestMySQLReserve_UnknownVariant(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	store := NewMySQLStore(db, zerolog.Nop())
	_, err := store.Reserve(context.Background(), "no-such-variant", domain.Holder{SessionKey: "s"}, 1, time.Minute)
	if !errors.Is(err, domain.ErrVariantNotFound) {
		t.Errorf("expected ErrVariantNotFound, got: %v", err)
	}
}

func TestMySQLConvert_Terminal(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMySQLStore(db, zerolog.Nop())
	seedVariant(t, db, "test-convert", 5)

	result, err := store.Reserve(ctx, "test-convert", domain.Holder{SessionKey: "conv-sess"}, 2, 15*time.Minute)
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	id := result.Reservation.ID

	converted, err := store.Convert(ctx, id, "order-777")
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if converted.OrderID != "order-777" {
		t.Errorf("expected order_id order-777, got %s", converted.OrderID)
	}

	// Conversion releases the counter: the quantity is committed, no longer
	// held.
	var reservedCount int
	db.QueryRowContext(ctx, `SELECT reserved_count FROM variants WHERE id = 'test-convert'`).Scan(&reservedCount)
	if reservedCount != 0 {
		t.Errorf("expected reserved_count 0 after conversion, got %d", reservedCount)
	}

	// The row stays as history.
	var rowCount int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stock_reservations WHERE id = ?`, id).Scan(&rowCount)
	if rowCount != 1 {
		t.Errorf("expected converted row kept, got %d rows", rowCount)
	}

	if _, err := store.Convert(ctx, id, "order-888"); !errors.Is(err, domain.ErrAlreadyConverted) {
		t.Errorf("expected ErrAlreadyConverted, got: %v", err)
	}
	if _, err := store.Cancel(ctx, id); !errors.Is(err, domain.ErrAlreadyConverted) {
		t.Errorf("expected ErrAlreadyConverted on cancel, got: %v", err)
	}
	if _, err := store.Extend(ctx, id, time.Minute); !errors.Is(err, domain.ErrAlreadyConverted) {
		t.Errorf("expected ErrAlreadyConverted on extend, got: %v", err)
	}
}

func TestMySQLReapExpired(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMySQLStore(db, zerolog.Nop())
	seedVariant(t, db, "test-reap", 10)

	// Quantities above 1 so a count of holds cannot be confused with a
	// count of units freed.
	if _, err := store.Reserve(ctx, "test-reap", domain.Holder{SessionKey: "reap-sess-a"}, 4, 50*time.Millisecond); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if _, err := store.Reserve(ctx, "test-reap", domain.Holder{SessionKey: "reap-sess-b"}, 3, 50*time.Millisecond); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	count, err := store.ReapExpired(ctx)
	if err != nil {
		t.Fatalf("ReapExpired failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 reclaimed holds, got %d", count)
	}

	a, err := store.Availability(ctx, "test-reap")
	if err != nil {
		t.Fatalf("Availability failed: %v", err)
	}
	if a.Available != 10 {
		t.Errorf("expected full availability after reap, got %d", a.Available)
	}

	// Running it again with nothing left is a no-op.
	count, err = store.ReapExpired(ctx)
	if err != nil {
		t.Fatalf("ReapExpired failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 reclaimed on second sweep, got %d", count)
	}

	// The reclaim leaves a per-row audit record.
	var expiredEntries int
	db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM reservation_audit
		WHERE variant_id = 'test-reap' AND action = 'expired'`).Scan(&expiredEntries)
	if expiredEntries != 2 {
		t.Errorf("expected 2 expired audit entries, got %d", expiredEntries)
	}
}

func TestMySQLReapExpired_RepairsCounterDrift(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMySQLStore(db, zerolog.Nop())
	seedVariant(t, db, "test-drift", 10)

	holder := domain.Holder{SessionKey: "drift-sess"}
	if _, err := store.Reserve(ctx, "test-drift", holder, 2, 50*time.Millisecond); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}

	// Simulate drift from an out-of-band write.
	db.ExecContext(ctx, `UPDATE variants SET reserved_count = 7 WHERE id = 'test-drift'`)

	time.Sleep(100 * time.Millisecond)
	if _, err := store.ReapExpired(ctx); err != nil {
		t.Fatalf("ReapExpired failed: %v", err)
	}

	var reservedCount int
	db.QueryRowContext(ctx, `SELECT reserved_count FROM variants WHERE id = 'test-drift'`).Scan(&reservedCount)
	if reservedCount != 0 {
		t.Errorf("expected counter repaired to 0, got %d", reservedCount)
	}
}

func TestMySQLReserve_ConcurrentNoOversell(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMySQLStore(db, zerolog.Nop())
	seedVariant(t, db, "test-concurrent", 10)

	const totalRequests = 30
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			holder := domain.Holder{SessionKey: "concurrent-sess-" + strconv.Itoa(id)}
			_, err := store.Reserve(ctx, "test-concurrent", holder, 1, 15*time.Minute)
			if err == nil {
				successCount.Add(1)
				return
			}
			var insufficient *domain.InsufficientStockError
			if !errors.As(err, &insufficient) {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if successCount.Load() != 10 {
		t.Errorf("expected exactly 10 successful reserves, got %d", successCount.Load())
	}

	a, err := store.Availability(ctx, "test-concurrent")
	if err != nil {
		t.Fatalf("Availability failed: %v", err)
	}
	if a.Available != 0 {
		t.Errorf("expected 0 available, got %d", a.Available)
	}
}

func TestMySQLGetVariant_NotFound(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	store := NewMySQLStore(db, zerolog.Nop())
	v, err := store.GetVariant(context.Background(), "nonexistent-variant")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Error("expected nil for nonexistent variant")
	}
}
