package tests

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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/vitrine/stock-reserve/internal/adapter/storage"
	"github.com/vitrine/stock-reserve/internal/core/domain"
	"github.com/vitrine/stock-reserve/internal/core/service"
)

type testEnv struct {
	redis   *redis.Client
	mysql   *sql.DB
	cache   *storage.RedisCache
	store   *storage.MySQLStore
	cleanup func()
}

func setupTestEnv(t *testing.T) *testEnv {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = "root:root@tcp(localhost:3306)/storefront?parseTime=true"
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	return &testEnv{
		redis: rdb,
		mysql: db,
		cache: storage.NewRedisCache(rdb),
		store: storage.NewMySQLStore(db, zerolog.Nop()),
		cleanup: func() {
			rdb.Close()
			db.Close()
		},
	}
}

func (env *testEnv) seedVariant(t *testing.T, variantID string, totalStock int) {
	t.Helper()
	ctx := context.Background()

	env.redis.Del(ctx, "availability:"+variantID)
	env.mysql.ExecContext(ctx, `DELETE FROM stock_reservations WHERE variant_id = ?`, variantID)
	env.mysql.ExecContext(ctx, `DELETE FROM reservation_audit WHERE variant_id = ?`, variantID)
	_, err := env.mysql.ExecContext(ctx, `
		INSERT INTO variants (id, sku, name, total_stock, reserved_count, created_at, updated_at)
		VALUES (?, ?, 'Integration Variant', ?, 0, NOW(6), NOW(6))
		ON DUPLICATE KEY UPDATE total_stock = VALUES(total_stock), reserved_count = 0`,
		variantID, "sku-"+variantID, totalStock,
	)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
}

func TestIntegration_ReservationRush(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	variantID := "integration-rush"
	initialStock := 10
	env.seedVariant(t, variantID, initialStock)

	svc := service.NewReservationService(env.store, env.cache, nil, 15*time.Minute, zerolog.Nop())

	var successCount atomic.Int32
	var wg sync.WaitGroup
	totalRequests := 25

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			holder := domain.Holder{SessionKey: "rush-sess-" + strconv.Itoa(id)}
			_, err := svc.Reserve(ctx, variantID, 1, holder)
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

	if successCount.Load() != int32(initialStock) {
		t.Errorf("expected %d successful reservations, got %d", initialStock, successCount.Load())
	}

	// MySQL is the source of truth for the counter.
	var reservedCount int
	env.mysql.QueryRowContext(ctx, `SELECT reserved_count FROM variants WHERE id = ?`, variantID).Scan(&reservedCount)
	if reservedCount != initialStock {
		t.Errorf("expected reserved_count %d, got %d", initialStock, reservedCount)
	}

	a, err := svc.CheckAvailability(ctx, variantID)
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if a.Available != 0 {
		t.Errorf("expected 0 available after the rush, got %d", a.Available)
	}

	// One audit entry per successful reservation.
	var auditCount int
	env.mysql.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM reservation_audit
		WHERE variant_id = ? AND action = 'created'`, variantID).Scan(&auditCount)
	if auditCount != initialStock {
		t.Errorf("expected %d created audit entries, got %d", initialStock, auditCount)
	}
}

func TestIntegration_ExpiryAndReclaim(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	variantID := "integration-expiry"
	env.seedVariant(t, variantID, 5)

	svc := service.NewReservationService(env.store, env.cache, nil, 100*time.Millisecond, zerolog.Nop())
	holder := domain.Holder{UserID: "expiry-user"}

	if _, err := svc.Reserve(ctx, variantID, 5, holder); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}

	a, err := svc.CheckAvailability(ctx, variantID)
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if a.Available != 0 {
		t.Errorf("expected 0 available while held, got %d", a.Available)
	}

	time.Sleep(200 * time.Millisecond)

	count, err := svc.CleanupExpired(ctx)
	if err != nil {
		t.Fatalf("CleanupExpired failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 reclaimed hold, got %d", count)
	}

	a, err = svc.CheckAvailability(ctx, variantID)
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if a.Available != 5 {
		t.Errorf("expected full availability after reclaim, got %d", a.Available)
	}

	mine, err := svc.ListMine(ctx, holder)
	if err != nil {
		t.Fatalf("ListMine failed: %v", err)
	}
	if len(mine) != 0 {
		t.Errorf("expected no active reservations, got %d", len(mine))
	}
}

func TestIntegration_ConvertSurvivesSweep(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	variantID := "integration-convert"
	env.seedVariant(t, variantID, 5)

	svc := service.NewReservationService(env.store, env.cache, nil, 100*time.Millisecond, zerolog.Nop())

	result, err := svc.Reserve(ctx, variantID, 3, domain.Holder{SessionKey: "convert-sess"})
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}

	if _, err := svc.Convert(ctx, result.Reservation.ID, "order-integration-1"); err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	time.Sleep(200 * time.Millisecond)
	if _, err := svc.CleanupExpired(ctx); err != nil {
		t.Fatalf("CleanupExpired failed: %v", err)
	}

	// The converted row remains as history.
	var orderID sql.NullString
	err = env.mysql.QueryRowContext(ctx, `
		SELECT order_id FROM stock_reservations WHERE id = ?`, result.Reservation.ID).Scan(&orderID)
	if err != nil {
		t.Fatalf("expected converted row to survive the sweep: %v", err)
	}
	if orderID.String != "order-integration-1" {
		t.Errorf("expected order_id order-integration-1, got %s", orderID.String)
	}

	if _, err := svc.Cancel(ctx, result.Reservation.ID); !errors.Is(err, domain.ErrAlreadyConverted) {
		t.Errorf("expected ErrAlreadyConverted, got: %v", err)
	}
}

func TestIntegration_SweepLockCollapsesConcurrentCleanups(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	variantID := "integration-sweeplock"
	env.seedVariant(t, variantID, 5)
	env.redis.Del(ctx, "reservation:sweep:lock")

	svc := service.NewReservationService(env.store, env.cache, nil, 50*time.Millisecond, zerolog.Nop())

	if _, err := svc.Reserve(ctx, variantID, 2, domain.Holder{SessionKey: "lock-sess"}); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	time.Sleep(100 * time.Millisecond)

	ok, err := env.cache.AcquireSweepLock(ctx)
	if err != nil || !ok {
		t.Fatalf("failed to take sweep lock: ok=%v err=%v", ok, err)
	}

	// Another worker holds the lock: this trigger yields without sweeping.
	count, err := svc.CleanupExpired(ctx)
	if err != nil {
		t.Fatalf("CleanupExpired failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 reclaimed while lock held, got %d", count)
	}

	if err := env.cache.ReleaseSweepLock(ctx); err != nil {
		t.Fatalf("ReleaseSweepLock failed: %v", err)
	}

	count, err = svc.CleanupExpired(ctx)
	if err != nil {
		t.Fatalf("CleanupExpired failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 reclaimed after release, got %d", count)
	}
}
