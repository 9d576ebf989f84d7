package main

import (
	"context"
	"database/sql"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/vitrine/stock-reserve/internal/adapter/events"
	"github.com/vitrine/stock-reserve/internal/adapter/handler"
	"github.com/vitrine/stock-reserve/internal/adapter/handler/pb"
	"github.com/vitrine/stock-reserve/internal/adapter/storage"
	"github.com/vitrine/stock-reserve/internal/config"
	"github.com/vitrine/stock-reserve/internal/core/service"
	"github.com/vitrine/stock-reserve/internal/port"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stderr).With().
		Timestamp().
		Str("service", "stock-reserve").
		Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MySQL is the source of truth; refusing to start without it is the
	// one fatal failure mode.
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open mysql")
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mysql")
	}
	logger.Info().Msg("connected to mysql")

	store := storage.NewMySQLStore(db, logger)

	// Redis only carries snapshots and the sweep lock, so the engine can
	// run without it.
	var cache port.AvailabilityCache
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, running without availability cache")
		rdb.Close()
		rdb = nil
	} else {
		cache = storage.NewRedisCache(rdb)
		logger.Info().Msg("connected to redis")
	}

	var publisher port.StockEventPublisher
	var kafkaPublisher *events.KafkaPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		publisher = kafkaPublisher
		logger.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("kafka publisher enabled")
	}

	svc := service.NewReservationService(store, cache, publisher, cfg.ReservationTTL(), logger)

	reclaimer := service.NewReclaimer(svc, cfg.SweepInterval(), logger)
	reclaimer.Start(ctx)

	// HTTP server
	mux := http.NewServeMux()
	httpHandler := handler.NewHTTPHandler(svc, cfg.CleanupToken)
	httpHandler.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}

	// gRPC server for the order service and schedulers
	grpcServer := grpc.NewServer()
	pb.RegisterReservationServiceServer(grpcServer, handler.NewGRPCHandler(svc))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.GRPCAddr).Msg("failed to listen")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("http server listening")
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		logger.Info().Str("addr", cfg.GRPCAddr).Msg("grpc server listening")
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()

	reclaimer.Stop()
	cancel()
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server error during shutdown")
	}

	if kafkaPublisher != nil {
		kafkaPublisher.Close()
	}
	if rdb != nil {
		rdb.Close()
	}
	db.Close()
	logger.Info().Msg("shutdown complete")
}
