package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected default http addr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.GRPCAddr != ":50051" {
		t.Errorf("expected default grpc addr :50051, got %s", cfg.GRPCAddr)
	}
	if cfg.KafkaTopic != "stock.committed" {
		t.Errorf("expected default topic stock.committed, got %s", cfg.KafkaTopic)
	}
	if cfg.ReservationTTL() != 15*time.Minute {
		t.Errorf("expected default TTL 15m, got %v", cfg.ReservationTTL())
	}
	if cfg.SweepInterval() != 60*time.Second {
		t.Errorf("expected default sweep interval 60s, got %v", cfg.SweepInterval())
	}
	if len(cfg.KafkaBrokers) != 0 {
		t.Errorf("expected no brokers by default, got %v", cfg.KafkaBrokers)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
http_addr: ":9090"
mysql_dsn: "app:app@tcp(db:3306)/shop?parseTime=true"
kafka_brokers:
  - kafka-1:9092
  - kafka-2:9092
reservation_ttl_minutes: 30
sweep_interval_seconds: 0
cleanup_token: hunter2
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTPAddr != ":9090" {
		t.Errorf("expected :9090, got %s", cfg.HTTPAddr)
	}
	if cfg.MySQLDSN != "app:app@tcp(db:3306)/shop?parseTime=true" {
		t.Errorf("unexpected dsn: %s", cfg.MySQLDSN)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[0] != "kafka-1:9092" {
		t.Errorf("unexpected brokers: %v", cfg.KafkaBrokers)
	}
	if cfg.ReservationTTL() != 30*time.Minute {
		t.Errorf("expected TTL 30m, got %v", cfg.ReservationTTL())
	}
	if cfg.SweepInterval() != 0 {
		t.Errorf("expected sweep disabled, got %v", cfg.SweepInterval())
	}
	if cfg.CleanupToken != "hunter2" {
		t.Errorf("unexpected cleanup token: %s", cfg.CleanupToken)
	}

	// File values the YAML omits keep their defaults.
	if cfg.GRPCAddr != ":50051" {
		t.Errorf("expected default grpc addr, got %s", cfg.GRPCAddr)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("http_addr: \":9090\"\n"), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("RESERVATION_TTL_MINUTES", "5")
	t.Setenv("CLEANUP_TOKEN", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTPAddr != ":7070" {
		t.Errorf("env should win over file, got %s", cfg.HTTPAddr)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "b:9092" {
		t.Errorf("unexpected brokers: %v", cfg.KafkaBrokers)
	}
	if cfg.ReservationTTLMinutes != 5 {
		t.Errorf("expected TTL 5 minutes, got %d", cfg.ReservationTTLMinutes)
	}
	if cfg.CleanupToken != "from-env" {
		t.Errorf("unexpected cleanup token: %s", cfg.CleanupToken)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("http_addr: [not scalar"), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	zero := filepath.Join(t.TempDir(), "zero.yaml")
	if err := os.WriteFile(zero, []byte("reservation_ttl_minutes: -1\n"), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	if _, err := Load(zero); err == nil {
		t.Error("expected error for non-positive TTL")
	}
}
