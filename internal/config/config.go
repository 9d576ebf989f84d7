package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is loaded from an optional YAML file, then overridden by
// environment variables so deployments can tweak single values without
// shipping a new file.
type Config struct {
	HTTPAddr string `yaml:"http_addr"`
	GRPCAddr string `yaml:"grpc_addr"`

	MySQLDSN  string `yaml:"mysql_dsn"`
	RedisAddr string `yaml:"redis_addr"`

	KafkaBrokers []string `yaml:"kafka_brokers"`
	KafkaTopic   string   `yaml:"kafka_topic"`

	// ReservationTTLMinutes is how long a hold lives without being
	// extended. Checkout flows typically renew it on every cart touch.
	ReservationTTLMinutes int `yaml:"reservation_ttl_minutes"`

	// SweepIntervalSeconds drives the background reclaimer; 0 disables it
	// and leaves reclamation to the lazy path and external triggers.
	SweepIntervalSeconds int `yaml:"sweep_interval_seconds"`

	// CleanupToken guards the cleanup and audit endpoints. Empty leaves
	// them open; set it anywhere the API is reachable by untrusted
	// clients.
	CleanupToken string `yaml:"cleanup_token"`
}

func defaults() *Config {
	return &Config{
		HTTPAddr:              ":8080",
		GRPCAddr:              ":50051",
		MySQLDSN:              "root:root@tcp(localhost:3306)/storefront?parseTime=true",
		RedisAddr:             "localhost:6379",
		KafkaTopic:            "stock.committed",
		ReservationTTLMinutes: 15,
		SweepIntervalSeconds:  60,
	}
}

// Load reads the config file at path (optional) and applies environment
// overrides.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.HTTPAddr = getEnv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.GRPCAddr = getEnv("GRPC_ADDR", cfg.GRPCAddr)
	cfg.MySQLDSN = getEnv("MYSQL_DSN", cfg.MySQLDSN)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", cfg.KafkaTopic)
	cfg.CleanupToken = getEnv("CLEANUP_TOKEN", cfg.CleanupToken)

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	if v, err := strconv.Atoi(os.Getenv("RESERVATION_TTL_MINUTES")); err == nil {
		cfg.ReservationTTLMinutes = v
	}
	if v, err := strconv.Atoi(os.Getenv("SWEEP_INTERVAL_SECONDS")); err == nil {
		cfg.SweepIntervalSeconds = v
	}

	if cfg.ReservationTTLMinutes <= 0 {
		return nil, fmt.Errorf("reservation_ttl_minutes must be positive, got %d", cfg.ReservationTTLMinutes)
	}
	return cfg, nil
}

func (c *Config) ReservationTTL() time.Duration {
	return time.Duration(c.ReservationTTLMinutes) * time.Minute
}

func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
