package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	RepositoryDynamoDB = "dynamodb"
	RepositoryPostgres = "postgres"
	RepositoryMemory   = "memory"

	LockMemory = "memory"
	LockRedis  = "redis"
)

// Config is read from the environment (.env is autoloaded by main).
type Config struct {
	Port string

	RepositoryDriver string
	EscrowsTable     string
	DatabaseURL      string

	LockDriver string
	RedisURL   string
	LockTTL    time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	SchedulerInterval time.Duration
	SchedulerWorkers  int
	AutoApprovalDays  int

	MercadoPagoAccessToken string
	PayoutPaymentMethodID  string
	PayoutNotificationURL  string

	PartyDirectoryFile string
}

func Load() (Config, error) {
	cfg := Config{
		Port:                   getenvDefault("PORT", "8080"),
		RepositoryDriver:       strings.ToLower(getenvDefault("REPOSITORY_DRIVER", RepositoryDynamoDB)),
		EscrowsTable:           getenvDefault("ESCROWS_TABLE", "escrows"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		LockDriver:             strings.ToLower(getenvDefault("LOCK_DRIVER", LockMemory)),
		RedisURL:               os.Getenv("REDIS_URL"),
		KafkaBrokers:           splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:             getenvDefault("KAFKA_TOPIC", "escrow-events"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PayoutPaymentMethodID:  getenvDefault("PAYOUT_PAYMENT_METHOD_ID", "pix"),
		PayoutNotificationURL:  os.Getenv("PAYOUT_NOTIFICATION_URL"),
		PartyDirectoryFile:     os.Getenv("PARTY_DIRECTORY_FILE"),
	}

	var err error
	if cfg.LockTTL, err = durationEnv("LOCK_TTL", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.SchedulerInterval, err = durationEnv("SCHEDULER_INTERVAL", time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.SchedulerWorkers, err = intEnv("SCHEDULER_WORKERS", 4); err != nil {
		return Config{}, err
	}
	if cfg.AutoApprovalDays, err = intEnv("AUTO_APPROVAL_DAYS", 14); err != nil {
		return Config{}, err
	}

	switch cfg.RepositoryDriver {
	case RepositoryDynamoDB, RepositoryMemory:
	case RepositoryPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required for REPOSITORY_DRIVER=postgres")
		}
	default:
		return Config{}, fmt.Errorf("unknown REPOSITORY_DRIVER %q", cfg.RepositoryDriver)
	}
	switch cfg.LockDriver {
	case LockMemory:
	case LockRedis:
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("REDIS_URL is required for LOCK_DRIVER=redis")
		}
	default:
		return Config{}, fmt.Errorf("unknown LOCK_DRIVER %q", cfg.LockDriver)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
