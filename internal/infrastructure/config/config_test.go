package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "REPOSITORY_DRIVER", "ESCROWS_TABLE", "DATABASE_URL", "LOCK_DRIVER", "REDIS_URL",
		"LOCK_TTL", "KAFKA_BROKERS", "KAFKA_TOPIC", "SCHEDULER_INTERVAL", "SCHEDULER_WORKERS",
		"AUTO_APPROVAL_DAYS", "MERCADOPAGO_ACCESS_TOKEN", "PAYOUT_PAYMENT_METHOD_ID",
		"PAYOUT_NOTIFICATION_URL", "PARTY_DIRECTORY_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.RepositoryDriver != RepositoryDynamoDB || cfg.EscrowsTable != "escrows" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.LockDriver != LockMemory || cfg.LockTTL != 30*time.Second {
		t.Fatalf("unexpected lock defaults %+v", cfg)
	}
	if cfg.SchedulerInterval != time.Minute || cfg.SchedulerWorkers != 4 || cfg.AutoApprovalDays != 14 {
		t.Fatalf("unexpected scheduler defaults %+v", cfg)
	}
	if cfg.KafkaTopic != "escrow-events" || len(cfg.KafkaBrokers) != 0 {
		t.Fatalf("unexpected kafka defaults %+v", cfg)
	}
	if cfg.PayoutPaymentMethodID != "pix" {
		t.Fatalf("unexpected payout defaults %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("REPOSITORY_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/escrow?sslmode=disable")
	t.Setenv("LOCK_DRIVER", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("SCHEDULER_INTERVAL", "15s")
	t.Setenv("AUTO_APPROVAL_DAYS", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RepositoryDriver != RepositoryPostgres || cfg.LockDriver != LockRedis {
		t.Fatalf("unexpected drivers %+v", cfg)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "k2:9092" {
		t.Fatalf("unexpected brokers %v", cfg.KafkaBrokers)
	}
	if cfg.SchedulerInterval != 15*time.Second || cfg.AutoApprovalDays != 7 {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown repository":    {"REPOSITORY_DRIVER": "mongo"},
		"postgres without url":  {"REPOSITORY_DRIVER": "postgres"},
		"redis without url":     {"LOCK_DRIVER": "redis"},
		"unknown lock":          {"LOCK_DRIVER": "etcd"},
		"bad interval":          {"SCHEDULER_INTERVAL": "soon"},
		"zero workers":          {"SCHEDULER_WORKERS": "0"},
		"negative auto approve": {"AUTO_APPROVAL_DAYS": "-1"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
