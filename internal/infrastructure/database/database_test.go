package database

import (
	"context"
	"testing"
)

func TestConnectRedis_InvalidURL(t *testing.T) {
	if _, err := ConnectRedis(context.Background(), "http://not-redis"); err == nil {
		t.Fatalf("expected invalid url error")
	}
}

func TestNewDynamoDBConfigFromEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected local credentials, got %s", creds.AccessKeyID)
	}
}
