package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "secret",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Mongo.Database != "timerkit" || cfg.Redis.AlertChannel != "timerkit:alerts" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TokenTTL != 24*time.Hour || cfg.TickWorkers != 8 || cfg.BcryptCost != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 10*time.Second || !cfg.Redis.Dedup || cfg.Redis.Password != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Development() {
		t.Fatalf("expected development env by default")
	}
}

func TestLoad_RequiresSecret(t *testing.T) {
	if _, err := load(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}

func TestLoad_RejectsZeroWorkers(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":   "secret",
		"TICK_WORKERS": "0",
	}))
	if err == nil {
		t.Fatalf("expected error for zero workers")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":     "secret",
		"ENV":            "production",
		"TOKEN_TTL":      "90m",
		"REDIS_PASSWORD": "pw",
		"TICK_DEDUP":     "false",
		"MONGO_DB":       "kitchen",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Development() || cfg.TokenTTL != 90*time.Minute {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Redis.Password != "pw" || cfg.Redis.Dedup || cfg.Mongo.Database != "kitchen" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
