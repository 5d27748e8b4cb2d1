package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()
	if cfg.Addr != ":8080" {
		t.Fatalf("addr=%q want :8080", cfg.Addr)
	}
	if cfg.RenderCache != CacheMemory {
		t.Fatalf("render cache=%q want %q", cfg.RenderCache, CacheMemory)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Fatalf("ttl=%v want 10m", cfg.CacheTTL)
	}
	if cfg.Events.Enabled {
		t.Fatal("events enabled by default")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("RENDER_CACHE", "redis")
	t.Setenv("CACHE_TTL", "1m30s")
	t.Setenv("LRU_SIZE", "9")
	t.Setenv("EVENTS_ENABLED", "yes")
	t.Setenv("KAFKA_TOPIC", "designs-v2")

	cfg := FromEnv()
	if cfg.Addr != ":9000" {
		t.Fatalf("addr=%q", cfg.Addr)
	}
	if cfg.RenderCache != CacheRedis {
		t.Fatalf("render cache=%q", cfg.RenderCache)
	}
	if cfg.CacheTTL != 90*time.Second {
		t.Fatalf("ttl=%v", cfg.CacheTTL)
	}
	if cfg.LRUSize != 9 {
		t.Fatalf("lru=%d", cfg.LRUSize)
	}
	if !cfg.Events.Enabled || cfg.Events.Topic != "designs-v2" {
		t.Fatalf("events=%+v", cfg.Events)
	}
}

func TestFromEnv_BadCacheModeFallsBack(t *testing.T) {
	t.Setenv("RENDER_CACHE", "slab")
	if got := FromEnv().RenderCache; got != CacheMemory {
		t.Fatalf("render cache=%q want fallback %q", got, CacheMemory)
	}
}
