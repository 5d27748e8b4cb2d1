package rendercache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"

	"github.com/pooldraft/pooldraft/internal/cache/redisstore"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryOnly_PutGet(t *testing.T) {
	s := New(discard(), 4)

	ctx := context.Background()
	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatal("unexpected hit on empty store")
	}
	s.Put(ctx, "k", []byte("png"))
	v, ok := s.Get(ctx, "k")
	if !ok || string(v) != "png" {
		t.Fatalf("got %q ok=%v", v, ok)
	}
	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping without backend: %v", err)
	}
}

func TestRedisBackend_PromotesToMemory(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	rc, err := redisstore.New(ctx, mr.Addr())
	if err != nil {
		t.Fatalf("redisstore: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })

	s := New(discard(), 4, WithBackend(rc), WithTTL(time.Minute), WithOpTimeout(time.Second))
	s.Put(ctx, "drawing:plan:ff", []byte("payload"))

	// fresh store with the same backend: memory is cold, redis is warm
	cold := New(discard(), 4, WithBackend(rc), WithOpTimeout(time.Second))
	v, ok := cold.Get(ctx, "drawing:plan:ff")
	if !ok || string(v) != "payload" {
		t.Fatalf("backend read got %q ok=%v", v, ok)
	}

	// backend can go away now that the entry was promoted
	mr.Close()
	v, ok = cold.Get(ctx, "drawing:plan:ff")
	if !ok || string(v) != "payload" {
		t.Fatalf("memory read after promotion got %q ok=%v", v, ok)
	}
}

type flakyBackend struct {
	mu   sync.Mutex
	gets int
}

func (f *flakyBackend) Get(_ context.Context, _ string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	return nil, errors.New("boom")
}

func (f *flakyBackend) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return errors.New("boom")
}

func (f *flakyBackend) Ping(_ context.Context) error { return errors.New("boom") }

func TestBackendFailure_DegradesToMiss(t *testing.T) {
	fb := &flakyBackend{}
	s := New(discard(), 4, WithBackend(fb))

	ctx := context.Background()
	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatal("failing backend must read as miss")
	}
	s.Put(ctx, "k", []byte("v")) // must not panic or fail

	// memory tier still serves
	if v, ok := s.Get(ctx, "k"); !ok || string(v) != "v" {
		t.Fatalf("got %q ok=%v", v, ok)
	}
	if err := s.Ping(ctx); err == nil {
		t.Fatal("Ping should surface backend error")
	}
}

func TestLRU_EvictsOldEntries(t *testing.T) {
	s := New(discard(), 2)
	ctx := context.Background()
	s.Put(ctx, "a", []byte("1"))
	s.Put(ctx, "b", []byte("2"))
	s.Put(ctx, "c", []byte("3"))
	if _, ok := s.Get(ctx, "a"); ok {
		t.Fatal("oldest entry should have been evicted")
	}
	if _, ok := s.Get(ctx, "c"); !ok {
		t.Fatal("newest entry missing")
	}
}
