// Package rendercache caches rendered drawing PNGs. It runs an
// in-process LRU in front of an optional Redis backend; backend
// failures degrade to a miss so a broken cache never fails a request.
package rendercache

import (
	"context"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pooldraft/pooldraft/internal/observability"
)

const (
	tierMemory = "memory"
	tierRedis  = "redis"
)

// Backend is the remote tier. *redisstore.Client satisfies it.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
}

type Store struct {
	mem       *lru.Cache[string, []byte]
	backend   Backend
	ttl       time.Duration
	opTimeout time.Duration
	log       *slog.Logger
}

type Option func(*Store)

func WithBackend(b Backend) Option {
	return func(s *Store) { s.backend = b }
}

func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

func WithOpTimeout(d time.Duration) Option {
	return func(s *Store) { s.opTimeout = d }
}

func New(log *slog.Logger, lruSize int, opts ...Option) *Store {
	if log == nil {
		log = slog.Default()
	}
	if lruSize <= 0 {
		lruSize = 256
	}
	mem, _ := lru.New[string, []byte](lruSize)
	s := &Store{
		mem:       mem,
		ttl:       10 * time.Minute,
		opTimeout: 250 * time.Millisecond,
		log:       log,
	}
	for _, f := range opts {
		f(s)
	}
	return s
}

// Get checks the memory tier first, then the backend. A backend hit is
// promoted into memory.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	if v, ok := s.mem.Get(key); ok {
		observability.IncRenderCacheHit(tierMemory)
		return v, true
	}
	observability.IncRenderCacheMiss(tierMemory)

	if s.backend == nil {
		return nil, false
	}

	opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()
	v, err := s.backend.Get(opCtx, key)
	if err != nil {
		s.log.WarnContext(ctx, "render cache read failed; rendering instead", "key", key, "err", err)
		observability.IncRenderCacheMiss(tierRedis)
		return nil, false
	}
	if v == nil {
		observability.IncRenderCacheMiss(tierRedis)
		return nil, false
	}
	observability.IncRenderCacheHit(tierRedis)
	s.mem.Add(key, v)
	return v, true
}

// Put stores into both tiers. Backend write failures are logged only.
func (s *Store) Put(ctx context.Context, key string, png []byte) {
	s.mem.Add(key, png)

	if s.backend == nil {
		return
	}
	opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()
	if err := s.backend.Set(opCtx, key, png, s.ttl); err != nil {
		s.log.WarnContext(ctx, "render cache write failed", "key", key, "err", err)
	}
}

// Ping reports backend reachability for readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}
	return s.backend.Ping(ctx)
}
