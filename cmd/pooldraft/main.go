package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pooldraft/pooldraft/internal/cache/redisstore"
	"github.com/pooldraft/pooldraft/internal/cache/rendercache"
	"github.com/pooldraft/pooldraft/internal/config"
	"github.com/pooldraft/pooldraft/internal/events"
	"github.com/pooldraft/pooldraft/internal/logger"
	"github.com/pooldraft/pooldraft/internal/metrics"
	"github.com/pooldraft/pooldraft/internal/observability"
	"github.com/pooldraft/pooldraft/internal/router"
	"github.com/pooldraft/pooldraft/internal/server"
)

var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.FromEnv()

	zl := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   cfg.LogConsole,
		Component: "pooldraft",
	}, os.Stdout)
	appLog := logger.NewSlog(&zl)

	observability.ExposeBuildInfo(Version)
	appLog.Info("starting pooldraft",
		"addr", cfg.Addr,
		"version", Version,
		"render_cache", cfg.RenderCache,
		"events", cfg.Events.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cacheOpts []rendercache.Option
	cacheOpts = append(cacheOpts,
		rendercache.WithTTL(cfg.CacheTTL),
		rendercache.WithOpTimeout(cfg.CacheOpTimeout),
	)
	if cfg.RenderCache == config.CacheRedis {
		rc, err := redisstore.New(ctx, cfg.RedisAddr)
		if err != nil {
			appLog.Error("redis connect failed", "addr", cfg.RedisAddr, "err", err)
			return 1
		}
		defer func() { _ = rc.Close() }()
		cacheOpts = append(cacheOpts, rendercache.WithBackend(rc))
	}
	lruSize := cfg.LRUSize
	if cfg.RenderCache == config.CacheOff {
		// handlers always go through the store; a one-entry LRU makes
		// it a near no-op
		lruSize = 1
	}
	store := rendercache.New(appLog, lruSize, cacheOpts...)

	var sink router.EventSink
	if cfg.Events.Enabled {
		producer, err := events.NewSyncProducer(cfg.Events.Brokers)
		if err != nil {
			appLog.Error("kafka connect failed", "brokers", cfg.Events.Brokers, "err", err)
			return 1
		}
		defer func() { _ = producer.Close() }()

		pub := events.NewPublisher(events.Config{
			Topic:     cfg.Events.Topic,
			QueueSize: cfg.Events.QueueSize,
		}, appLog, producer)
		go pub.Run(ctx)
		sink = pub
	}

	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		p := metrics.Init(metrics.Config{
			Addr: addr,
			Path: "/metrics",
			Build: metrics.BuildInfo{
				Version:   Version,
				Revision:  os.Getenv("BUILD_REVISION"),
				BuildDate: os.Getenv("BUILD_DATE"),
			},
		})
		mux := http.NewServeMux()
		mux.Handle("/metrics", p.Handler())
		msrv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			appLog.Info("metrics listen", "addr", addr)
			if err := msrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				appLog.Error("metrics server failed", "err", err)
			}
		}()
		go func() {
			<-ctx.Done()
			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = msrv.Shutdown(shCtx)
		}()
	}

	h := router.NewHandlers(appLog, store, sink)
	if err := server.Run(ctx, cfg, appLog, h, store); err != nil {
		appLog.Error("server failed", "err", err)
		return 1
	}
	return 0
}
