// Package server wires the HTTP surface and runs it until shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pooldraft/pooldraft/internal/config"
	"github.com/pooldraft/pooldraft/internal/health"
	imw "github.com/pooldraft/pooldraft/internal/middleware"
	"github.com/pooldraft/pooldraft/internal/router"
)

// NewRouter assembles the full route table. Split out of Run so tests
// can drive the handler stack without a listener.
func NewRouter(log *slog.Logger, h *router.Handlers, ready health.Pinger) chi.Router {
	r := chi.NewRouter()
	r.Use(imw.Recover(log))
	r.Use(imw.RequestID())
	r.Use(imw.Logging(log))
	r.Use(imw.CORS())

	r.Get("/healthz", health.Liveness())
	r.Get("/readyz", health.Readiness(ready))
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Get("/v1/quantities", h.Quantities())
	r.Get("/v1/quantities.csv", h.QuantitiesCSV())
	r.Get("/v1/drawings/{view}.png", h.Drawing())

	return r
}

// Run serves until the context is cancelled, then drains in-flight
// requests.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger, h *router.Handlers, ready health.Pinger) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(log, h, ready),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http listen", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}
