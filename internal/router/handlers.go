package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pooldraft/pooldraft/internal/cache/keys"
	"github.com/pooldraft/pooldraft/internal/cache/rendercache"
	"github.com/pooldraft/pooldraft/internal/drawing"
	"github.com/pooldraft/pooldraft/internal/events"
	"github.com/pooldraft/pooldraft/internal/export"
	"github.com/pooldraft/pooldraft/internal/geometry"
	"github.com/pooldraft/pooldraft/internal/logger"
	"github.com/pooldraft/pooldraft/internal/observability"
)

// EventSink receives one event per generate action. A nil sink
// disables publishing.
type EventSink interface {
	Publish(ev events.Event)
}

type Handlers struct {
	log   *slog.Logger
	cache *rendercache.Store
	sink  EventSink
	now   func() time.Time
}

func NewHandlers(log *slog.Logger, cache *rendercache.Store, sink EventSink) *Handlers {
	if log == nil {
		log = slog.Default()
	}
	return &Handlers{log: log, cache: cache, sink: sink, now: time.Now}
}

type quantitiesResponse struct {
	DesignID   string                  `json:"design_id"`
	Spec       geometry.PoolSpec       `json:"spec"`
	Report     geometry.QuantityReport `json:"report"`
	Advisories []geometry.Advisory     `json:"advisories"`
}

// Quantities serves the computed QuantityReport as JSON. The spec in
// the response is the normalized one the report was computed from.
func (h *Handlers) Quantities() http.HandlerFunc {
	const route = "/v1/quantities"
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}

		spec, err := ParsePoolSpec(r)
		if err != nil {
			http.Error(sw, err.Error(), http.StatusBadRequest)
			observability.ObserveHTTP(r.Method, route, sw.code, time.Since(start).Seconds())
			return
		}

		norm, rep, adv := geometry.Quantities(spec)
		h.noteAdvisories(r, adv)
		designID := logger.NewID()
		h.emit(designID, norm, rep, adv)

		resp := quantitiesResponse{
			DesignID:   designID,
			Spec:       norm,
			Report:     rep,
			Advisories: adv,
		}
		if resp.Advisories == nil {
			resp.Advisories = []geometry.Advisory{}
		}
		sw.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(sw).Encode(resp); err != nil {
			h.log.ErrorContext(r.Context(), "encode quantities response", "err", err)
		}
		observability.ObserveHTTP(r.Method, route, sw.code, time.Since(start).Seconds())
	}
}

// QuantitiesCSV serves the fixed-order parameter/value/units table as
// a CSV download.
func (h *Handlers) QuantitiesCSV() http.HandlerFunc {
	const route = "/v1/quantities.csv"
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}

		spec, err := ParsePoolSpec(r)
		if err != nil {
			http.Error(sw, err.Error(), http.StatusBadRequest)
			observability.ObserveHTTP(r.Method, route, sw.code, time.Since(start).Seconds())
			return
		}

		norm, rep, adv := geometry.Quantities(spec)
		h.noteAdvisories(r, adv)

		data, err := export.QuantitiesCSV(norm, rep)
		if err != nil {
			h.log.ErrorContext(r.Context(), "export csv", "err", err)
			http.Error(sw, "export failed", http.StatusInternalServerError)
			observability.ObserveHTTP(r.Method, route, sw.code, time.Since(start).Seconds())
			return
		}

		sw.Header().Set("Content-Type", "text/csv; charset=utf-8")
		sw.Header().Set("Content-Disposition", `attachment; filename="pool_quantities.csv"`)
		_, _ = sw.Write(data)
		observability.ObserveHTTP(r.Method, route, sw.code, time.Since(start).Seconds())
	}
}

// Drawing serves one rendered view as PNG, going through the render
// cache keyed by the normalized spec.
func (h *Handlers) Drawing() http.HandlerFunc {
	const route = "/v1/drawings/{view}.png"
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}

		view, err := drawing.ParseView(chi.URLParam(r, "view"))
		if err != nil {
			http.Error(sw, err.Error(), http.StatusBadRequest)
			observability.ObserveHTTP(r.Method, route, sw.code, time.Since(start).Seconds())
			return
		}

		spec, err := ParsePoolSpec(r)
		if err != nil {
			http.Error(sw, err.Error(), http.StatusBadRequest)
			observability.ObserveHTTP(r.Method, route, sw.code, time.Since(start).Seconds())
			return
		}

		ctx := logger.WithView(r.Context(), string(view))
		norm, rep, adv := geometry.Quantities(spec)
		h.noteAdvisories(r, adv)

		key := keys.DrawingKey(string(view), norm)
		png, ok := h.cache.Get(ctx, key)
		if !ok {
			renderStart := time.Now()
			png, err = drawing.Render(view, norm, rep)
			if err != nil {
				h.log.ErrorContext(ctx, "render drawing", "err", err)
				http.Error(sw, "render failed", http.StatusInternalServerError)
				observability.ObserveHTTP(r.Method, route, sw.code, time.Since(start).Seconds())
				return
			}
			observability.ObserveRender(string(view), time.Since(renderStart).Seconds())
			h.cache.Put(ctx, key, png)
		}

		sw.Header().Set("Content-Type", "image/png")
		_, _ = sw.Write(png)
		observability.ObserveHTTP(r.Method, route, sw.code, time.Since(start).Seconds())
	}
}

func (h *Handlers) noteAdvisories(r *http.Request, adv []geometry.Advisory) {
	for _, a := range adv {
		observability.IncAdvisory(a.Kind)
		h.log.WarnContext(r.Context(), "input advisory", "kind", a.Kind, "msg", a.Message)
	}
}

func (h *Handlers) emit(designID string, spec geometry.PoolSpec, rep geometry.QuantityReport, adv []geometry.Advisory) {
	if h.sink == nil {
		return
	}
	h.sink.Publish(events.Event{
		Version:     1,
		DesignID:    designID,
		GeneratedAt: h.now().UTC(),
		Spec:        spec,
		Report:      rep,
		Advisories:  adv,
	})
}
