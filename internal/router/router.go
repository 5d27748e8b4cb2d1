// Package router validates incoming pool dimensions and serves the
// quantity, drawing and export endpoints.
package router

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pooldraft/pooldraft/internal/geometry"
)

// Input bounds and defaults mirror the bounded form fields of the
// design front end. The calculator itself assumes in-range values;
// this boundary is where out-of-range input is rejected.
type field struct {
	name string
	min  float64
	max  float64
	def  float64
	dst  func(*geometry.PoolSpec) *float64
}

var fields = []field{
	{"length", 0, 50, 7.25, func(s *geometry.PoolSpec) *float64 { return &s.Length }},
	{"width", 0, 20, 4.25, func(s *geometry.PoolSpec) *float64 { return &s.Width }},
	{"depth_kids", 0, 5, 1.00, func(s *geometry.PoolSpec) *float64 { return &s.DepthKids }},
	{"depth_adults", 0, 5, 1.50, func(s *geometry.PoolSpec) *float64 { return &s.DepthAdults }},
	{"kids_zone_length", 0, 50, -1, func(s *geometry.PoolSpec) *float64 { return &s.KidsZoneLength }},
	{"wall_thickness", 0, 1, 0.25, func(s *geometry.PoolSpec) *float64 { return &s.WallThickness }},
	{"floor_thickness", 0, 1, 0.30, func(s *geometry.PoolSpec) *float64 { return &s.FloorThickness }},
	{"soil_thickness", 0, 5, 0.50, func(s *geometry.PoolSpec) *float64 { return &s.SoilThickness }},
}

// ParsePoolSpec reads the eight dimension parameters from the query
// string. Missing parameters take the front end's defaults; the kids
// zone default is 30% of the length, at least one metre.
func ParsePoolSpec(r *http.Request) (geometry.PoolSpec, error) {
	var spec geometry.PoolSpec
	q := r.URL.Query()

	for _, f := range fields {
		raw := strings.TrimSpace(q.Get(f.name))
		if raw == "" {
			*f.dst(&spec) = f.def
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return geometry.PoolSpec{}, fmt.Errorf("%s: parse %q: %w", f.name, raw, err)
		}
		if v < f.min || v > f.max {
			return geometry.PoolSpec{}, fmt.Errorf("%s: %g out of range [%g, %g]", f.name, v, f.min, f.max)
		}
		*f.dst(&spec) = v
	}

	if spec.KidsZoneLength < 0 {
		spec.KidsZoneLength = 0.3 * spec.Length
		if spec.KidsZoneLength < 1 {
			spec.KidsZoneLength = 1
		}
	}

	if spec.Length <= 0 || spec.Width <= 0 {
		return geometry.PoolSpec{}, errors.New("length and width must be positive")
	}
	return spec, nil
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
