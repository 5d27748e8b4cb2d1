package router

import (
	"net/http/httptest"
	"testing"
)

func TestParsePoolSpec_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/quantities", nil)
	spec, err := ParsePoolSpec(r)
	if err != nil {
		t.Fatalf("ParsePoolSpec: %v", err)
	}
	if spec.Length != 7.25 || spec.Width != 4.25 {
		t.Fatalf("footprint=%.2fx%.2f", spec.Length, spec.Width)
	}
	if spec.DepthKids != 1.00 || spec.DepthAdults != 1.50 {
		t.Fatalf("depths=%.2f/%.2f", spec.DepthKids, spec.DepthAdults)
	}
	// 30% of 7.25
	if spec.KidsZoneLength != 0.3*7.25 {
		t.Fatalf("kids zone=%.4f want %.4f", spec.KidsZoneLength, 0.3*7.25)
	}
	if spec.WallThickness != 0.25 || spec.FloorThickness != 0.30 || spec.SoilThickness != 0.50 {
		t.Fatalf("thicknesses=%+v", spec)
	}
}

func TestParsePoolSpec_KidsZoneDefaultFloorsAtOneMetre(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/quantities?length=2.5", nil)
	spec, err := ParsePoolSpec(r)
	if err != nil {
		t.Fatalf("ParsePoolSpec: %v", err)
	}
	if spec.KidsZoneLength != 1.0 {
		t.Fatalf("kids zone=%.4f want 1.0", spec.KidsZoneLength)
	}
}

func TestParsePoolSpec_ExplicitValues(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/v1/quantities?length=12&width=6&depth_kids=0.8&depth_adults=2.2&kids_zone_length=3&wall_thickness=0.3&floor_thickness=0.4&soil_thickness=0.6", nil)
	spec, err := ParsePoolSpec(r)
	if err != nil {
		t.Fatalf("ParsePoolSpec: %v", err)
	}
	if spec.Length != 12 || spec.Width != 6 || spec.KidsZoneLength != 3 {
		t.Fatalf("spec=%+v", spec)
	}
	if spec.DepthKids != 0.8 || spec.DepthAdults != 2.2 {
		t.Fatalf("spec=%+v", spec)
	}
	if spec.WallThickness != 0.3 || spec.FloorThickness != 0.4 || spec.SoilThickness != 0.6 {
		t.Fatalf("spec=%+v", spec)
	}
}

func TestParsePoolSpec_ExplicitZeroKidsZoneIsKept(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/quantities?kids_zone_length=0", nil)
	spec, err := ParsePoolSpec(r)
	if err != nil {
		t.Fatalf("ParsePoolSpec: %v", err)
	}
	if spec.KidsZoneLength != 0 {
		t.Fatalf("kids zone=%.4f want explicit 0", spec.KidsZoneLength)
	}
}

func TestParsePoolSpec_Rejections(t *testing.T) {
	cases := map[string]string{
		"negative length":       "length=-1",
		"length over bound":     "length=51",
		"width over bound":      "width=20.5",
		"negative depth":        "depth_kids=-0.1",
		"depth over bound":      "depth_adults=5.1",
		"wall over bound":       "wall_thickness=1.5",
		"not a number":          "length=seven",
		"zero length footprint": "length=0",
		"zero width footprint":  "width=0",
	}
	for name, qs := range cases {
		r := httptest.NewRequest("GET", "/v1/quantities?"+qs, nil)
		if _, err := ParsePoolSpec(r); err == nil {
			t.Fatalf("%s: expected error for %q", name, qs)
		}
	}
}
