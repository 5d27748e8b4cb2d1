package drawing

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/pooldraft/pooldraft/internal/geometry"
)

func refSpec() geometry.PoolSpec {
	return geometry.PoolSpec{
		Length: 7.25, Width: 4.25,
		DepthKids: 1.0, DepthAdults: 1.5,
		KidsZoneLength: 2.175,
		WallThickness:  0.25, FloorThickness: 0.30, SoilThickness: 0.50,
	}
}

func TestRender_AllViewsProduceDecodablePNGs(t *testing.T) {
	spec := refSpec()
	rep := geometry.Compute(spec)

	sizes := map[View][2]int{
		ViewPlan:         {planW, planH},
		ViewLongitudinal: {longW, longH},
		ViewTransverse:   {transW, transH},
	}

	for _, v := range Views() {
		data, err := Render(v, spec, rep)
		if err != nil {
			t.Fatalf("%s: %v", v, err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%s: decode: %v", v, err)
		}
		b := img.Bounds()
		want := sizes[v]
		if b.Dx() != want[0] || b.Dy() != want[1] {
			t.Fatalf("%s: canvas %dx%d want %dx%d", v, b.Dx(), b.Dy(), want[0], want[1])
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	spec := refSpec()
	rep := geometry.Compute(spec)

	first, err := Render(ViewPlan, spec, rep)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := Render(ViewPlan, spec, rep)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("same spec produced different PNG bytes")
	}
}

func TestRender_ZeroThicknesses(t *testing.T) {
	spec := refSpec()
	spec.WallThickness = 0
	spec.FloorThickness = 0
	spec.SoilThickness = 0
	rep := geometry.Compute(spec)

	for _, v := range Views() {
		if _, err := Render(v, spec, rep); err != nil {
			t.Fatalf("%s: %v", v, err)
		}
	}
}

func TestRender_RejectsDegenerateFootprint(t *testing.T) {
	spec := refSpec()
	spec.Width = 0
	if _, err := Render(ViewPlan, spec, geometry.Compute(spec)); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestParseView(t *testing.T) {
	for _, v := range Views() {
		got, err := ParseView(string(v))
		if err != nil || got != v {
			t.Fatalf("ParseView(%q)=%q,%v", v, got, err)
		}
	}
	if _, err := ParseView("isometric"); err == nil {
		t.Fatal("expected error for unknown view")
	}
}
