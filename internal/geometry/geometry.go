// Package geometry computes derived quantities for a two-zone
// rectangular pool. All dimensions are metres, all volumes cubic
// metres unless a field name says otherwise.
package geometry

import "fmt"

// PoolSpec is the interior footprint plus structural dimensions of a
// rectangular pool with a shallow kids zone and a deeper adults zone.
// The kids zone length is measured along Length.
type PoolSpec struct {
	Length         float64 `json:"length"`
	Width          float64 `json:"width"`
	DepthKids      float64 `json:"depth_kids"`
	DepthAdults    float64 `json:"depth_adults"`
	KidsZoneLength float64 `json:"kids_zone_length"`
	WallThickness  float64 `json:"wall_thickness"`
	FloorThickness float64 `json:"floor_thickness"`
	SoilThickness  float64 `json:"soil_thickness"`
}

// QuantityReport holds the quantities derived from a normalized spec.
type QuantityReport struct {
	AdultsZoneLength   float64 `json:"adults_zone_length"`
	OuterLength        float64 `json:"outer_length"`
	OuterWidth         float64 `json:"outer_width"`
	OuterDepth         float64 `json:"outer_depth"`
	WaterVolumeM3      float64 `json:"water_volume_m3"`
	WaterVolumeL       float64 `json:"water_volume_l"`
	ExcavationVolumeM3 float64 `json:"excavation_volume_m3"`
	FloorConcreteM3    float64 `json:"floor_concrete_m3"`
	WallConcreteM3     float64 `json:"wall_concrete_m3"`
	ConcreteTotalM3    float64 `json:"concrete_total_m3"`
}

// Advisory kinds reported by Normalize.
const (
	KindKidsZoneClamped = "kids-zone-clamped"
	KindDepthOrder      = "depth-order"
)

// Advisory is a non-fatal plausibility warning. Computation always
// proceeds; the caller decides how to surface it.
type Advisory struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Normalize applies the two advisory rules and returns the spec used
// for computation. Only the kids zone clamp alters a value; the depth
// ordering rule warns without correcting. Idempotent.
func Normalize(spec PoolSpec) (PoolSpec, []Advisory) {
	var adv []Advisory
	if spec.KidsZoneLength > spec.Length {
		adv = append(adv, Advisory{
			Kind: KindKidsZoneClamped,
			Message: fmt.Sprintf("kids zone length %.3f m exceeds pool length %.3f m; clamped to pool length",
				spec.KidsZoneLength, spec.Length),
		})
		spec.KidsZoneLength = spec.Length
	}
	if spec.DepthKids > spec.DepthAdults {
		adv = append(adv, Advisory{
			Kind: KindDepthOrder,
			Message: fmt.Sprintf("kids depth %.3f m is greater than adults depth %.3f m; check depths",
				spec.DepthKids, spec.DepthAdults),
		})
	}
	return spec, adv
}

// Compute derives all quantities from a normalized spec.
//
// Excavation is deliberately the full outer bounding box including the
// soil backfill depth, and wall concrete is perimeter x thickness x
// height with no corner correction. Downstream cost estimates are
// calibrated against these approximations; do not refine them.
func Compute(spec PoolSpec) QuantityReport {
	adultsZone := spec.Length - spec.KidsZoneLength
	if adultsZone < 0 {
		adultsZone = 0
	}

	outerLength := spec.Length + 2*spec.WallThickness
	outerWidth := spec.Width + 2*spec.WallThickness
	outerDepth := spec.DepthAdults + spec.FloorThickness + spec.SoilThickness

	water := spec.KidsZoneLength*spec.Width*spec.DepthKids +
		adultsZone*spec.Width*spec.DepthAdults

	floorConcrete := outerLength * outerWidth * spec.FloorThickness
	innerPerimeter := 2 * (spec.Length + spec.Width)
	wallConcrete := innerPerimeter * spec.WallThickness * (spec.DepthAdults + spec.FloorThickness)

	return QuantityReport{
		AdultsZoneLength:   adultsZone,
		OuterLength:        outerLength,
		OuterWidth:         outerWidth,
		OuterDepth:         outerDepth,
		WaterVolumeM3:      water,
		WaterVolumeL:       water * 1000,
		ExcavationVolumeM3: outerLength * outerWidth * outerDepth,
		FloorConcreteM3:    floorConcrete,
		WallConcreteM3:     wallConcrete,
		ConcreteTotalM3:    floorConcrete + wallConcrete,
	}
}

// Quantities normalizes the spec and computes its report in one step.
// The returned spec is the one the report was computed from.
func Quantities(spec PoolSpec) (PoolSpec, QuantityReport, []Advisory) {
	norm, adv := Normalize(spec)
	return norm, Compute(norm), adv
}
