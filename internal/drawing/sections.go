package drawing

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/pooldraft/pooldraft/internal/geometry"
)

const (
	longW = 1200
	longH = 450

	transW = 750
	transH = 450
)

// drawLongitudinal cuts the pool along its length: soil mass down to
// the excavation depth, the interior (water plus floor slab), and the
// kids/adults divider with the zone depths.
func drawLongitudinal(spec geometry.PoolSpec, rep geometry.QuantityReport) *gg.Context {
	wall := spec.WallThickness
	interiorDepth := spec.DepthAdults + spec.FloorThickness
	minX, maxX := -wall, spec.Length+wall
	minY, maxY := -rep.OuterDepth, 0.2

	dc := gg.NewContext(longW, longH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	f := newFrame(longW, longH, minX, maxX, minY, maxY)
	f.grid(dc, minX, maxX, minY, maxY)

	f.rect(dc, -wall, -rep.OuterDepth, rep.OuterLength, rep.OuterDepth, soilFill, soilStroke)
	f.rect(dc, 0, -interiorDepth, spec.Length, interiorDepth, waterFill, inkColor)

	if spec.KidsZoneLength > 0 && spec.KidsZoneLength < spec.Length {
		dc.SetHexColor(inkColor)
		dc.SetLineWidth(1)
		dc.SetDash(6, 4)
		dc.DrawLine(f.x(spec.KidsZoneLength), f.y(0), f.x(spec.KidsZoneLength), f.y(-interiorDepth))
		dc.Stroke()
		dc.SetDash()
	}

	dc.SetHexColor(waterStroke)
	dc.DrawStringAnchored(fmt.Sprintf("Kids: %.2f m", spec.DepthKids),
		f.x(spec.KidsZoneLength/2), f.y(-spec.DepthKids/2), 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("Adults: %.2f m", spec.DepthAdults),
		f.x(spec.KidsZoneLength+rep.AdultsZoneLength/2), f.y(-spec.DepthAdults/2), 0.5, 0.5)

	if spec.FloorThickness > 0 {
		dc.SetHexColor(inkColor)
		dc.DrawStringAnchored(fmt.Sprintf("floor %.2f m", spec.FloorThickness),
			f.x(spec.Length/2), f.y(-spec.DepthAdults-spec.FloorThickness/2), 0.5, 0.5)
	}
	if spec.SoilThickness > 0 {
		dc.SetHexColor(soilStroke)
		dc.DrawStringAnchored(fmt.Sprintf("soil %.2f m", spec.SoilThickness),
			f.x(spec.Length/2), f.y(-rep.OuterDepth+spec.SoilThickness/2), 0.5, 0.5)
	}

	title(dc, longW, "Longitudinal Section")
	return dc
}

// drawTransverse cuts across the width at mid-length, where the pool
// is at the adults depth.
func drawTransverse(spec geometry.PoolSpec, rep geometry.QuantityReport) *gg.Context {
	wall := spec.WallThickness
	interiorDepth := spec.DepthAdults + spec.FloorThickness
	minX, maxX := -wall, spec.Width+wall
	minY, maxY := -rep.OuterDepth, 0.2

	dc := gg.NewContext(transW, transH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	f := newFrame(transW, transH, minX, maxX, minY, maxY)
	f.grid(dc, minX, maxX, minY, maxY)

	f.rect(dc, -wall, -rep.OuterDepth, rep.OuterWidth, rep.OuterDepth, soilFill, soilStroke)
	f.rect(dc, 0, -interiorDepth, spec.Width, interiorDepth, waterFill, inkColor)

	dc.SetHexColor(inkColor)
	dc.DrawStringAnchored(fmt.Sprintf("Width: %.2f m", spec.Width),
		f.x(spec.Width/2), f.y(-rep.OuterDepth)+16, 0.5, 0.5)

	title(dc, transW, "Transverse Section (mid-length)")
	return dc
}
