package drawing

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/pooldraft/pooldraft/internal/geometry"
)

const (
	planW = 900
	planH = 600
)

// drawPlan shows the pool footprint from above: the outer soil/wall
// band around the water rectangle, with the interior dimensions and a
// wall thickness callout.
func drawPlan(spec geometry.PoolSpec, rep geometry.QuantityReport) *gg.Context {
	wall := spec.WallThickness
	minX, maxX := -wall, spec.Length+wall
	minY, maxY := -wall, spec.Width+wall

	dc := gg.NewContext(planW, planH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	f := newFrame(planW, planH, minX, maxX, minY, maxY)
	f.grid(dc, minX, maxX, minY, maxY)

	f.rect(dc, -wall, -wall, rep.OuterLength, rep.OuterWidth, soilFill, soilStroke)
	f.rect(dc, 0, 0, spec.Length, spec.Width, waterFill, waterStroke)

	// kids/adults split along the length
	if spec.KidsZoneLength > 0 && spec.KidsZoneLength < spec.Length {
		dc.SetHexColor(inkColor)
		dc.SetLineWidth(1)
		dc.SetDash(6, 4)
		dc.DrawLine(f.x(spec.KidsZoneLength), f.y(0), f.x(spec.KidsZoneLength), f.y(spec.Width))
		dc.Stroke()
		dc.SetDash()
		dc.DrawStringAnchored("kids", f.x(spec.KidsZoneLength/2), f.y(spec.Width/2), 0.5, 0.5)
		dc.DrawStringAnchored("adults",
			f.x(spec.KidsZoneLength+rep.AdultsZoneLength/2), f.y(spec.Width/2), 0.5, 0.5)
	}

	dc.SetHexColor(inkColor)
	dc.DrawStringAnchored(fmt.Sprintf("%.2f m", spec.Length),
		f.x(spec.Length/2), f.y(-wall)+16, 0.5, 0.5)

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), f.x(-wall)-16, f.y(spec.Width/2))
	dc.DrawStringAnchored(fmt.Sprintf("%.2f m", spec.Width),
		f.x(-wall)-16, f.y(spec.Width/2), 0.5, 0.5)
	dc.Pop()

	if wall > 0 {
		dc.SetHexColor(soilStroke)
		dc.DrawStringAnchored(fmt.Sprintf("wall %.2f m", wall),
			f.x(spec.Length+wall/2), f.y(spec.Width+wall)-10, 0.5, 1)
	}

	title(dc, planW, "Plan View")
	return dc
}
