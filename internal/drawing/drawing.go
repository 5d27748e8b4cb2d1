// Package drawing renders schematic engineering views of a pool spec
// as in-memory PNGs. Views are deterministic for a given spec: fixed
// canvas sizes, fixed palette, no timestamps.
package drawing

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/pooldraft/pooldraft/internal/geometry"
)

type View string

const (
	ViewPlan         View = "plan"
	ViewLongitudinal View = "longitudinal"
	ViewTransverse   View = "transverse"
)

func Views() []View {
	return []View{ViewPlan, ViewLongitudinal, ViewTransverse}
}

func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewPlan, ViewLongitudinal, ViewTransverse:
		return View(s), nil
	}
	return "", fmt.Errorf("unknown view %q (want plan, longitudinal or transverse)", s)
}

// Palette matching the original drawings: sandy soil mass with a
// saddle-brown outline, light blue water.
const (
	soilFill    = "#F0D9B5"
	soilStroke  = "#8B4513"
	waterFill   = "#A7D8FF"
	waterStroke = "#1E50FF"
	inkColor    = "#202020"
	gridColor   = "#C8C8C8"
)

const margin = 60.0

// Render rasterizes one view and returns the PNG bytes.
func Render(view View, spec geometry.PoolSpec, rep geometry.QuantityReport) ([]byte, error) {
	if spec.Length <= 0 || spec.Width <= 0 {
		return nil, fmt.Errorf("cannot draw a pool with footprint %.3f x %.3f m", spec.Length, spec.Width)
	}

	var dc *gg.Context
	switch view {
	case ViewPlan:
		dc = drawPlan(spec, rep)
	case ViewLongitudinal:
		dc = drawLongitudinal(spec, rep)
	case ViewTransverse:
		dc = drawTransverse(spec, rep)
	default:
		return nil, fmt.Errorf("unknown view %q", view)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode %s png: %w", view, err)
	}
	return buf.Bytes(), nil
}

// frame maps world metres onto the canvas. Y grows up in world space
// and down on the canvas, so sections put depth below the water line.
type frame struct {
	scale      float64
	minX, minY float64
	height     float64
}

func newFrame(w, h int, minX, maxX, minY, maxY float64) frame {
	sx := (float64(w) - 2*margin) / (maxX - minX)
	sy := (float64(h) - 2*margin) / (maxY - minY)
	s := sx
	if sy < s {
		s = sy
	}
	return frame{scale: s, minX: minX, minY: minY, height: float64(h)}
}

func (f frame) x(wx float64) float64 { return margin + (wx-f.minX)*f.scale }
func (f frame) y(wy float64) float64 { return f.height - margin - (wy-f.minY)*f.scale }

// rect draws a world-space rectangle with fill and outline colors.
func (f frame) rect(dc *gg.Context, x, y, w, h float64, fill, stroke string) {
	dc.DrawRectangle(f.x(x), f.y(y+h), w*f.scale, h*f.scale)
	dc.SetHexColor(fill)
	dc.FillPreserve()
	dc.SetHexColor(stroke)
	dc.SetLineWidth(2)
	dc.Stroke()
}

// grid draws faint 1 m gridlines over the world bounds.
func (f frame) grid(dc *gg.Context, minX, maxX, minY, maxY float64) {
	dc.SetHexColor(gridColor)
	dc.SetLineWidth(0.5)
	dc.SetDash(3, 5)
	for gx := float64(int(minX)) - 1; gx <= maxX+1; gx++ {
		dc.DrawLine(f.x(gx), f.y(minY), f.x(gx), f.y(maxY))
		dc.Stroke()
	}
	for gy := float64(int(minY)) - 1; gy <= maxY+1; gy++ {
		dc.DrawLine(f.x(minX), f.y(gy), f.x(maxX), f.y(gy))
		dc.Stroke()
	}
	dc.SetDash()
}

func title(dc *gg.Context, w int, text string) {
	dc.SetHexColor(inkColor)
	dc.DrawStringAnchored(text, float64(w)/2, margin/2, 0.5, 0.5)
}
