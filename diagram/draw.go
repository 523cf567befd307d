// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"fmt"
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"goki.dev/chroma/cie"
	"goki.dev/mat32/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Overlay palette.
var (
	bgColor       = color.RGBA{R: 18, G: 18, B: 18, A: 255}
	gridColor     = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	labelColor    = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	locusColor    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	gamutColor    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	gamutSelColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	markColor     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	whiteColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// newRaster returns a stroke and fill rasterizer targeting the image.
func newRaster(img *image.RGBA) *rasterx.Dasher {
	sz := img.Bounds().Size()
	sc := rasterx.NewScannerGV(sz.X, sz.Y, img, img.Bounds())
	return rasterx.NewDasher(sz.X, sz.Y, sc)
}

// drawRegion colors every pixel whose chromaticity lies inside the
// spectral locus through the pick chain, clamped for display, and
// fills the rest with the background.
func (dg *Diagram) drawRegion(img *image.RGBA) {
	for py := 0; py < dg.Size.Y; py++ {
		for px := 0; px < dg.Size.X; px++ {
			xc, yc := dg.PixelToChroma(px, py)
			if inPolygon(mat32.V2(float32(xc), float32(yc)), cie.SpectralLocus) {
				img.SetRGBA(px, py, dg.Pick(px, py).AsRGBA())
			} else {
				img.SetRGBA(px, py, bgColor)
			}
		}
	}
}

// drawGrid strokes chromaticity grid lines at 0.1 steps and labels
// every other one along the bottom and left edges.
func (dg *Diagram) drawGrid(img *image.RGBA, rs *rasterx.Dasher) {
	for i := 1; i < 10; i++ {
		c := float32(i) / 10
		dg.strokeChroma(rs, []mat32.Vec2{mat32.V2(c, 0), mat32.V2(c, 1)}, 1, gridColor)
		dg.strokeChroma(rs, []mat32.Vec2{mat32.V2(0, c), mat32.V2(1, c)}, 1, gridColor)
	}
	for i := 2; i < 10; i += 2 {
		c := float32(i) / 10
		s := fmt.Sprintf("%.1f", c)
		pp := dg.ChromaToPixel(mat32.V2(c, 0))
		label(img, int(pp.X)+2, dg.Size.Y-4, s, labelColor)
		pp = dg.ChromaToPixel(mat32.V2(0, c))
		label(img, 2, int(pp.Y)-2, s, labelColor)
	}
}

// drawLocus outlines the visible chromaticity region.
func (dg *Diagram) drawLocus(rs *rasterx.Dasher) {
	dg.strokeChroma(rs, cie.SpectralLocus, 2, locusColor)
}

// drawGamuts strokes the display gamut triangles, the diagram's own
// space last and emphasized, on top of the others.
func (dg *Diagram) drawGamuts(rs *rasterx.Dasher) {
	for _, cs := range []cie.ColorSpaces{cie.SRGB, cie.P3, cie.Rec2020} {
		if cs == dg.Space {
			continue
		}
		dg.strokeChroma(rs, cie.Gamut(cs), 1, gamutColor)
	}
	dg.strokeChroma(rs, cie.Gamut(dg.Space), 2, gamutSelColor)
}

// drawWhitePoint marks the D65 white point with an outlined cross.
func (dg *Diagram) drawWhitePoint(rs *rasterx.Dasher) {
	at := mat32.V2(cie.D65X, cie.D65Y)
	dg.strokeCross(rs, at, 5, 3, whiteColor)
	dg.strokeCross(rs, at, 5, 1.5, markColor)
}

// drawSelection rings the current selection's chromaticity.
func (dg *Diagram) drawSelection(rs *rasterx.Dasher) {
	d := dg.Selection.Derive()
	at := mat32.V2(float32(d.ChromaX), float32(d.ChromaY))
	dg.strokeCircle(rs, at, 7, 3, markColor)
	dg.strokeCircle(rs, at, 7, 1.5, whiteColor)
}

// strokeChroma strokes a polyline given in chromaticity coordinates.
func (dg *Diagram) strokeChroma(rs *rasterx.Dasher, pts []mat32.Vec2, width float32, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	rs.SetColor(clr)
	rs.SetStroke(mat32.ToFixed(width), mat32.ToFixed(10), rasterx.RoundCap, nil, nil, rasterx.Round, nil, 0)
	st := dg.ChromaToPixel(pts[0])
	rs.Start(rasterx.ToFixedP(float64(st.X), float64(st.Y)))
	for _, pt := range pts[1:] {
		pp := dg.ChromaToPixel(pt)
		rs.Line(rasterx.ToFixedP(float64(pp.X), float64(pp.Y)))
	}
	rs.Stop(false)
	rs.Draw()
	rs.Clear()
}

// strokeCircle strokes a circle of the given pixel radius centered on
// the given chromaticity.
func (dg *Diagram) strokeCircle(rs *rasterx.Dasher, at mat32.Vec2, radius, width float32, clr color.Color) {
	rs.SetColor(clr)
	rs.SetStroke(mat32.ToFixed(width), mat32.ToFixed(10), rasterx.RoundCap, nil, nil, rasterx.Round, nil, 0)
	pp := dg.ChromaToPixel(at)
	rasterx.AddCircle(float64(pp.X), float64(pp.Y), float64(radius), rs)
	rs.Draw()
	rs.Clear()
}

// strokeCross strokes a cross of the given pixel arm length centered
// on the given chromaticity.
func (dg *Diagram) strokeCross(rs *rasterx.Dasher, at mat32.Vec2, arm, width float32, clr color.Color) {
	rs.SetColor(clr)
	rs.SetStroke(mat32.ToFixed(width), mat32.ToFixed(10), rasterx.RoundCap, nil, nil, rasterx.Round, nil, 0)
	pp := dg.ChromaToPixel(at)
	rs.Start(rasterx.ToFixedP(float64(pp.X-arm), float64(pp.Y)))
	rs.Line(rasterx.ToFixedP(float64(pp.X+arm), float64(pp.Y)))
	rs.Stop(false)
	rs.Start(rasterx.ToFixedP(float64(pp.X), float64(pp.Y-arm)))
	rs.Line(rasterx.ToFixedP(float64(pp.X), float64(pp.Y+arm)))
	rs.Stop(false)
	rs.Draw()
	rs.Clear()
}

// label draws s in the fixed 7x13 basic font with the dot at the text
// baseline.
func label(img *image.RGBA, x, y int, s string, clr color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(clr),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// inPolygon reports whether the point lies inside the closed polygon
// under the nonzero winding rule, counting the crossings of a
// horizontal ray from the point.
func inPolygon(pt mat32.Vec2, poly []mat32.Vec2) bool {
	w := 0
	for i := 1; i < len(poly); i++ {
		w += windingSegment(poly[i-1], poly[i], pt)
	}
	return w != 0
}

// windingSegment is the winding number contribution of one segment:
// +1 for an upward crossing left of the point, -1 for a downward one.
func windingSegment(a, b, pt mat32.Vec2) int {
	if a.Y <= pt.Y && b.Y > pt.Y && isLeft(a, b, pt) > 0 {
		return 1
	}
	if a.Y > pt.Y && b.Y <= pt.Y && isLeft(a, b, pt) < 0 {
		return -1
	}
	return 0
}

// isLeft is positive if the point is left of the a to b line, zero on
// it, and negative to the right.
func isLeft(a, b, pt mat32.Vec2) float32 {
	return (b.X-a.X)*(pt.Y-a.Y) - (pt.X-a.X)*(b.Y-a.Y)
}
