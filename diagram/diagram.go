// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagram renders the CIE 1931 chromaticity diagram used for
// color selection: the visible chromaticity region colored through the
// selected space's pick chain, gamut triangle overlays, a grid with
// axis labels, the D65 white point, and the current selection marker.
package diagram

import (
	"image"

	"goki.dev/chroma/cie"
	"goki.dev/chroma/picker"
	"goki.dev/grows/images"
	"goki.dev/grr"
	"goki.dev/mat32/v2"
)

// Diagram renders the chromaticity diagram over the [0,1] x [0,1]
// chromaticity plane, with y increasing upward. Set the fields, then
// call [Diagram.Render] or [Diagram.SavePNG]; [Diagram.Pick] maps a
// pixel back to a color selection.
type Diagram struct {

	// Size is the rendered image size in pixels
	Size image.Point

	// Space selects the pick chain used to color the visible region
	// and the gamut triangle drawn emphasized
	Space cie.ColorSpaces

	// Lum is the Y luminance at which chromaticities are displayed
	// and picked
	Lum float64

	// Gamuts draws the three display gamut triangles
	Gamuts bool

	// Grid draws chromaticity grid lines and axis labels
	Grid bool

	// Selection, if set, is marked with a ring at its chromaticity
	Selection *picker.State
}

// NewDiagram returns a new [Diagram] with default settings.
func NewDiagram() *Diagram {
	dg := &Diagram{}
	dg.Defaults()
	return dg
}

// Defaults sets a 512 pixel square sRGB diagram at half luminance,
// with the gamut and grid overlays on.
func (dg *Diagram) Defaults() {
	dg.Size = image.Pt(512, 512)
	dg.Space = cie.SRGB
	dg.Lum = 0.5
	dg.Gamuts = true
	dg.Grid = true
}

// PixelToChroma maps a pixel position to the xy chromaticity at its
// center, by linear interpolation of the diagram axes. Pixel y runs
// downward, chromaticity y upward.
func (dg *Diagram) PixelToChroma(px, py int) (xc, yc float64) {
	xc = (float64(px) + 0.5) / float64(dg.Size.X)
	yc = 1 - (float64(py)+0.5)/float64(dg.Size.Y)
	return
}

// ChromaToPixel maps xy chromaticity coordinates to their (fractional)
// pixel position on the diagram, inverting [Diagram.PixelToChroma].
func (dg *Diagram) ChromaToPixel(pt mat32.Vec2) mat32.Vec2 {
	return mat32.V2(pt.X*float32(dg.Size.X), (1-pt.Y)*float32(dg.Size.Y))
}

// Pick returns the color selection under the given pixel: the
// chromaticity at the pixel center, displayed at the diagram's
// luminance in the diagram's color space. Picks outside the space's
// gamut are returned unclamped, like any other selection.
func (dg *Diagram) Pick(px, py int) picker.State {
	xc, yc := dg.PixelToChroma(px, py)
	return picker.FromChromaticity(xc, yc, dg.Lum, dg.Space)
}

// Render draws the diagram into a new image: the visible chromaticity
// region colored pixel by pixel through the pick chain, then the
// overlays in back to front order.
func (dg *Diagram) Render() *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: dg.Size})
	dg.drawRegion(img)
	rs := newRaster(img)
	if dg.Grid {
		dg.drawGrid(img, rs)
	}
	dg.drawLocus(rs)
	if dg.Gamuts {
		dg.drawGamuts(rs)
	}
	dg.drawWhitePoint(rs)
	if dg.Selection != nil {
		dg.drawSelection(rs)
	}
	return img
}

// SavePNG renders the diagram and saves it to the given file, with the
// format determined by the extension.
func (dg *Diagram) SavePNG(filename string) error {
	return grr.Log(images.Save(dg.Render(), filename))
}
