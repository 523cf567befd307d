// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package picker holds the color selection state behind the
// chromaticity diagram and derives every display representation of the
// selected color in one deterministic pass.
package picker

import (
	"image/color"

	"goki.dev/chroma/cie"
	"goki.dev/chroma/hsl"
	"goki.dev/grows/tomls"
	"goki.dev/grr"
)

// State is one immutable color selection: display [0,255] RGB
// components, which can lie outside that range for out of gamut picks,
// and the color space whose matrices and CSS form apply to them.
// Interactions replace the whole snapshot instead of mutating fields,
// so every [State.Derive] sees a consistent color and space pair.
type State struct {

	// R is the red component on the display [0,255] scale
	R float64

	// G is the green component on the display [0,255] scale
	G float64

	// B is the blue component on the display [0,255] scale
	B float64

	// Space selects the conversion matrices and the CSS serialization
	Space cie.ColorSpaces
}

// Derived is the full set of representations of one [State], computed
// by [State.Derive]. Everything numeric is unclamped so out of gamut
// picks stay visible in every field; only CSS passes through the final
// display clamping.
type Derived struct {

	// X, Y, Z are the unit scale XYZ tristimulus values
	X, Y, Z float64

	// ChromaX, ChromaY locate the selection on the chromaticity
	// diagram, with Lum the passed through Y luminance
	ChromaX, ChromaY, Lum float64

	// L, A, B are the CIE LAB coordinates under the D65 white
	L, A, B float64

	// OKL, OKC, OKH are the polar LCh readout of L, A, B, as shown in
	// the oklch display field (see [cie.LABToOKLCH])
	OKL, OKC, OKH float64

	// Hue, Sat, Light are the HSL readout, in degrees and percentages
	Hue, Sat, Light float64

	// TempK is the McCamy correlated color temperature estimate in
	// Kelvin, unreliable far from the blackbody locus
	TempK float64

	// CSS is the serialization for the selection's color space
	CSS string

	// InGamut reports whether all RGB components lie in [0,255]
	InGamut bool
}

// Derive computes the derived bundle for the selection in one fixed
// order pass: linearize, XYZ, chromaticity, LAB and its polar form,
// HSL, color temperature, CSS. There is no cached or incremental
// state: equal selections always derive equal bundles.
func (st State) Derive() Derived {
	r, g, b := cie.RGBFromDisplay(st.R, st.G, st.B)
	rl, gl, bl := cie.RGBToLinear(r, g, b)
	d := Derived{}
	d.X, d.Y, d.Z = cie.RGBLinToXYZ(rl, gl, bl, st.Space)
	d.ChromaX, d.ChromaY, d.Lum = cie.XYZToXYY(d.X, d.Y, d.Z)
	d.L, d.A, d.B = cie.XYZToLAB(d.X, d.Y, d.Z)
	d.OKL, d.OKC, d.OKH = cie.LABToOKLCH(d.L, d.A, d.B)
	d.Hue, d.Sat, d.Light = hsl.RGBToHSL(st.R, st.G, st.B)
	d.TempK = cie.ColorTemperature(d.ChromaX, d.ChromaY)
	d.CSS = cie.CSSString(st.R, st.G, st.B, st.Space)
	d.InGamut = cie.InGamut(st.R, st.G, st.B)
	return d
}

// FromChromaticity returns the selection at the given xy chromaticity
// and Y luminance in the given color space, through the diagram pick
// chain: chromaticity to XYZ to linear RGB to display encoding. The
// result is not clamped, so a pick outside the space's gamut comes
// back with components beyond [0,255] and derives InGamut false.
func FromChromaticity(xc, yc, lum float64, cs cie.ColorSpaces) State {
	x, y, z := cie.XYYToXYZ(xc, yc, lum)
	rl, gl, bl := cie.XYZToRGBLin(x, y, z, cs)
	r, g, b := cie.RGBFromLinear(rl, gl, bl)
	dr, dg, db := cie.RGBToDisplay(r, g, b)
	return State{R: dr, G: dg, B: db, Space: cs}
}

// FromColor returns the selection for the given color in the given
// color space, un-premultiplying the alpha.
func FromColor(c color.Color, cs cie.ColorSpaces) State {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return State{Space: cs}
	}
	fa := float64(a)
	return State{
		R:     float64(r) / fa * 255,
		G:     float64(g) / fa * 255,
		B:     float64(b) / fa * 255,
		Space: cs,
	}
}

// WithSpace returns the same RGB components tagged with a different
// color space, the space switching interaction of the picker.
func (st State) WithSpace(cs cie.ColorSpaces) State {
	st.Space = cs
	return st
}

// Clamped returns the selection with components clamped and rounded to
// the displayable [0,255] range, the form handed to actual pixels.
func (st State) Clamped() State {
	ur, ug, ub := cie.RGBToUint8(st.R, st.G, st.B)
	return State{R: float64(ur), G: float64(ug), B: float64(ub), Space: st.Space}
}

// AsRGBA returns the clamped selection as an opaque 8 bit
// [color.RGBA].
func (st State) AsRGBA() color.RGBA {
	ur, ug, ub := cie.RGBToUint8(st.R, st.G, st.B)
	return color.RGBA{R: ur, G: ug, B: ub, A: 255}
}

// Open loads a selection from a TOML file.
func (st *State) Open(filename string) error {
	return grr.Log(tomls.Open(st, filename))
}

// SaveAs saves the selection to a TOML file.
func (st *State) SaveAs(filename string) error {
	return grr.Log(tomls.Save(st, filename))
}
