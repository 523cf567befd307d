// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// GammaCorrect converts a linear RGB component to its display encoded
// (gamma corrected) form, using the standard sRGB transfer function:
// 12.92 * lin below the 0.0031308 linear threshold, and
// 1.055 * lin^(1/2.4) - 0.055 above it. The same curve is applied in
// all three display spaces. Inputs outside [0,1] are not clamped:
// negative components take the linear branch and stay negative, so out
// of gamut colors survive the display pipeline intact.
func GammaCorrect(lin float64) float64 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math.Pow(lin, 1.0/2.4) - 0.055
}

// GammaUncorrect converts a display encoded (gamma corrected) RGB
// component back to its linear form, inverting [GammaCorrect]:
// v / 12.92 below the 0.04045 display threshold, and
// ((v + 0.055) / 1.055)^2.4 above it.
func GammaUncorrect(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RGBToLinear converts display encoded r, g, b components on the unit
// scale to linear components, applying [GammaUncorrect] per channel.
func RGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	rl = GammaUncorrect(r)
	gl = GammaUncorrect(g)
	bl = GammaUncorrect(b)
	return
}

// RGBFromLinear converts linear r, g, b components to their display
// encoded forms on the unit scale, applying [GammaCorrect] per channel.
func RGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	r = GammaCorrect(rl)
	g = GammaCorrect(gl)
	b = GammaCorrect(bl)
	return
}

// RGBToDisplay scales unit RGB components up to the display [0,255]
// range, without clamping.
func RGBToDisplay(r, g, b float64) (dr, dg, db float64) {
	dr = r * 255
	dg = g * 255
	db = b * 255
	return
}

// RGBFromDisplay scales display [0,255] RGB components down to the
// unit range.
func RGBFromDisplay(dr, dg, db float64) (r, g, b float64) {
	r = dr / 255
	g = dg / 255
	b = db / 255
	return
}

// RGBToUint8 converts display [0,255] components to uint8, clamping
// out of range values and rounding to the nearest integer. This is
// the only lossy step in the display pipeline: everything before it
// preserves out of range components so that [InGamut] still sees them.
func RGBToUint8(r, g, b float64) (ur, ug, ub uint8) {
	ur = uint8(math.Round(clamp(r, 0, 255)))
	ug = uint8(math.Round(clamp(g, 0, 255)))
	ub = uint8(math.Round(clamp(b, 0, 255)))
	return
}

// clamp bounds v to the [lo, hi] interval.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
