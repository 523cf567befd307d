// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/core/glop/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestXYZ(t *testing.T) {
	x, y, z := RGBLinToXYZ(0.5, 0.6, 0.7, SRGB)
	tolassert.Equal(t, 0.54711, x)
	tolassert.Equal(t, 0.58596, y)
	tolassert.Equal(t, 0.74652, z)

	rl, gl, bl := XYZToRGBLin(x, y, z, SRGB)
	tolassert.EqualTol(t, 0.5, rl, 1.0e-4)
	tolassert.EqualTol(t, 0.6, gl, 1.0e-4)
	tolassert.EqualTol(t, 0.7, bl, 1.0e-4)

	x, y, z = RGBLinToXYZ(1, 1, 1, SRGB)
	tolassert.Equal(t, 0.9505, x)
	tolassert.Equal(t, 1.0, y)
	tolassert.Equal(t, 1.089, z)

	x, y, z = RGBLinToXYZ(0.25, 0.5, 0.75, P3)
	tolassert.Equal(t, 0.40315, x)
	tolassert.Equal(t, 0.462575, y)
	tolassert.Equal(t, 0.805475, z)

	rl, gl, bl = XYZToRGBLin(x, y, z, P3)
	tolassert.EqualTol(t, 0.25, rl, 1.0e-4)
	tolassert.EqualTol(t, 0.5, gl, 1.0e-4)
	tolassert.EqualTol(t, 0.75, bl, 1.0e-4)

	x, y, z = RGBLinToXYZ(0.25, 0.5, 0.75, Rec2020)
	tolassert.Equal(t, 0.358225, x)
	tolassert.Equal(t, 0.44915, y)
	tolassert.Equal(t, 0.8098, z)

	rl, gl, bl = XYZToRGBLin(x, y, z, Rec2020)
	tolassert.EqualTol(t, 0.25, rl, 1.0e-4)
	tolassert.EqualTol(t, 0.5, gl, 1.0e-4)
	tolassert.EqualTol(t, 0.75, bl, 1.0e-4)
}

// Non-RGB tags convert through the sRGB matrices.
func TestXYZFallback(t *testing.T) {
	x, y, z := RGBLinToXYZ(0.5, 0.6, 0.7, SRGB)
	for _, cs := range []ColorSpaces{XYZ, LAB, OKLCH, ColorSpaces(-1)} {
		fx, fy, fz := RGBLinToXYZ(0.5, 0.6, 0.7, cs)
		assert.Equal(t, x, fx)
		assert.Equal(t, y, fy)
		assert.Equal(t, z, fz)
	}
}

// The published matrix pairs are rounded to 4 decimals independently,
// so round trips are close but not bit-exact. The error is largest at
// the gamut corners; 0.05 per [0,255] channel bounds all three spaces.
func TestXYZRoundTrip(t *testing.T) {
	for _, cs := range []ColorSpaces{SRGB, P3, Rec2020} {
		for _, c := range [][3]float64{
			{255, 255, 0}, {255, 0, 255}, {0, 255, 255},
			{255, 100, 40}, {128, 128, 128}, {0, 0, 0},
		} {
			x, y, z := RGBLinToXYZ(c[0], c[1], c[2], cs)
			rl, gl, bl := XYZToRGBLin(x, y, z, cs)
			tolassert.EqualTol(t, c[0], rl, 0.05)
			tolassert.EqualTol(t, c[1], gl, 0.05)
			tolassert.EqualTol(t, c[2], bl, 0.05)
		}
	}
}

func TestXYY(t *testing.T) {
	xc, yc, lum := XYZToXYY(0.9505, 1.0, 1.089)
	tolassert.Equal(t, 0.3127159072215825, xc)
	tolassert.Equal(t, 0.3290014805066623, yc)
	assert.Equal(t, 1.0, lum)

	x, y, z := XYYToXYZ(D65X, D65Y, D65Lum)
	tolassert.Equal(t, 0.9504559270516716, x)
	assert.Equal(t, 1.0, y)
	tolassert.Equal(t, 1.0890577507598784, z)

	xc, yc, lum = XYZToXYY(0, 0, 0)
	assert.Equal(t, 0.0, xc)
	assert.Equal(t, 0.0, yc)
	assert.Equal(t, 0.0, lum)

	x, y, z = XYYToXYZ(0.5, 0, 3)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, 0.0, z)

	for _, c := range [][3]float64{
		{0.2, 0.4, 0.1}, {0.9505, 1, 1.089}, {0.1, 0.05, 0.02},
	} {
		xc, yc, lum := XYZToXYY(c[0], c[1], c[2])
		x, y, z := XYYToXYZ(xc, yc, lum)
		tolassert.EqualTol(t, c[0], x, 1.0e-6)
		tolassert.EqualTol(t, c[1], y, 1.0e-6)
		tolassert.EqualTol(t, c[2], z, 1.0e-6)
	}
}

// Picking the D65 white point on the diagram must come out a neutral
// gray: the chain is chromaticity to XYZ to linear sRGB to display
// encoding, clamping only at the final uint8 step.
func TestD65NeutralPick(t *testing.T) {
	x, y, z := XYYToXYZ(D65X, D65Y, D65Lum)
	rl, gl, bl := XYZToRGBLin(x, y, z, SRGB)
	r, g, b := RGBFromLinear(rl, gl, bl)
	dr, dg, db := RGBToDisplay(r, g, b)

	tolassert.EqualTol(t, 255, dr, 0.05)
	tolassert.EqualTol(t, dr, dg, 0.05)
	tolassert.EqualTol(t, dg, db, 0.05)

	ur, ug, ub := RGBToUint8(dr, dg, db)
	assert.Equal(t, uint8(255), ur)
	assert.Equal(t, uint8(255), ug)
	assert.Equal(t, uint8(255), ub)
}
