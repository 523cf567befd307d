// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// RGBLinToXYZ converts linear r, g, b components in the given display
// color space to XYZ tristimulus values, using that space's published
// RGB to XYZ matrix. Non-RGB tags (XYZ, LAB, OKLCH) and unrecognized
// values fall back to the sRGB matrix. The transform is linear and
// therefore scale agnostic: unit scale inputs put the reference white
// at Y = 1, display [0,255] inputs at Y = 255.
func RGBLinToXYZ(rl, gl, bl float64, cs ColorSpaces) (x, y, z float64) {
	m := toXYZMat(cs)
	x = m[0][0]*rl + m[0][1]*gl + m[0][2]*bl
	y = m[1][0]*rl + m[1][1]*gl + m[1][2]*bl
	z = m[2][0]*rl + m[2][1]*gl + m[2][2]*bl
	return
}

// XYZToRGBLin converts XYZ tristimulus values to linear r, g, b
// components in the given display color space, using that space's
// published XYZ to RGB matrix, with the same sRGB fallback and scale
// behavior as [RGBLinToXYZ]. Components outside [0,1] mean the color
// is out of gamut for the space and are returned as is.
func XYZToRGBLin(x, y, z float64, cs ColorSpaces) (rl, gl, bl float64) {
	m := fromXYZMat(cs)
	rl = m[0][0]*x + m[0][1]*y + m[0][2]*z
	gl = m[1][0]*x + m[1][1]*y + m[1][2]*z
	bl = m[2][0]*x + m[2][1]*y + m[2][2]*z
	return
}

// XYZToXYY converts XYZ tristimulus values to xy chromaticity
// coordinates plus the unchanged Y luminance: xc = x / (x + y + z),
// yc = y / (x + y + z). A zero tristimulus sum has no chromaticity,
// so it returns the degenerate (0, 0, 0) result instead of dividing
// by zero.
func XYZToXYY(x, y, z float64) (xc, yc, lum float64) {
	sum := x + y + z
	if sum == 0 {
		return 0, 0, 0
	}
	xc = x / sum
	yc = y / sum
	lum = y
	return
}

// XYYToXYZ converts xy chromaticity coordinates and Y luminance back
// to XYZ tristimulus values: x = xc * lum / yc, y = lum,
// z = (1 - xc - yc) * lum / yc. Chromaticity yc is a denominator, so
// yc = 0 returns the degenerate (0, 0, 0) vector instead of dividing
// by zero.
func XYYToXYZ(xc, yc, lum float64) (x, y, z float64) {
	if yc == 0 {
		return 0, 0, 0
	}
	x = xc * lum / yc
	y = lum
	z = (1 - xc - yc) * lum / yc
	return
}
