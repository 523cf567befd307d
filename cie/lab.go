// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// D65 reference white tristimulus values used to normalize LAB,
// on the conventional Y = 1 scale.
const (
	labXn = 0.95047
	labYn = 1.0
	labZn = 1.08883
)

// LABCompress applies the cube root lightness compression used by LAB
// to a white point normalized tristimulus component: t^(1/3) above the
// 0.008856 threshold, and the linear 7.787*t + 16/116 segment below it.
func LABCompress(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// LABUncompress inverts [LABCompress]: ft^3 when that lies above the
// 0.008856 threshold, else the linear (ft - 16/116) / 7.787 segment.
func LABUncompress(ft float64) float64 {
	t := ft * ft * ft
	if t > 0.008856 {
		return t
	}
	return (ft - 16.0/116.0) / 7.787
}

// XYZToLAB converts unit scale XYZ tristimulus values to CIE 1976
// L*a*b* under the D65 reference white: l is lightness in [0,100] for
// in gamut colors, a and b are the unbounded opponent axes.
func XYZToLAB(x, y, z float64) (l, a, b float64) {
	fx := LABCompress(x / labXn)
	fy := LABCompress(y / labYn)
	fz := LABCompress(z / labZn)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts CIE 1976 L*a*b* values back to unit scale XYZ
// tristimulus values under the D65 reference white.
func LABToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LABUncompress(fx) * labXn
	y = LABUncompress(fy) * labYn
	z = LABUncompress(fz) * labZn
	return
}

// LToY converts LAB L* lightness to unit scale Y luminance.
func LToY(l float64) float64 {
	return labYn * LABUncompress((l+16)/116)
}

// YToL converts unit scale Y luminance to LAB L* lightness.
func YToL(y float64) float64 {
	return 116*LABCompress(y/labYn) - 16
}

// LABToOKLCH converts CIE LAB values to the polar LCh form used by the
// oklch() CSS serialization and picker readouts: ol is l rescaled to
// the unit range, oc is the a, b chroma magnitude, and oh is the a, b
// hue angle in degrees, normalized to [0,360). Note that this is the
// cylindrical form of the LAB inputs themselves (LCh(ab)), not a
// transform into the OKLab space: for true OKLab coordinates use
// [SRGBLinToOKLab] and [OKLabToLCH].
func LABToOKLCH(l, a, b float64) (ol, oc, oh float64) {
	ol = l / 100
	oc = math.Hypot(a, b)
	oh = math.Atan2(b, a) * 180 / math.Pi
	if oh < 0 {
		oh += 360
	}
	return
}
