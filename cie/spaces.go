// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

//go:generate enumgen

// ColorSpaces are the color space tags used to select the matrix pair and
// CSS serialization rule for a conversion. Only the three display spaces
// (SRGB, P3, Rec2020) carry matrices; the remaining tags label non-RGB
// encodings and fall back to the sRGB matrices when used in a matrix
// conversion.
type ColorSpaces int32 //enums:enum

const (
	// SRGB is the standard sRGB / Rec709 display color space.
	SRGB ColorSpaces = iota

	// P3 is the Display P3 color space used by wide-gamut displays.
	P3

	// Rec2020 is the ITU-R BT.2020 ultra-wide-gamut color space.
	Rec2020

	// XYZ labels CIE XYZ tristimulus values (no matrices of its own).
	XYZ

	// LAB labels CIE 1976 L*a*b* values (no matrices of its own).
	LAB

	// OKLCH labels polar LCh values (no matrices of its own).
	OKLCH
)

// RGB to XYZ and XYZ to RGB matrices for the three display spaces,
// in the standard 4 decimal published rounding. Each pair is a mutual
// near-inverse, not an exact inverse: round trips through them are
// accurate to about 0.05 per [0,255] channel at the gamut corners,
// not bit-exact.
var (
	srgbToXYZ = [3][3]float64{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}
	srgbFromXYZ = [3][3]float64{
		{3.2406, -1.5372, -0.4986},
		{-0.9689, 1.8758, 0.0415},
		{0.0557, -0.2040, 1.0570},
	}

	p3ToXYZ = [3][3]float64{
		{0.4866, 0.2657, 0.1982},
		{0.2290, 0.6917, 0.0793},
		{0.0000, 0.0451, 1.0439},
	}
	p3FromXYZ = [3][3]float64{
		{2.4935, -0.9314, -0.4027},
		{-0.8295, 1.7627, 0.0236},
		{0.0358, -0.0762, 0.9569},
	}

	rec2020ToXYZ = [3][3]float64{
		{0.6370, 0.1446, 0.1689},
		{0.2627, 0.6780, 0.0593},
		{0.0000, 0.0281, 1.0610},
	}
	rec2020FromXYZ = [3][3]float64{
		{1.7167, -0.3557, -0.2534},
		{-0.6667, 1.6165, 0.0158},
		{0.0176, -0.0428, 0.9421},
	}
)

// toXYZMat returns the RGB to XYZ matrix for the given color space.
// Unrecognized and non-RGB tags return the sRGB matrix, which is the
// documented default, not an error.
func toXYZMat(cs ColorSpaces) *[3][3]float64 {
	switch cs {
	case P3:
		return &p3ToXYZ
	case Rec2020:
		return &rec2020ToXYZ
	default:
		return &srgbToXYZ
	}
}

// fromXYZMat returns the XYZ to RGB matrix for the given color space,
// with the same sRGB default as [toXYZMat].
func fromXYZMat(cs ColorSpaces) *[3][3]float64 {
	switch cs {
	case P3:
		return &p3FromXYZ
	case Rec2020:
		return &rec2020FromXYZ
	default:
		return &srgbFromXYZ
	}
}
