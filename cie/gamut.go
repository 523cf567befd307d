// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "goki.dev/mat32/v2"

// D65 standard illuminant chromaticity, the shared white point of the
// three display spaces and the neutral center of the chromaticity
// diagram.
const (
	D65X   = 0.3127
	D65Y   = 0.3290
	D65Lum = 1.0
)

// Gamut boundary tables in xy chromaticity coordinates. Each is a
// closed polyline whose last point repeats the first, ready to draw on
// the chromaticity diagram. The display gamuts are the primary
// triangles of their spaces. [SpectralLocus] is a coarse 3 corner
// outline of the visible chromaticity horseshoe, not a color matching
// dataset.
var (
	// SRGBGamut is the sRGB / Rec709 primary triangle.
	SRGBGamut = []mat32.Vec2{
		mat32.V2(0.64, 0.33),
		mat32.V2(0.30, 0.60),
		mat32.V2(0.15, 0.06),
		mat32.V2(0.64, 0.33),
	}

	// P3Gamut is the Display P3 primary triangle.
	P3Gamut = []mat32.Vec2{
		mat32.V2(0.680, 0.320),
		mat32.V2(0.265, 0.690),
		mat32.V2(0.150, 0.060),
		mat32.V2(0.680, 0.320),
	}

	// Rec2020Gamut is the ITU-R BT.2020 primary triangle.
	Rec2020Gamut = []mat32.Vec2{
		mat32.V2(0.708, 0.292),
		mat32.V2(0.170, 0.797),
		mat32.V2(0.131, 0.046),
		mat32.V2(0.708, 0.292),
	}

	// SpectralLocus outlines the visible chromaticity region between
	// the 420nm blue, 520nm green, and 700nm red spectral corners.
	SpectralLocus = []mat32.Vec2{
		mat32.V2(0.1741, 0.0050),
		mat32.V2(0.0743, 0.8338),
		mat32.V2(0.7347, 0.2653),
		mat32.V2(0.1741, 0.0050),
	}
)

// Gamut returns the primary triangle for the given display color
// space, with the same sRGB fallback for non-RGB tags as the matrix
// conversions.
func Gamut(cs ColorSpaces) []mat32.Vec2 {
	switch cs {
	case P3:
		return P3Gamut
	case Rec2020:
		return Rec2020Gamut
	default:
		return SRGBGamut
	}
}

// InGamut reports whether the given display [0,255] RGB components all
// lie within the displayable range. This is a numeric range test only:
// it does not consult the gamut polygons, so a color derived through
// the P3 matrices is judged by the same [0,255] bounds as one derived
// through sRGB.
func InGamut(r, g, b float64) bool {
	return r >= 0 && r <= 255 && g >= 0 && g <= 255 && b >= 0 && b <= 255
}
