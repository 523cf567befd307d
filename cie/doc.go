// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie implements the color conversions behind the CIE 1931
// chromaticity diagram: linear RGB in the sRGB, Display P3, and Rec2020
// spaces to and from XYZ tristimulus values, XYZ to and from xy
// chromaticity, CIE LAB and its polar LCh form, OKLab, the sRGB gamma
// transfer functions, gamut boundary and white point tables, correlated
// color temperature, and CSS color serialization.
//
// All conversions are pure functions over float64 components and are safe
// for concurrent use. Out of range results are never rejected or clamped:
// an RGB value outside [0,255] is an out of gamut color, and clamping
// happens only in the final display formatting steps ([RGBToUint8] and
// [CSSString]), after any [InGamut] test.
package cie
