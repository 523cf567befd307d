// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "fmt"

// CSSString returns the CSS serialization of display [0,255] RGB
// components in the given color space: the plain rgb(r, g, b) function
// for sRGB (and for non-RGB tags, which serialize through the same
// fallback as the matrix conversions), or the color() function with
// unit scale channels for Display P3 and Rec2020. Channels are clamped
// to [0,255] and rounded to integers first, making this a final
// display formatting step: test [InGamut] before calling if the out of
// gamut signal matters.
func CSSString(r, g, b float64, cs ColorSpaces) string {
	ur, ug, ub := RGBToUint8(r, g, b)
	switch cs {
	case P3:
		return fmt.Sprintf("color(display-p3 %.4f %.4f %.4f)", float64(ur)/255, float64(ug)/255, float64(ub)/255)
	case Rec2020:
		return fmt.Sprintf("color(rec2020 %.4f %.4f %.4f)", float64(ur)/255, float64(ug)/255, float64(ub)/255)
	default:
		return fmt.Sprintf("rgb(%d, %d, %d)", ur, ug, ub)
	}
}
