// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"
	"math"
)

// Lighten returns the color with its lightness increased by the given
// percentage amount, clamped to the valid range.
func Lighten(c color.Color, amount float64) color.RGBA {
	h := FromColor(c)
	h.L = clamp(h.L+amount, 0, 100)
	return h.AsRGBA()
}

// Darken returns the color with its lightness decreased by the given
// percentage amount, clamped to the valid range.
func Darken(c color.Color, amount float64) color.RGBA {
	h := FromColor(c)
	h.L = clamp(h.L-amount, 0, 100)
	return h.AsRGBA()
}

// Highlight returns the color shifted toward the opposite end of the
// lightness scale by the given percentage amount: darker if the color
// is light and lighter otherwise. It is the opposite of [Samelight].
func Highlight(c color.Color, amount float64) color.RGBA {
	h := FromColor(c)
	if h.L >= 50 {
		h.L -= amount
	} else {
		h.L += amount
	}
	h.L = clamp(h.L, 0, 100)
	return h.AsRGBA()
}

// Samelight returns the color shifted toward its own end of the
// lightness scale by the given percentage amount: lighter if the color
// is light and darker otherwise. It is the opposite of [Highlight].
func Samelight(c color.Color, amount float64) color.RGBA {
	h := FromColor(c)
	if h.L >= 50 {
		h.L += amount
	} else {
		h.L -= amount
	}
	h.L = clamp(h.L, 0, 100)
	return h.AsRGBA()
}

// Saturate returns the color with its saturation increased by the
// given percentage amount, clamped to the valid range.
func Saturate(c color.Color, amount float64) color.RGBA {
	h := FromColor(c)
	h.S = clamp(h.S+amount, 0, 100)
	return h.AsRGBA()
}

// Desaturate returns the color with its saturation decreased by the
// given percentage amount, clamped to the valid range.
func Desaturate(c color.Color, amount float64) color.RGBA {
	h := FromColor(c)
	h.S = clamp(h.S-amount, 0, 100)
	return h.AsRGBA()
}

// Spin returns the color with its hue rotated by the given number of
// degrees, wrapped to [0,360).
func Spin(c color.Color, degrees float64) color.RGBA {
	h := FromColor(c)
	h.H = math.Mod(h.H+degrees, 360)
	if h.H < 0 {
		h.H += 360
	}
	return h.AsRGBA()
}

// IsLight reports whether the color's lightness is at or above the
// middle of the scale.
func IsLight(c color.Color) bool {
	h := FromColor(c)
	return h.L >= 50
}

// IsDark reports whether the color's lightness is below the middle of
// the scale.
func IsDark(c color.Color) bool {
	return !IsLight(c)
}

// ContrastColor returns white for dark colors and black for light
// ones, for legible text over the given color.
func ContrastColor(c color.Color) color.RGBA {
	if IsDark(c) {
		return color.RGBA{255, 255, 255, 255}
	}
	return color.RGBA{0, 0, 0, 255}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
