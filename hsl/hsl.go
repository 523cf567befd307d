// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl implements the cylindrical hue, saturation, lightness
// representation of display RGB colors: hue as an angle in degrees in
// [0,360), saturation and lightness as percentages in [0,100].
package hsl

import (
	"fmt"
	"image/color"
	"math"

	"goki.dev/chroma/cie"
)

// HSL represents a color in the cylindrical hue, saturation, lightness
// form of the display RGB cube. H is the hue angle in degrees in
// [0,360), S and L are percentages in [0,100], and A is the opacity on
// the unit scale. It implements the [color.Color] interface.
type HSL struct {

	// H is the hue angle in degrees in [0,360)
	H float64

	// S is the saturation as a percentage in [0,100]
	S float64

	// L is the lightness as a percentage in [0,100]
	L float64

	// A is the opacity on the unit scale
	A float64
}

// New returns an HSL color with the given hue, saturation, and
// lightness, at full opacity.
func New(h, s, l float64) HSL {
	return HSL{h, s, l, 1}
}

// FromRGB returns the HSL form of the given display [0,255] RGB
// components, at full opacity.
func FromRGB(r, g, b float64) HSL {
	h, s, l := RGBToHSL(r, g, b)
	return HSL{h, s, l, 1}
}

// FromColor returns the HSL form of any [color.Color].
func FromColor(c color.Color) HSL {
	h := HSL{}
	h.SetColor(c)
	return h
}

// Model is the [color.Model] converting any color to HSL.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	var h HSL
	h.SetColor(c)
	return h
}

// RGBA implements the [color.Color] interface, returning alpha
// premultiplied 16 bit channels.
func (h HSL) RGBA() (r, g, b, a uint32) {
	dr, dg, db := HSLToRGB(h.H, h.S, h.L)
	r = uint32(dr/255*h.A*0xffff + 0.5)
	g = uint32(dg/255*h.A*0xffff + 0.5)
	b = uint32(db/255*h.A*0xffff + 0.5)
	a = uint32(h.A*0xffff + 0.5)
	return
}

// AsRGBA returns the color as a standard 8 bit alpha premultiplied
// [color.RGBA].
func (h HSL) AsRGBA() color.RGBA {
	dr, dg, db := HSLToRGB(h.H, h.S, h.L)
	ur, ug, ub := cie.RGBToUint8(dr*h.A, dg*h.A, db*h.A)
	return color.RGBA{ur, ug, ub, uint8(math.Round(h.A * 255))}
}

// SetUint32 sets the color from alpha premultiplied 16 bit channels.
func (h *HSL) SetUint32(r, g, b, a uint32) {
	if a == 0 {
		*h = HSL{}
		return
	}
	dr := float64(r) / float64(a) * 255
	dg := float64(g) / float64(a) * 255
	db := float64(b) / float64(a) * 255
	h.H, h.S, h.L = RGBToHSL(dr, dg, db)
	h.A = float64(a) / 0xffff
}

// SetColor sets the color from any [color.Color].
func (h *HSL) SetColor(c color.Color) {
	r, g, b, a := c.RGBA()
	h.SetUint32(r, g, b, a)
}

// String implements the [fmt.Stringer] interface.
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", h.H, h.S, h.L)
}

// RGBToHSL converts display [0,255] RGB components to hue in degrees
// [0,360) and saturation and lightness percentages in [0,100].
// Achromatic colors (all channels equal, including black and white)
// have zero hue and saturation.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	rn := r / 255
	gn := g / 255
	bn := b / 255
	mx := math.Max(rn, math.Max(gn, bn))
	mn := math.Min(rn, math.Min(gn, bn))
	l = (mx + mn) / 2
	if mx != mn {
		d := mx - mn
		if l > 0.5 {
			s = d / (2 - mx - mn)
		} else {
			s = d / (mx + mn)
		}
		switch mx {
		case rn:
			h = (gn - bn) / d
			if gn < bn {
				h += 6
			}
		case gn:
			h = (bn-rn)/d + 2
		default:
			h = (rn-gn)/d + 4
		}
		h *= 60
	}
	s *= 100
	l *= 100
	return
}

// HSLToRGB converts hue in degrees and saturation and lightness
// percentages back to display [0,255] RGB components.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	sn := s / 100
	ln := l / 100
	if sn == 0 {
		r = ln * 255
		g = ln * 255
		b = ln * 255
		return
	}
	var q float64
	if ln < 0.5 {
		q = ln * (1 + sn)
	} else {
		q = ln + sn - ln*sn
	}
	p := 2*ln - q
	hn := h / 360
	r = hueToRGB(p, q, hn+1.0/3.0) * 255
	g = hueToRGB(p, q, hn) * 255
	b = hueToRGB(p, q, hn-1.0/3.0) * 255
	return
}

// hueToRGB resolves one channel of the piecewise hue ramp, with t as
// the channel's offset position around the hue circle in [-1/3, 4/3].
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}
