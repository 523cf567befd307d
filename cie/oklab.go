// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// SRGBLinToOKLab converts linear sRGB components to OKLab coordinates
// (Björn Ottosson, 2020): l is perceptual lightness in [0,1], a and b
// are the green/red and blue/yellow opponent axes, roughly within
// [-0.4,0.4] for in gamut colors. The transform passes through a cube
// root compressed LMS cone space, so negative out of gamut components
// are carried through with their sign preserved.
func SRGBLinToOKLab(rl, gl, bl float64) (l, a, b float64) {
	lm := 0.4122214708*rl + 0.5363325363*gl + 0.0514459929*bl
	mm := 0.2119034982*rl + 0.6806995451*gl + 0.1073969566*bl
	sm := 0.0883024619*rl + 0.2817188376*gl + 0.6299787005*bl

	lp := math.Cbrt(lm)
	mp := math.Cbrt(mm)
	sp := math.Cbrt(sm)

	l = 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	a = 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	b = 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
	return
}

// OKLabToSRGBLin converts OKLab coordinates back to linear sRGB
// components, inverting [SRGBLinToOKLab]. Out of gamut colors come
// back with components outside [0,1], which the display pipeline
// preserves until [RGBToUint8].
func OKLabToSRGBLin(l, a, b float64) (rl, gl, bl float64) {
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b

	lm := lp * lp * lp
	mm := mp * mp * mp
	sm := sp * sp * sp

	rl = 4.0767416621*lm - 3.3077115913*mm + 0.2309699292*sm
	gl = -1.2684380046*lm + 2.6097574011*mm - 0.3413193965*sm
	bl = -0.0041960863*lm - 0.7034186147*mm + 1.7076147010*sm
	return
}

// OKLabToLCH converts rectangular OKLab coordinates to their polar LCh
// form: lightness unchanged, chroma the a, b magnitude, and hue the
// a, b angle in degrees, normalized to [0,360).
func OKLabToLCH(l, a, b float64) (ol, oc, oh float64) {
	ol = l
	oc = math.Hypot(a, b)
	oh = math.Atan2(b, a) * 180 / math.Pi
	if oh < 0 {
		oh += 360
	}
	return
}

// LCHToOKLab converts polar LCh coordinates back to rectangular OKLab.
func LCHToOKLab(ol, oc, oh float64) (l, a, b float64) {
	hr := oh * math.Pi / 180
	l = ol
	a = oc * math.Cos(hr)
	b = oc * math.Sin(hr)
	return
}
