// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/core/glop/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestLAB(t *testing.T) {
	tolassert.Equal(t, 0.8879040017426006, LABCompress(0.7))
	tolassert.Equal(t, 0.13795439548275862, LABCompress(0.000003))
	tolassert.Equal(t, 0.216, LABUncompress(0.6))
	tolassert.Equal(t, 0.007970844422401617, LABUncompress(0.2))

	l, a, b := XYZToLAB(0.1, 0.3, 0.5)
	tolassert.Equal(t, 61.65422220953167, l)
	tolassert.Equal(t, -98.67379710543727, a)
	tolassert.Equal(t, -20.413662816236734, b)

	x, y, z := LABToXYZ(28, 14, 36.2)
	tolassert.Equal(t, 0.0642265708204143, x)
	tolassert.Equal(t, 0.0545737832629464, y)
	tolassert.Equal(t, 0.008442635736838138, z)

	// the D65 reference white itself is exactly neutral
	l, a, b = XYZToLAB(0.95047, 1, 1.08883)
	assert.Equal(t, 100.0, l)
	assert.Equal(t, 0.0, a)
	assert.Equal(t, 0.0, b)

	tolassert.Equal(t, 0.02302331481405552, LToY(17))
	tolassert.Equal(t, 21.57949689481881, YToL(0.034))

	for _, c := range [][3]float64{
		{0.1, 0.3, 0.5}, {0.4, 0.2, 0.05}, {0.95047, 1, 1.08883},
	} {
		l, a, b := XYZToLAB(c[0], c[1], c[2])
		x, y, z := LABToXYZ(l, a, b)
		tolassert.EqualTol(t, c[0], x, 1.0e-9)
		tolassert.EqualTol(t, c[1], y, 1.0e-9)
		tolassert.EqualTol(t, c[2], z, 1.0e-9)
	}
}

func TestLABToOKLCH(t *testing.T) {
	ol, oc, oh := LABToOKLCH(61.65422220953167, -98.67379710543727, -20.413662816236734)
	tolassert.Equal(t, 0.6165422220953167, ol)
	tolassert.Equal(t, 100.7632664455654, oc)
	tolassert.Equal(t, 191.68847516510164, oh)

	// neutral axis: zero chroma, hue pinned to 0
	ol, oc, oh = LABToOKLCH(100, 0, 0)
	assert.Equal(t, 1.0, ol)
	assert.Equal(t, 0.0, oc)
	assert.Equal(t, 0.0, oh)

	// positive b keeps atan2 positive, no wrap needed
	_, _, oh = LABToOKLCH(50, -30, 40)
	tolassert.Equal(t, 126.86989764584402, oh)
}
