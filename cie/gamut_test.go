// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"goki.dev/mat32/v2"
)

func TestInGamut(t *testing.T) {
	assert.True(t, InGamut(0, 0, 0))
	assert.True(t, InGamut(255, 255, 255))
	assert.True(t, InGamut(255, 100, 100))
	assert.False(t, InGamut(300, 0, 0))
	assert.False(t, InGamut(0, -0.1, 0))
	assert.False(t, InGamut(0, 0, 255.5))
}

func TestGamutTables(t *testing.T) {
	for _, g := range [][]mat32.Vec2{SRGBGamut, P3Gamut, Rec2020Gamut, SpectralLocus} {
		assert.Equal(t, 4, len(g))
		assert.Equal(t, g[0], g[3])
	}

	assert.Equal(t, mat32.V2(0.64, 0.33), SRGBGamut[0])
	assert.Equal(t, mat32.V2(0.680, 0.320), P3Gamut[0])
	assert.Equal(t, mat32.V2(0.708, 0.292), Rec2020Gamut[0])
	assert.Equal(t, mat32.V2(0.1741, 0.0050), SpectralLocus[0])

	assert.Equal(t, SRGBGamut, Gamut(SRGB))
	assert.Equal(t, P3Gamut, Gamut(P3))
	assert.Equal(t, Rec2020Gamut, Gamut(Rec2020))
	assert.Equal(t, SRGBGamut, Gamut(XYZ))
}
