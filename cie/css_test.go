// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSSString(t *testing.T) {
	assert.Equal(t, "rgb(255, 100, 100)", CSSString(255, 100, 100, SRGB))
	assert.Equal(t, "color(display-p3 1.0000 0.3922 0.3922)", CSSString(255, 100, 100, P3))
	assert.Equal(t, "color(rec2020 0.2510 0.5020 1.0000)", CSSString(64, 128, 300, Rec2020))

	// out of gamut channels clamp at this final formatting step
	assert.Equal(t, "rgb(0, 0, 0)", CSSString(-20, 0, 0, SRGB))
	assert.Equal(t, "rgb(255, 0, 13)", CSSString(300, -5, 12.5, SRGB))

	// non-RGB tags serialize through the sRGB fallback
	assert.Equal(t, "rgb(18, 52, 86)", CSSString(18, 52, 86, XYZ))
	assert.Equal(t, "rgb(18, 52, 86)", CSSString(18, 52, 86, LAB))
}
