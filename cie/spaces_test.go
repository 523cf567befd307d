// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorSpaces(t *testing.T) {
	assert.Equal(t, "SRGB", SRGB.String())
	assert.Equal(t, "P3", P3.String())
	assert.Equal(t, "Rec2020", Rec2020.String())
	assert.Equal(t, "ColorSpaces(17)", ColorSpaces(17).String())

	var cs ColorSpaces
	assert.NoError(t, cs.SetString("rec2020"))
	assert.Equal(t, Rec2020, cs)
	assert.NoError(t, cs.SetString("OKLCH"))
	assert.Equal(t, OKLCH, cs)
	assert.Error(t, cs.SetString("cmyk"))

	assert.True(t, OKLCH.IsValid())
	assert.False(t, ColorSpaces(17).IsValid())
	assert.False(t, ColorSpaces(-1).IsValid())

	b, err := P3.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "P3", string(b))
	assert.NoError(t, cs.UnmarshalText([]byte("lab")))
	assert.Equal(t, LAB, cs)
}
