// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"
	"testing"

	"cogentcore.org/core/glop/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestColorTemperature(t *testing.T) {
	tolassert.EqualTol(t, 6505.080591307478, ColorTemperature(D65X, D65Y), 1.0e-6)

	// CIE illuminant A sits near 2856K
	tolassert.EqualTol(t, 2856.4007692300997, ColorTemperature(0.4476, 0.4074), 1.0e-6)

	// x on the pivot zeroes n, leaving only the constant term
	assert.Equal(t, 5520.33, ColorTemperature(0.3320, 0.1))

	// y = 0.1858 is the denominator zero crossing: the raw non finite
	// result is passed through, not guarded
	assert.True(t, math.IsInf(ColorTemperature(0.5, 0.1858), 1))
}
