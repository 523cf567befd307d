// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// ColorTemperature estimates the correlated color temperature in
// Kelvin of the given xy chromaticity coordinates, using McCamy's
// cubic approximation: n = (x - 0.3320) / (0.1858 - y), and
// CCT = 449n^3 + 3525n^2 + 6823.3n + 5520.33. The approximation is
// only meaningful near the blackbody locus (roughly 2000K to 30000K)
// and diverges as y approaches 0.1858, where the denominator crosses
// zero: callers get the raw numeric result, including extreme or non
// finite values, with no special casing.
func ColorTemperature(x, y float64) float64 {
	n := (x - 0.3320) / (0.1858 - y)
	return 449*n*n*n + 3525*n*n + 6823.3*n + 5520.33
}
