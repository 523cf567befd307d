// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package main provides the chroma command line tool for color space
// conversions and chromaticity diagram rendering.
package main

import (
	"goki.dev/chroma"
	"goki.dev/grease"
)

func main() {
	opts := grease.DefaultOptions("chroma", "Chroma", "Chroma converts colors between RGB, XYZ, xyY, LAB, OKLCH and HSL, and renders CIE 1931 chromaticity diagrams.")
	opts.DefaultFiles = []string{"chroma.toml"}
	grease.Run(opts, &chroma.Config{}, chroma.Convert, chroma.Pick, chroma.Diagram, chroma.CSS)
}
