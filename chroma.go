// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chroma provides color space conversions between RGB, XYZ,
// xyY chromaticity, LAB, OKLCH and HSL encodings, along with a CIE
// 1931 chromaticity diagram renderer and a command line tool for
// converting colors and rendering diagrams.
package chroma

//go:generate goki generate

import (
	"errors"
	"fmt"

	"goki.dev/chroma/cie"
	"goki.dev/chroma/diagram"
	"goki.dev/chroma/picker"
	"goki.dev/colors"
	"goki.dev/grog"
)

// Config is the configuration information for the chroma tool.
//
//gti:add
type Config struct {

	// the color to operate on, as any CSS color string
	// (hex, rgb(...), hsl(...), or a named color)
	Color string `posarg:"0" required:"-"`

	// the display color space for conversions and diagram rendering
	Space cie.ColorSpaces `def:"srgb"`

	// the x chromaticity coordinate for the pick command
	X float64 `def:"0.3127"`

	// the y chromaticity coordinate for the pick command
	Y float64 `def:"0.329"`

	// the Y luminance for chromaticity picks and the diagram colors
	Lum float64 `def:"0.5"`

	// the output file for the rendered diagram
	Output string `flag:"o,output" def:"diagram.png"`

	// the pixel size of the square rendered diagram
	Size int `def:"512"`

	// do not draw the display gamut triangles on the diagram
	NoGamuts bool

	// do not draw grid lines and axis labels on the diagram
	NoGrid bool
}

// Convert parses the config color string and prints its derived
// bundle: chromaticity, XYZ, LAB, the polar LCh readout, HSL, color
// temperature, CSS and hex serializations, and gamut status.
//
//gti:add
//grease:cmd -root
func Convert(c *Config) error {
	st, err := parseColor(c, "convert")
	if err != nil {
		return err
	}
	printBundle(st)
	return nil
}

// Pick derives the same bundle as [Convert] from the config x, y
// chromaticity coordinates and luminance instead of a color string.
//
//gti:add
func Pick(c *Config) error {
	st := picker.FromChromaticity(c.X, c.Y, c.Lum, c.Space)
	printBundle(st)
	return nil
}

// Diagram renders the CIE 1931 chromaticity diagram for the config
// space to the config output file. If a color is given, its
// chromaticity is marked on the diagram.
//
//gti:add
func Diagram(c *Config) error {
	dg := diagram.NewDiagram()
	if c.Size > 0 {
		dg.Size.X, dg.Size.Y = c.Size, c.Size
	}
	dg.Space = c.Space
	dg.Lum = c.Lum
	dg.Gamuts = !c.NoGamuts
	dg.Grid = !c.NoGrid
	if c.Color != "" {
		st, err := parseColor(c, "diagram")
		if err != nil {
			return err
		}
		dg.Selection = &st
	}
	err := dg.SavePNG(c.Output)
	if err != nil {
		return fmt.Errorf("diagram: error rendering to %q: %w", c.Output, err)
	}
	grog.PrintlnInfo("diagram: saved to " + c.Output)
	return nil
}

// CSS prints only the CSS serialization of the config color in the
// config color space, for scripting.
//
//gti:add
func CSS(c *Config) error {
	st, err := parseColor(c, "css")
	if err != nil {
		return err
	}
	fmt.Println(cie.CSSString(st.R, st.G, st.B, st.Space))
	return nil
}

// parseColor parses the config color string into a selection in the
// config color space.
func parseColor(c *Config, cmd string) (picker.State, error) {
	if c.Color == "" {
		return picker.State{}, errors.New(cmd + ": expected a color string argument")
	}
	clr, err := colors.FromString(c.Color, nil)
	if err != nil {
		return picker.State{}, fmt.Errorf("%s: invalid color %q: %w", cmd, c.Color, err)
	}
	return picker.FromColor(clr, c.Space), nil
}

// printBundle prints the derived bundle for the selection, one
// quantity per line.
func printBundle(st picker.State) {
	d := st.Derive()
	fmt.Printf("space: %v\n", st.Space)
	fmt.Printf("rgb:   %.3f %.3f %.3f\n", st.R, st.G, st.B)
	fmt.Printf("hex:   %s\n", colors.AsHex(st.AsRGBA()))
	fmt.Printf("css:   %s\n", d.CSS)
	fmt.Printf("xyz:   %.5f %.5f %.5f\n", d.X, d.Y, d.Z)
	fmt.Printf("xy:    %.5f %.5f\n", d.ChromaX, d.ChromaY)
	fmt.Printf("lab:   %.3f %.3f %.3f\n", d.L, d.A, d.B)
	fmt.Printf("oklch: %.4f %.3f %.2f\n", d.OKL, d.OKC, d.OKH)
	fmt.Printf("hsl:   %.1f %.1f%% %.1f%%\n", d.Hue, d.Sat, d.Light)
	fmt.Printf("temp:  %.1f K\n", d.TempK)
	if !d.InGamut {
		grog.PrintlnWarn("out of gamut for " + st.Space.String())
	}
}
