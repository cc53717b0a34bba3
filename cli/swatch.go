// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"cogentcore.org/colorcalc/cie"
	"cogentcore.org/colorcalc/colors"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// DisplayColor returns the sRGB color that shows the given XYZ color,
// relative to the given white, on a standard display. The result may
// be outside of the sRGB gamut.
func DisplayColor(xyz colors.XYZ, white cie.Illuminant, method cie.Adaptation) (colorful.Color, error) {
	tr, err := cie.NewTransform(cie.SRGBSpace, white, method)
	if err != nil {
		return colorful.Color{}, err
	}
	r, g, b := tr.XYZToRGB(xyz.X(), xyz.Y(), xyz.Z(), cie.SRGBCurve)
	return colorful.Color{R: r, G: g, B: b}, nil
}

// Swatch writes a line with a block of the given color, as shown on
// a standard display, followed by its hex code. Nothing is written if
// the output does not support color.
func Swatch(out *termenv.Output, xyz colors.XYZ, white cie.Illuminant, method cie.Adaptation) error {
	if out.Profile == termenv.Ascii {
		return nil
	}
	c, err := DisplayColor(xyz, white, method)
	if err != nil {
		return err
	}
	hex := c.Clamped().Hex()
	note := ""
	if !c.IsValid() {
		note = " (clipped to sRGB)"
	}
	block := out.String("        ").Background(out.Color(hex))
	_, err = fmt.Fprintf(out, "%s %s%s\n", block, hex, note)
	return err
}
