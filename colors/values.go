// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strconv"
	"strings"

	"cogentcore.org/colorcalc/cie"
	"cogentcore.org/colorcalc/hsv"
)

// RGB is a color in an RGB working space. The channels are companded
// with [RGB.Curve] and are conventionally in the range 0-1, but they
// are not clamped.
type RGB struct {
	r, g, b float64
	curve   cie.Curve
}

// NewRGB returns a new [RGB] value with sRGB companded channels.
func NewRGB(r, g, b float64) RGB {
	return RGB{r: r, g: g, b: b}
}

// NewRGBCurve returns a new [RGB] value with channels companded
// with the given curve.
func NewRGBCurve(r, g, b float64, curve cie.Curve) RGB {
	return RGB{r: r, g: g, b: b, curve: curve}
}

func (c RGB) Red() float64   { return c.r }
func (c RGB) Green() float64 { return c.g }
func (c RGB) Blue() float64  { return c.b }

// Curve returns the companding curve of the channels.
func (c RGB) Curve() cie.Curve { return c.curve }

// Channels returns the red, green, and blue channels.
func (c RGB) Channels() [3]float64 { return [3]float64{c.r, c.g, c.b} }

// String returns the canonical form of the color, such as "rgb(0.5, 0.2, 0.1)".
func (c RGB) String() string { return format("rgb", c.r, c.g, c.b) }

// HSV is a color in the HSV model, with hue in degrees in the range
// [0, 360) and saturation and value in the range 0-1. The lightness and
// relative luminance of the color are computed on first use and cached
// in the value, so they have pointer receivers and need an addressable
// HSV: assign the result of [NewHSV] or [Color.HSV] to a variable first.
// Copying an HSV copies whatever it has cached so far.
type HSV struct {
	h, s, v float64

	lightness optional
	luminance optional
}

// optional is a lazily computed number.
type optional struct {
	v  float64
	ok bool
}

// get returns the cached number, calling f to compute it the first time.
func (o *optional) get(f func() float64) float64 {
	if !o.ok {
		o.v = f()
		o.ok = true
	}
	return o.v
}

// NewHSV returns a new [HSV] value.
func NewHSV(h, s, v float64) HSV {
	return HSV{h: h, s: s, v: v}
}

func (c HSV) Hue() float64        { return c.h }
func (c HSV) Saturation() float64 { return c.s }
func (c HSV) Value() float64      { return c.v }

// Channels returns the hue, saturation, and value channels.
func (c HSV) Channels() [3]float64 { return [3]float64{c.h, c.s, c.v} }

// Lightness returns the HSL lightness of the color, the mean of its
// largest and smallest RGB channels. It is computed once.
func (c *HSV) Lightness() float64 {
	return c.lightness.get(func() float64 {
		return hsv.Lightness(hsv.ToRGB(c.h, c.s, c.v))
	})
}

// Luminance returns the perceived relative luminance of the color,
// using the BT.601 weights. It is computed once.
func (c *HSV) Luminance() float64 {
	return c.luminance.get(func() float64 {
		return hsv.Luminance(hsv.ToRGB(c.h, c.s, c.v))
	})
}

// String returns the canonical form of the color, such as "hsv(15, 0.8, 0.5)".
func (c HSV) String() string { return format("hsv", c.h, c.s, c.v) }

// XYZ is a color given by its CIE XYZ tristimulus values,
// with Y = 1 for the reference white.
type XYZ struct {
	x, y, z float64
}

// NewXYZ returns a new [XYZ] value.
func NewXYZ(x, y, z float64) XYZ {
	return XYZ{x: x, y: y, z: z}
}

func (c XYZ) X() float64 { return c.x }
func (c XYZ) Y() float64 { return c.y }
func (c XYZ) Z() float64 { return c.z }

// Channels returns the X, Y, and Z channels.
func (c XYZ) Channels() [3]float64 { return [3]float64{c.x, c.y, c.z} }

func (c XYZ) String() string { return format("xyz", c.x, c.y, c.z) }

// Lab is a color in the CIE L*a*b* space, with L* in the range 0-100.
type Lab struct {
	l, a, b float64
}

// NewLab returns a new [Lab] value.
func NewLab(l, a, b float64) Lab {
	return Lab{l: l, a: a, b: b}
}

func (c Lab) L() float64 { return c.l }
func (c Lab) A() float64 { return c.a }
func (c Lab) B() float64 { return c.b }

// Channels returns the L*, a*, and b* channels.
func (c Lab) Channels() [3]float64 { return [3]float64{c.l, c.a, c.b} }

func (c Lab) String() string { return format("lab", c.l, c.a, c.b) }

// format returns the canonical "kind(ch1, ch2, ch3)" form.
func format(kind string, c1, c2, c3 float64) string {
	var sb strings.Builder
	sb.WriteString(kind)
	sb.WriteByte('(')
	sb.WriteString(FormatFloat(c1))
	sb.WriteString(", ")
	sb.WriteString(FormatFloat(c2))
	sb.WriteString(", ")
	sb.WriteString(FormatFloat(c3))
	sb.WriteByte(')')
	return sb.String()
}

// FormatFloat formats a channel value with up to 6 significant digits,
// the precision used by the canonical text forms.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
