// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsv provides conversions between companded RGB and the
// HSV (hue, saturation, value) model, along with the lightness and
// relative luminance reported alongside HSV values.
//
// Hue is in degrees in the range [0, 360), and saturation and value are
// in the same 0-1 range as the RGB channels. Inputs are not clamped.
package hsv

import "math"

// BT.601 luma weights, used by [Luminance].
const (
	lumR = 0.299
	lumG = 0.587
	lumB = 0.114
)

// FromRGB converts RGB to hue, saturation, and value.
// Achromatic colors (r == g == b) have a hue of 0, and black also
// has a saturation of 0.
func FromRGB(r, g, b float64) (h, s, v float64) {
	mx := max(r, g, b)
	mn := min(r, g, b)
	d := mx - mn
	v = mx
	if mx != 0 {
		s = d / mx
	}
	if d == 0 {
		return 0, s, v
	}
	switch mx {
	case r:
		h = (g - b) / d
	case g:
		h = 2 + (b-r)/d
	default:
		h = 4 + (r-g)/d
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h, s, v
}

// FromRGBFull is like [FromRGB], but also returns the
// [Lightness] and [Luminance] of the color, sharing the
// min and max computation.
func FromRGBFull(r, g, b float64) (h, s, v, l, lum float64) {
	h, s, v = FromRGB(r, g, b)
	l = (min(r, g, b) + v) / 2
	lum = Luminance(r, g, b)
	return
}

// ToRGB converts hue, saturation, and value to RGB.
// The hue is reduced into [0, 360) first, so 360 is the same as 0
// and negative hues wrap around. A saturation of 0 gives the gray
// r == g == b == v.
func ToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
		if h >= 360 {
			h = 0
		}
	}
	h /= 60
	sector := math.Floor(h)
	f := h - sector
	v1 := v * (1 - s)
	v2 := v * (1 - s*f)
	v3 := v * (1 - s*(1-f))
	switch int(sector) {
	case 0:
		return v, v3, v1
	case 1:
		return v2, v, v1
	case 2:
		return v1, v, v3
	case 3:
		return v1, v2, v
	case 4:
		return v3, v1, v
	default:
		return v, v1, v2
	}
}

// Lightness returns the HSL lightness of the color: the
// mean of its largest and smallest channels.
func Lightness(r, g, b float64) float64 {
	return (max(r, g, b) + min(r, g, b)) / 2
}

// Luminance returns the perceived relative luminance of the color,
// as the root of the BT.601 weighted sum of the squared channels.
func Luminance(r, g, b float64) float64 {
	return math.Sqrt(lumR*r*r + lumG*g*g + lumB*b*b)
}
