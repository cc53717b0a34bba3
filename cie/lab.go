// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// LabCompress is the forward L*a*b* function f(t): the cube root of the
// white-relative value t above [Epsilon], and a linear segment below it.
func LabCompress(t float64) float64 {
	if t > Epsilon {
		return math.Cbrt(t)
	}
	return (Kappa*t + 16) / 116
}

// LabUncompress is the inverse of [LabCompress].
func LabUncompress(f float64) float64 {
	f3 := f * f * f
	if f3 > Epsilon {
		return f3
	}
	return (116*f - 16) / Kappa
}

// XYZToLab converts XYZ tristimulus values to CIE L*a*b* relative to
// the given reference white.
func XYZToLab(x, y, z float64, white Illuminant) (l, a, b float64) {
	wx, wy, wz := white.XYZ()
	fx := LabCompress(x / wx)
	fy := LabCompress(y / wy)
	fz := LabCompress(z / wz)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LabToXYZ converts CIE L*a*b* values relative to the given reference
// white to XYZ tristimulus values. The Y channel is recovered directly
// from L* (with threshold Kappa*Epsilon = 8), and the X and Z channels
// from their cubed f values.
func LabToXYZ(l, a, b float64, white Illuminant) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	wx, wy, wz := white.XYZ()
	return LabUncompress(fx) * wx, LToY(l) * wy, LabUncompress(fz) * wz
}

// LToY returns the white-relative luminance Y (0-1) for the given
// L* lightness (0-100).
func LToY(l float64) float64 {
	if l > Kappa*Epsilon {
		fy := (l + 16) / 116
		return fy * fy * fy
	}
	return l / Kappa
}

// YToL returns the L* lightness (0-100) for the given
// white-relative luminance Y (0-1).
func YToL(y float64) float64 {
	return 116*LabCompress(y) - 16
}
