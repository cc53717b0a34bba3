// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

const (
	// Epsilon is the CIE threshold 216/24389 between the linear and
	// cube root segments of the L* function.
	Epsilon = 216.0 / 24389.0

	// Kappa is the CIE slope 24389/27 of the linear segment of the L* function.
	Kappa = 24389.0 / 27.0
)

// Companding is the kind of nonlinear encoding applied to linear light.
type Companding int32

const (
	// SRGB is the piecewise sRGB curve of IEC 61966-2-1.
	SRGB Companding = iota

	// Gamma is a pure power law with the exponent given by [Curve.Gamma].
	Gamma

	// LStar is the piecewise CIE L* curve.
	LStar
)

// Curve is a companding curve: the kind of encoding plus,
// for the [Gamma] kind, the exponent. The zero value is the sRGB curve.
type Curve struct {

	// Kind selects the companding regime.
	Kind Companding

	// Gamma is the exponent of a [Gamma] curve; it is ignored otherwise.
	Gamma float64
}

var (
	// SRGBCurve is the piecewise sRGB companding curve.
	SRGBCurve = Curve{Kind: SRGB}

	// LStarCurve is the piecewise L* companding curve.
	LStarCurve = Curve{Kind: LStar}
)

// GammaCurve returns a pure power law curve with the given exponent.
func GammaCurve(gamma float64) Curve {
	return Curve{Kind: Gamma, Gamma: gamma}
}

// CurveFromGamma returns the curve selected by a single gamma number, in the
// encoding used by working space tables: a positive value is a power law,
// a negative value selects the sRGB curve, and zero selects the L* curve.
func CurveFromGamma(gamma float64) Curve {
	switch {
	case gamma > 0:
		return GammaCurve(gamma)
	case gamma < 0:
		return SRGBCurve
	default:
		return LStarCurve
	}
}

// LegacyGamma is the inverse of [CurveFromGamma]. The sRGB curve is
// reported as -2.2, its approximate (negated) exponent.
func (c Curve) LegacyGamma() float64 {
	switch c.Kind {
	case Gamma:
		return c.Gamma
	case LStar:
		return 0
	default:
		return -2.2
	}
}

// String returns a short description of the curve, such as "sRGB",
// "L*", or "gamma 2.2".
func (c Curve) String() string {
	switch c.Kind {
	case Gamma:
		return "gamma " + formatFloat(c.Gamma)
	case LStar:
		return "L*"
	default:
		return "sRGB"
	}
}

// Compand encodes a linear light value with the curve.
// The sign of the input is preserved, so the curve is odd-symmetric.
func (c Curve) Compand(linear float64) float64 {
	sign, v := splitSign(linear)
	switch c.Kind {
	case Gamma:
		return sign * math.Pow(v, 1/c.Gamma)
	case LStar:
		if v <= Epsilon {
			return sign * v * Kappa / 100
		}
		return sign * (116*math.Cbrt(v) - 16) / 100
	default:
		if v <= 0.0031308 {
			return sign * 12.92 * v
		}
		return sign * (1.055*math.Pow(v, 1/2.4) - 0.055)
	}
}

// Decompand decodes a companded value back to linear light.
// It is the inverse of [Curve.Compand].
func (c Curve) Decompand(companded float64) float64 {
	sign, v := splitSign(companded)
	switch c.Kind {
	case Gamma:
		return sign * math.Pow(v, c.Gamma)
	case LStar:
		if v <= 0.08 {
			return sign * 100 * v / Kappa
		}
		t := (100*v + 16) / 116
		return sign * t * t * t
	default:
		if v <= 0.04045 {
			return sign * v / 12.92
		}
		return sign * math.Pow((v+0.055)/1.055, 2.4)
	}
}

// splitSign returns the sign (1 or -1) and the absolute value of x.
func splitSign(x float64) (sign, abs float64) {
	if x < 0 {
		return -1, -x
	}
	return 1, x
}
