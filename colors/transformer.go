// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"sync"

	"cogentcore.org/colorcalc/base/errors"
	"cogentcore.org/colorcalc/cie"
	"cogentcore.org/colorcalc/hsv"
)

// Transformer performs the conversions between the representations
// of a [Color]. Every method is a pure function of its arguments.
type Transformer interface {

	// RGBToXYZ converts companded RGB to XYZ.
	RGBToXYZ(c RGB) XYZ

	// XYZToRGB converts XYZ to RGB companded with the given curve.
	XYZToRGB(c XYZ, curve cie.Curve) RGB

	// XYZToLab converts XYZ to L*a*b*.
	XYZToLab(c XYZ) Lab

	// LabToXYZ converts L*a*b* to XYZ.
	LabToXYZ(c Lab) XYZ

	// RGBToHSV converts RGB to HSV. The returned value may carry its
	// lightness and luminance already computed.
	RGBToHSV(c RGB) HSV

	// HSVToRGB converts HSV to RGB with the given curve.
	HSVToRGB(c HSV, curve cie.Curve) RGB
}

// CurveProvider is an optional interface for a [Transformer] with
// a native companding curve, which is used for the RGB representation
// of colors not made from RGB.
type CurveProvider interface {
	Curve() cie.Curve
}

// curveOf returns the native curve of the transformer,
// or the sRGB curve if it has none.
func curveOf(t Transformer) cie.Curve {
	if cp, ok := t.(CurveProvider); ok {
		return cp.Curve()
	}
	return cie.SRGBCurve
}

// Converter is the standard [Transformer], converting between RGB in
// a working space and XYZ and L*a*b* relative to a reference white.
// It is immutable and safe for concurrent use.
type Converter struct {
	transform *cie.Transform
}

// NewConverter returns a new [Converter] for the given working space,
// reference white, and chromatic adaptation method.
func NewConverter(space *cie.WorkingSpace, white cie.Illuminant, method cie.Adaptation) (*Converter, error) {
	t, err := cie.NewTransform(space, white, method)
	if err != nil {
		return nil, err
	}
	return &Converter{transform: t}, nil
}

// DefaultConverter returns the [Converter] for the default working space,
// reference white, and adaptation method: sRGB, D50, and Bradford.
var DefaultConverter = sync.OnceValue(func() *Converter {
	return errors.Must1(NewConverter(cie.DefaultSpace, cie.DefaultWhite, cie.DefaultAdaptation))
})

// Transform returns the underlying [cie.Transform].
func (cv *Converter) Transform() *cie.Transform {
	return cv.transform
}

// Curve returns the companding curve of the working space.
func (cv *Converter) Curve() cie.Curve {
	return cv.transform.Space.Curve
}

func (cv *Converter) RGBToXYZ(c RGB) XYZ {
	return NewXYZ(cv.transform.RGBToXYZ(c.r, c.g, c.b, c.curve))
}

func (cv *Converter) XYZToRGB(c XYZ, curve cie.Curve) RGB {
	r, g, b := cv.transform.XYZToRGB(c.x, c.y, c.z, curve)
	return NewRGBCurve(r, g, b, curve)
}

func (cv *Converter) XYZToLab(c XYZ) Lab {
	return NewLab(cv.transform.XYZToLab(c.x, c.y, c.z))
}

func (cv *Converter) LabToXYZ(c Lab) XYZ {
	return NewXYZ(cv.transform.LabToXYZ(c.l, c.a, c.b))
}

// RGBToHSV converts RGB to HSV, filling in the lightness and
// luminance of the result from the same channels.
func (cv *Converter) RGBToHSV(c RGB) HSV {
	h, s, v, l, lum := hsv.FromRGBFull(c.r, c.g, c.b)
	return HSV{
		h: h, s: s, v: v,
		lightness: optional{v: l, ok: true},
		luminance: optional{v: lum, ok: true},
	}
}

func (cv *Converter) HSVToRGB(c HSV, curve cie.Curve) RGB {
	r, g, b := hsv.ToRGB(c.h, c.s, c.v)
	return NewRGBCurve(r, g, b, curve)
}

func (cv *Converter) String() string {
	return cv.transform.String()
}
