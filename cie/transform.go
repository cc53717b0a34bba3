// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"strconv"
)

// Transform converts colors between an RGB working space and XYZ or
// L*a*b* relative to a target reference white. The working space
// matrices are computed once, when the Transform is made.
// A Transform is immutable and safe for concurrent use.
type Transform struct {

	// Space is the RGB working space.
	Space *WorkingSpace

	// White is the reference white of XYZ and L*a*b* values.
	White Illuminant

	// Method is the chromatic adaptation method used between the
	// native white of Space and White.
	Method Adaptation

	toXYZ, fromXYZ Mat3
}

// NewTransform returns a new transform for the given working space,
// reference white, and adaptation method. It returns an error if the
// working space matrices cannot be computed.
func NewTransform(space *WorkingSpace, white Illuminant, method Adaptation) (*Transform, error) {
	if space == nil {
		return nil, fmt.Errorf("cie: NewTransform: %w", ErrUnknownSpace)
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("cie: NewTransform: %w %d", ErrUnknownAdaptation, method)
	}
	toXYZ, fromXYZ, err := space.Matrices()
	if err != nil {
		return nil, fmt.Errorf("cie: NewTransform %s: %w", space.Name, err)
	}
	return &Transform{Space: space, White: white, Method: method, toXYZ: toXYZ, fromXYZ: fromXYZ}, nil
}

// Matrices returns the matrix mapping linear RGB to XYZ relative to the
// native white of the working space, and its inverse.
func (t *Transform) Matrices() (toXYZ, fromXYZ Mat3) {
	return t.toXYZ, t.fromXYZ
}

// RGBToXYZ decompands the RGB channels with the given curve, maps them
// to XYZ in the native white of the working space, and adapts the result
// to the reference white of the transform.
func (t *Transform) RGBToXYZ(r, g, b float64, curve Curve) (x, y, z float64) {
	x, y, z = t.toXYZ.MulVec(curve.Decompand(r), curve.Decompand(g), curve.Decompand(b))
	return t.Method.Adapt(x, y, z, t.Space.White, t.White)
}

// XYZToRGB is the inverse of [Transform.RGBToXYZ]: it adapts XYZ from the
// reference white of the transform to the native white of the working
// space, maps it to linear RGB, and compands it with the given curve.
func (t *Transform) XYZToRGB(x, y, z float64, curve Curve) (r, g, b float64) {
	x, y, z = t.Method.Adapt(x, y, z, t.White, t.Space.White)
	r, g, b = t.fromXYZ.MulVec(x, y, z)
	return curve.Compand(r), curve.Compand(g), curve.Compand(b)
}

// XYZToLab converts XYZ to L*a*b* relative to the reference white
// of the transform.
func (t *Transform) XYZToLab(x, y, z float64) (l, a, b float64) {
	return XYZToLab(x, y, z, t.White)
}

// LabToXYZ converts L*a*b* relative to the reference white
// of the transform to XYZ.
func (t *Transform) LabToXYZ(l, a, b float64) (x, y, z float64) {
	return LabToXYZ(l, a, b, t.White)
}

func (t *Transform) String() string {
	return t.Space.Name + " " + t.White.Name + " " + t.Method.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
