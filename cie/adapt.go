// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "cogentcore.org/colorcalc/base/errors"

// Adaptation is a chromatic adaptation method, used to map tristimulus
// values seen under one reference white to the corresponding values
// under another one.
type Adaptation int32

const (
	// Bradford is the Bradford cone response transform.
	Bradford Adaptation = iota

	// VonKries is the von Kries cone response transform.
	VonKries

	// XYZScaling scales XYZ directly by the ratio of the whites.
	XYZScaling

	// NoAdaptation leaves tristimulus values unchanged.
	NoAdaptation
)

// DefaultAdaptation is the default chromatic adaptation method.
const DefaultAdaptation = Bradford

// coneResponse is the forward matrix of an adaptation method into its
// cone response domain, and the inverse matrix back to XYZ.
type coneResponse struct {
	forward, inverse Mat3
}

func newConeResponse(forward Mat3) coneResponse {
	return coneResponse{forward: forward, inverse: errors.Must1(forward.Inverse())}
}

var coneResponses = [...]coneResponse{
	Bradford: newConeResponse(Mat3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}),
	VonKries: newConeResponse(Mat3{
		{0.40024, 0.70760, -0.08081},
		{-0.22630, 1.16532, 0.04570},
		{0, 0, 0.91822},
	}),
	XYZScaling:   newConeResponse(Identity3()),
	NoAdaptation: newConeResponse(Identity3()),
}

// Matrix returns the forward cone response matrix of the method.
// It is the identity for [XYZScaling] and [NoAdaptation].
func (a Adaptation) Matrix() Mat3 {
	if !a.IsValid() {
		return Identity3()
	}
	return coneResponses[a].forward
}

// InverseMatrix returns the inverse of [Adaptation.Matrix].
func (a Adaptation) InverseMatrix() Mat3 {
	if !a.IsValid() {
		return Identity3()
	}
	return coneResponses[a].inverse
}

// Adapt maps the tristimulus values x, y, z seen under the src white to
// the corresponding values under the dst white. The values and both
// whites are taken into the cone response domain, scaled by the ratio of
// the destination to the source white responses, and taken back to XYZ.
// [NoAdaptation], invalid methods, and identical whites return the
// input unchanged.
func (a Adaptation) Adapt(x, y, z float64, src, dst Illuminant) (float64, float64, float64) {
	if a == NoAdaptation || !a.IsValid() || src.Same(dst) {
		return x, y, z
	}
	cr := coneResponses[a]
	sr, sg, sb := cr.forward.MulVec(src.XYZ())
	dr, dg, db := cr.forward.MulVec(dst.XYZ())
	r, g, b := cr.forward.MulVec(x, y, z)
	return cr.inverse.MulVec(r*dr/sr, g*dg/sg, b*db/sb)
}
