// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the colorimetric transforms between RGB working
// spaces, CIE XYZ, and CIE L*a*b*, together with the standard reference
// data they depend on.
//
// The transforms are pure functions of float64 channel values:
//   - [Curve] compands and decompands RGB channels (sRGB, power law, or L*)
//   - [Mat3] holds the 3x3 matrices used for RGB <-> XYZ and adaptation
//   - [WorkingSpace] derives its RGB <-> XYZ matrices from its primaries
//   - [Adaptation] maps tristimulus values between reference whites
//   - [XYZToLab] and [LabToXYZ] map XYZ to and from L*a*b*
//   - [Transform] bundles a working space, a target reference white, and an
//     adaptation method, caching the derived matrices.
//
// XYZ values are normalized so that the reference white has Y = 1.
// None of the transforms clamp their inputs or outputs: out of range
// values propagate through the math.
package cie
