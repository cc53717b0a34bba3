// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/colorcalc/base/tolassert"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestLab(t *testing.T) {
	tolassert.EqualTol(t, 0.887904, LabCompress(0.7), 1e-6)
	tolassert.EqualTol(t, 0.1379544, LabCompress(0.000003), 1e-6)
	tolassert.EqualTol(t, 0.216, LabUncompress(0.6), 1e-12)
	tolassert.EqualTol(t, 0.000003, LabUncompress(LabCompress(0.000003)), 1e-15)

	l, a, b := XYZToLab(D50.X, 1, D50.Z, D50)
	tolassert.EqualTriple(t, [3]float64{100, 0, 0}, [3]float64{l, a, b}, 1e-12)

	l, a, b = XYZToLab(0, 0, 0, D65)
	tolassert.EqualTriple(t, [3]float64{0, 0, 0}, [3]float64{l, a, b}, 1e-12)

	tolassert.EqualTol(t, 49.496107610119594, YToL(0.18), 1e-9)
	tolassert.EqualTol(t, 0.18, LToY(49.496107610119594), 1e-12)
	tolassert.EqualTol(t, 8/Kappa, LToY(8), 1e-15)
	assert.Equal(t, 1.0, LToY(100))
}

func TestLabColorful(t *testing.T) {
	wref := [3]float64{D50.X, 1, D50.Z}
	for _, v := range [][3]float64{
		{0.1, 0.3, 0.5},
		{0.5, 0.2, 0.1},
		{0.001, 0.002, 0.003},
		{0.9, 0.95, 0.7},
	} {
		l, a, b := XYZToLab(v[0], v[1], v[2], D50)
		cl, ca, cb := colorful.XyzToLabWhiteRef(v[0], v[1], v[2], wref)
		tolassert.EqualTriple(t, [3]float64{cl * 100, ca * 100, cb * 100}, [3]float64{l, a, b}, 1e-9, "%v", v)

		x, y, z := LabToXYZ(l, a, b, D50)
		tolassert.EqualTriple(t, v, [3]float64{x, y, z}, 1e-12, "%v", v)
	}
}

func TestLabRoundTrip(t *testing.T) {
	for _, w := range Illuminants {
		for _, lab := range [][3]float64{
			{0, 0, 0},
			{5, 10, -10},
			{8, 0, 0},
			{50, 20, -30},
			{100, 0, 0},
			{75, -60, 90},
		} {
			x, y, z := LabToXYZ(lab[0], lab[1], lab[2], w)
			l, a, b := XYZToLab(x, y, z, w)
			tolassert.EqualTriple(t, lab, [3]float64{l, a, b}, 1e-9, "%v %v", w, lab)
		}
	}
}
